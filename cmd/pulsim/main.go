// Command pulsim loads a network definition file and runs it.
package main

import (
	"os"

	"github.com/db47h/pulsim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "pulsim",
	Short:         "Simulate pulse-propagation module networks",
	Long:          "pulsim simulates a network of pulse-processing modules (broadcaster, flip-flops, conjunctions) defined one module per line, e.g. \"%a -> b, c\".",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func load(path string) (*pulsim.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := pulsim.Parse(f)
	return g, errors.Wrap(err, path)
}
