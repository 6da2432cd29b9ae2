package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

var countCmd = &cobra.Command{
	Use:   "count FILE",
	Short: "Count low and high pulses over repeated button presses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("presses")
		g, err := load(args[0])
		if err != nil {
			return err
		}
		low, high := g.PressTimes(n)
		p := message.NewPrinter(message.MatchLanguage("en"))
		p.Fprintf(cmd.OutOrStdout(), "low: %d\nhigh: %d\nproduct: %d\n", low, high, low*high)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().IntP("presses", "n", 1000, "number of button presses")
}
