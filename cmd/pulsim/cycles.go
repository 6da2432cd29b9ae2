package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles FILE",
	Short: "Find the first button press delivering a low pulse to a target module",
	Long: `cycles resolves the conjunction feeding the target module, watches each of its
input branches for its first low pulse, and combines the recorded press
indices by least common multiple instead of simulating to completion.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		check, _ := cmd.Flags().GetBool("check")
		g, err := load(args[0])
		if err != nil {
			return err
		}
		var presses uint64
		if check {
			presses, err = g.FindCycleLCMChecked(target)
		} else {
			presses, err = g.FindCycleLCM(target)
		}
		if err != nil {
			return err
		}
		p := message.NewPrinter(message.MatchLanguage("en"))
		p.Fprintf(cmd.OutOrStdout(), "presses: %d\n", presses)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cyclesCmd)
	cyclesCmd.Flags().StringP("target", "t", "rx", "target module name")
	cyclesCmd.Flags().Bool("check", false, "verify branch periodicity before trusting the result")
}
