package cmd

import (
	"fmt"

	"github.com/iksnae/ai-wrapped/internal"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <export.zip>",
	Short: "Detect the provider and show raw counts without full analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := resolveOverride()
		if err != nil {
			return err
		}

		result, err := internal.ParseArchive(args[0], override)
		if err != nil {
			return describeParseError(err)
		}

		totalMessages := 0
		empty := 0
		for _, session := range result.Sessions {
			totalMessages += len(session.Messages)
			if len(session.Messages) == 0 {
				empty++
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Provider:       %s\n", result.Provider)
		fmt.Fprintf(out, "Sessions:       %d (%d empty)\n", len(result.Sessions), empty)
		fmt.Fprintf(out, "Messages:       %d\n", totalMessages)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
