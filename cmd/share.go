package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/iksnae/ai-wrapped/internal"
	"github.com/iksnae/ai-wrapped/internal/export"
	"github.com/iksnae/ai-wrapped/internal/stats"
	"github.com/spf13/cobra"
)

var shareDBPath string

var shareCmd = &cobra.Command{
	Use:   "share <export.zip>",
	Short: "Save a sanitized share snapshot to the local store",
	Long: `Compute the statistics bundle, strip everything shared cards do not
display, and save the result to the local share database. The printed
ID can be served with 'ai-wrapped serve'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := resolveOverride()
		if err != nil {
			return err
		}

		result, err := internal.ParseArchive(args[0], override)
		if err != nil {
			return describeParseError(err)
		}

		report := stats.Calculate(result.Provider, result.Sessions)
		shareID := internal.GenerateShareID()
		sanitized := export.Sanitize(report)
		sanitized.ShareID = shareID

		payload, err := json.Marshal(sanitized)
		if err != nil {
			return fmt.Errorf("failed to encode share payload: %w", err)
		}

		store, err := internal.OpenShareStore(shareDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := store.Save(shareID, string(sanitized.Provider), payload); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved share %s\n", shareID)
		return nil
	},
}

func init() {
	shareCmd.Flags().StringVar(&shareDBPath, "db", "wrapped.db", "Path to the share database")
	rootCmd.AddCommand(shareCmd)
}
