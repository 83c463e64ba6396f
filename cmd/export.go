package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/ai-wrapped/internal"
	"github.com/iksnae/ai-wrapped/internal/export"
	"github.com/iksnae/ai-wrapped/internal/stats"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportShare  bool
)

var exportCmd = &cobra.Command{
	Use:   "export <export.zip>",
	Short: "Write the computed statistics bundle to a file or stdout",
	Long: `Parse an archive, compute the statistics bundle and write it in the
requested format. With --share the bundle is first reduced to the
sanitized share payload (bulk numeric arrays stripped).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := resolveOverride()
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		result, err := internal.ParseArchive(args[0], override)
		if err != nil {
			return describeParseError(err)
		}

		report := stats.Calculate(result.Provider, result.Sessions)
		if exportShare {
			report = export.Sanitize(report)
		}

		w := cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()
			w = f
		}

		return exporter.Export(report, w)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportShare, "share", false, "Write the sanitized share payload instead of the full bundle")
	rootCmd.AddCommand(exportCmd)
}
