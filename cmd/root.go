package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/ai-wrapped/internal"
	"github.com/spf13/cobra"
)

var (
	verbose          bool
	providerOverride string
	version          string = "dev"
	commit           string = "unknown"
	date             string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ai-wrapped",
	Short: "Compute Wrapped-style statistics from AI chat exports",
	Long: `Turn an exported AI-assistant conversation archive into your own
"Wrapped": streaks, peak weeks, politeness counters, time-of-day
habits and more.

Supported inputs are the zip exports of Claude (linear conversation
log) and ChatGPT (branching message tree); the provider is detected
automatically from the data.

Quick Start:
  ai-wrapped analyze export.zip             # Show the stat cards
  ai-wrapped export export.zip -f yaml      # Dump the full bundle
  ai-wrapped share export.zip               # Save a shareable snapshot
  ai-wrapped serve                          # Serve saved shares over HTTP

For detailed usage, see: https://github.com/iksnae/ai-wrapped`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&providerOverride, "provider", "", "Skip detection and parse as this provider (claude, chatgpt)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveOverride validates the --provider flag.
func resolveOverride() (internal.Provider, error) {
	if providerOverride == "" {
		return "", nil
	}
	p := internal.Provider(providerOverride)
	if !p.Valid() {
		return "", fmt.Errorf("unknown provider %q (supported: claude, chatgpt)", providerOverride)
	}
	return p, nil
}
