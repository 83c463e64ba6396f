package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ai-wrapped/internal"
	"github.com/iksnae/ai-wrapped/internal/stats"
	"github.com/spf13/cobra"
)

var (
	// Styles
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Width(46)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <export.zip>",
	Short: "Compute and display Wrapped statistics for an export",
	Long: `Parse an exported conversation archive, compute the full statistics
bundle and render it as a deck of terminal cards.`,
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
		fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// describeParseError keeps the ambiguous-provider case distinguishable
// from genuine corruption so the user knows a manual choice will help.
func describeParseError(err error) error {
	var ambiguous *internal.AmbiguousProviderError
	if errors.As(err, &ambiguous) {
		return fmt.Errorf("%v\nHint: rerun with --provider claude or --provider chatgpt", err)
	}
	return err
}

func renderReport(r *stats.Report) string {
	var cards []string

	cards = append(cards, card("Volume",
		stat(formatInt(r.TotalSessions), "conversations"),
		stat(formatInt(r.TotalMessages), "messages"),
		stat(formatInt(r.EstimatedWords), "estimated words"),
		stat(fmt.Sprintf("%.1fx", r.HarryPotterMultiple), "the Harry Potter series"),
	))

	if r.AccountAge != "" {
		cards = append(cards, card("Time span",
			stat(r.AccountAge, fmt.Sprintf("%s - %s", r.EarliestDate, r.LatestDate)),
		))
	}

	if r.Streaks != nil {
		lines := []string{
			stat(fmt.Sprintf("%d days", r.Streaks.Longest.Length),
				fmt.Sprintf("longest streak (%s - %s)", r.Streaks.Longest.StartDate, r.Streaks.Longest.EndDate)),
			stat(formatInt(r.Streaks.TotalActiveDays), "active days overall"),
		}
		if r.Streaks.Current.IsActive {
			lines = append(lines, stat(fmt.Sprintf("%d days", r.Streaks.Current.Length), "current streak"))
		}
		cards = append(cards, card("Streaks", lines...))
	}

	if r.BusiestDay != nil {
		cards = append(cards, card("Peaks",
			stat(r.BusiestDay.Date, fmt.Sprintf("busiest day (%d sessions, %d messages)",
				r.BusiestDay.Sessions, r.BusiestDay.Messages)),
			peakLine(r),
		))
	}

	if r.LongestSession.DurationSeconds > 0 {
		cards = append(cards, card("Longest session",
			stat(r.LongestSession.Duration,
				fmt.Sprintf("%d messages on %s", r.LongestSession.Messages, r.LongestSession.Date)),
			stat(r.MedianDuration, "median session"),
		))
	}

	var tod []string
	for _, p := range r.TimeOfDay.Periods {
		tod = append(tod, stat(fmt.Sprintf("%.1f%%", p.Percentage), fmt.Sprintf("%s %s", p.Emoji, p.Period)))
	}
	cards = append(cards, card("Time of day", tod...))

	cards = append(cards, card("Politeness",
		stat(formatInt(r.ThankYouCount), fmt.Sprintf("thank-yous (%.2f%% of your messages)", r.ThankYouPercentage)),
		stat(formatInt(r.ApologyCount), "assistant apologies"),
	))

	if r.FirstMessage != nil {
		cards = append(cards, card("How it started",
			fmt.Sprintf("%q", r.FirstMessage.Text),
			statLabelStyle.Render(r.FirstMessage.Date),
		))
	}
	if r.LatestMessage != nil {
		cards = append(cards, card("How it's going",
			fmt.Sprintf("%q", r.LatestMessage.Text),
			statLabelStyle.Render(r.LatestMessage.Date),
		))
	}

	return strings.Join(cards, "\n")
}

func card(title string, lines ...string) string {
	body := cardTitleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
	return cardStyle.Render(body)
}

func stat(value, label string) string {
	return statValueStyle.Render(value) + " " + statLabelStyle.Render(label)
}

func peakLine(r *stats.Report) string {
	if r.PeakWeek == nil {
		return ""
	}
	return stat(r.PeakWeek.Date, fmt.Sprintf("peak week (%d sessions)", r.PeakWeek.Count))
}

// formatInt renders an integer with thousands separators.
func formatInt(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 || len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
