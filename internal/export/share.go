package export

import (
	"strings"

	"github.com/iksnae/ai-wrapped/internal/stats"
)

// Sanitize reduces a full report to the share payload: only the fields
// a shared card deck actually displays survive. Bulk numeric arrays
// (per-session durations and message counts, hour maps, the daily /
// weekly / monthly tables) are stripped, the longest session's name is
// blanked, only the two quick-conversation distribution buckets are
// kept, and the top-session list is cut to one entry. This typically
// shrinks the stored payload by an order of magnitude.
func Sanitize(report *stats.Report) *stats.Report {
	sanitized := &stats.Report{
		Provider: report.Provider,

		TotalSessions:       report.TotalSessions,
		TotalMessages:       report.TotalMessages,
		TotalTokens:         report.TotalTokens,
		EstimatedWords:      report.EstimatedWords,
		HarryPotterMultiple: report.HarryPotterMultiple,

		EarliestDate: report.EarliestDate,
		LatestDate:   report.LatestDate,
		AccountAge:   report.AccountAge,

		FirstMessage:  report.FirstMessage,
		LatestMessage: report.LatestMessage,

		SessionsPerWeek:    report.SessionsPerWeek,
		MessagesPerSession: report.MessagesPerSession,

		LongestSession: stats.LongestSession{
			Name:            "", // not displayed on shared cards
			Duration:        report.LongestSession.Duration,
			DurationSeconds: report.LongestSession.DurationSeconds,
			Messages:        report.LongestSession.Messages,
			Date:            report.LongestSession.Date,
		},

		ThankYouCount:      report.ThankYouCount,
		ThankYouPercentage: report.ThankYouPercentage,
		ApologyCount:       report.ApologyCount,

		Streaks:             report.Streaks,
		ActiveDatesThisYear: report.ActiveDatesThisYear,
		TimeOfDay:           report.TimeOfDay,

		ImageUsage: report.ImageUsage,
		Persona:    report.Persona,
		ShareID:    report.ShareID,
	}

	for _, bucket := range report.MessageDistribution {
		if strings.Contains(bucket.Label, "Quick Q&A") || strings.Contains(bucket.Label, "Short") {
			sanitized.MessageDistribution = append(sanitized.MessageDistribution, bucket)
		}
	}
	if len(report.TopSessions) > 0 {
		sanitized.TopSessions = report.TopSessions[:1]
	}

	return sanitized
}
