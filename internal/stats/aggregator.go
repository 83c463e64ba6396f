package stats

import (
	"fmt"
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/iksnae/ai-wrapped/internal"
)

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// estimateTokens approximates the token count of a text as
// ceil(length/4). This is a deliberate approximation, not a tokenizer.
func estimateTokens(text string) int {
	return (utf8.RuneCountInString(text) + 3) / 4
}

// Calculate computes the full statistics bundle for a session list.
func Calculate(provider internal.Provider, sessions []internal.Session) *Report {
	return CalculateAt(provider, sessions, time.Now())
}

// CalculateAt is Calculate with an explicit "now", which anchors the
// current-streak check and the current-year active dates. Aside from
// the clock it is a pure function of its inputs and never fails:
// metrics whose preconditions are unmet come back as zero values, and
// every division is guarded against a zero denominator.
func CalculateAt(provider internal.Provider, sessions []internal.Session, now time.Time) *Report {
	report := &Report{
		Provider: provider,
		LongestSession: LongestSession{
			Name: "N/A", Duration: "0 seconds", Date: "N/A",
		},
		MedianDuration:      "0 seconds",
		SessionsByDayOfWeek: make(map[string]int, len(weekdayNames)),
		MessagesByHour:      make(map[int]int),
	}
	for _, day := range weekdayNames {
		report.SessionsByDayOfWeek[day] = 0
	}

	nonEmpty := make([]internal.Session, 0, len(sessions))
	for _, s := range sessions {
		if len(s.Messages) > 0 {
			nonEmpty = append(nonEmpty, s)
		}
	}

	countBasics(report, sessions)
	countImages(report, sessions)
	countPoliteness(report, sessions)
	report.TimeOfDay = timeOfDayOf(sessions)

	report.EstimatedWords = int(math.Round(float64(report.TotalTokens) * 0.75))
	report.HarryPotterMultiple = round1(float64(report.EstimatedWords) / harryPotterWords)

	if report.HumanTokens > 0 {
		report.TurnTakingRatio = round1(float64(report.AssistantTokens) / float64(report.HumanTokens))
	}
	if report.HumanMessages > 0 {
		report.ThankYouPercentage = round2(float64(report.ThankYouCount) / float64(report.HumanMessages) * 100)
	}

	timeRange(report, sessions)

	report.DailyData = buildDailyData(sessions)
	report.WeeklyData = buildWeeklyData(sessions)
	report.MonthlyData = buildMonthlyData(sessions)
	report.PeakWeek = peakWeekOf(report.WeeklyData)
	report.PeakMonth = peakMonthOf(report.MonthlyData)
	report.BusiestDay = busiestDayOf(report.DailyData)

	measureDurations(report, nonEmpty)
	report.DurationDistribution = durationDistributionOf(report.SessionDurationsMinutes)
	report.MessageDistribution = messageDistributionOf(report.SessionMessageCounts)

	report.TopSessions = topSessionsOf(sessions)
	report.PowerDays = powerDaysOf(report.SessionsByDayOfWeek)
	report.Streaks = calculateStreaks(nonEmpty, now)

	firstAndLatest(report, nonEmpty)

	yearPrefix := fmt.Sprintf("%04d", now.Year())
	for _, d := range report.DailyData {
		if len(d.Date) >= 4 && d.Date[:4] == yearPrefix {
			report.ActiveDatesThisYear = append(report.ActiveDatesThisYear, d.Date)
		}
	}

	if totalWeeks := len(report.WeeklyData); totalWeeks > 0 {
		report.SessionsPerWeek = round1(float64(len(sessions)) / float64(totalWeeks))
	}
	if len(sessions) > 0 {
		report.MessagesPerSession = round1(float64(report.TotalMessages) / float64(len(sessions)))
	}

	return report
}

// countBasics fills the raw totals, per-session arrays and the hour /
// weekday histograms. It runs over the full, unfiltered session list.
func countBasics(report *Report, sessions []internal.Session) {
	for _, session := range sessions {
		report.SessionMessageCounts = append(report.SessionMessageCounts, len(session.Messages))
		if len(session.Messages) > 0 {
			report.FirstMessageTokens = append(report.FirstMessageTokens, estimateTokens(session.Messages[0].Text))
		}

		if t, ok := internal.ParseTime(session.CreatedAt); ok {
			report.SessionsByDayOfWeek[weekdayNames[int(t.Weekday())]]++
		}

		for _, msg := range session.Messages {
			report.TotalMessages++
			tokens := estimateTokens(msg.Text)
			report.TotalTokens += tokens

			if t, ok := internal.ParseTime(msg.CreatedAt); ok {
				report.MessagesByHour[t.Hour()]++
			}

			if msg.Sender == internal.SenderHuman {
				report.HumanMessages++
				report.HumanTokens += tokens
			} else {
				report.AssistantMessages++
				report.AssistantTokens += tokens
			}
		}
	}
	report.TotalSessions = len(sessions)
}

// countImages summarizes image attachments. Only branching-tree
// exports carry them, so the summary stays nil for other providers or
// when no images exist.
func countImages(report *Report, sessions []internal.Session) {
	if report.Provider != internal.ProviderChatGPT {
		return
	}

	usage := ImageUsage{}
	var top *ImageSession
	for _, session := range sessions {
		sessionTotal := 0
		for _, msg := range session.Messages {
			for _, att := range msg.Attachments {
				if att.Type == "image" {
					sessionTotal += att.Count
				}
			}
		}
		if sessionTotal == 0 {
			continue
		}
		usage.TotalImages += sessionTotal
		usage.SessionsWithImages++
		if top == nil || sessionTotal > top.ImageCount {
			name := session.Name
			if name == "" {
				name = internal.PlaceholderName
			}
			top = &ImageSession{Name: name, Date: session.CreatedAt, ImageCount: sessionTotal}
		}
	}

	if usage.TotalImages > 0 {
		usage.TopSession = top
		report.ImageUsage = &usage
	}
}

// countPoliteness counts gratitude in human messages and apologies in
// assistant messages.
func countPoliteness(report *Report, sessions []internal.Session) {
	for _, session := range sessions {
		for _, msg := range session.Messages {
			switch msg.Sender {
			case internal.SenderHuman:
				if isGratitude(msg.Text) {
					report.ThankYouCount++
				}
			case internal.SenderAssistant:
				if isApology(msg.Text) {
					report.ApologyCount++
				}
			}
		}
	}
}

// timeOfDayOf counts every message into one of four fixed hour bands.
func timeOfDayOf(sessions []internal.Session) TimeOfDay {
	periods := []TimeOfDayPeriod{
		{Period: "Morning", Emoji: "☀️"},
		{Period: "Afternoon", Emoji: "🌤️"},
		{Period: "Evening", Emoji: "🌆"},
		{Period: "Midnight", Emoji: "🌙"},
	}

	total := 0
	for _, session := range sessions {
		for _, msg := range session.Messages {
			total++
			t, ok := internal.ParseTime(msg.CreatedAt)
			if !ok {
				periods[3].Count++ // epoch sentinel lands at midnight
				continue
			}
			hour := t.Hour()
			switch {
			case hour >= 6 && hour < 12:
				periods[0].Count++
			case hour >= 12 && hour < 18:
				periods[1].Count++
			case hour >= 18:
				periods[2].Count++
			default:
				periods[3].Count++
			}
		}
	}

	for i := range periods {
		if total > 0 {
			periods[i].Percentage = round1(float64(periods[i].Count) / float64(total) * 100)
		}
	}
	return TimeOfDay{Periods: periods}
}

// timeRange finds the earliest and latest session creation times and
// formats the account-age span.
func timeRange(report *Report, sessions []internal.Session) {
	var earliest, latest time.Time
	found := false
	for _, session := range sessions {
		t, ok := internal.ParseTime(session.CreatedAt)
		if !ok {
			continue
		}
		if !found {
			earliest, latest = t, t
			found = true
			continue
		}
		if t.Before(earliest) {
			earliest = t
		}
		if t.After(latest) {
			latest = t
		}
	}
	if !found {
		return
	}

	report.EarliestDate = earliest.Format("Jan 2006")
	report.LatestDate = latest.Format("Jan 2006")
	report.AccountAge = accountAge(earliest, latest)
}

// measureDurations computes per-session durations (first to last
// message, sessions with fewer than two messages excluded), the single
// longest session, and the median whole-minute duration.
func measureDurations(report *Report, nonEmpty []internal.Session) {
	maxSeconds := 0.0
	for _, session := range nonEmpty {
		if len(session.Messages) < 2 {
			continue
		}
		first, ok1 := internal.ParseTime(session.Messages[0].CreatedAt)
		last, ok2 := internal.ParseTime(session.Messages[len(session.Messages)-1].CreatedAt)
		if !ok1 || !ok2 {
			continue
		}

		seconds := math.Abs(last.Sub(first).Seconds())
		minutes := int(math.Round(seconds / 60))
		report.SessionDurationsMinutes = append(report.SessionDurationsMinutes, minutes)

		if seconds > maxSeconds {
			maxSeconds = seconds
			name := session.Name
			if name == "" {
				name = internal.PlaceholderName
			}
			date := "N/A"
			if t, ok := internal.ParseTime(session.CreatedAt); ok {
				date = t.Format(displayDateFormat)
			}
			report.LongestSession = LongestSession{
				Name:            name,
				Duration:        FormatDuration(seconds),
				DurationSeconds: seconds,
				Messages:        len(session.Messages),
				Date:            date,
			}
		}
	}
	report.MedianDuration = medianDuration(report.SessionDurationsMinutes)
}

// topSessionsOf ranks all sessions by message count descending and
// keeps the top ten, each annotated with its token total.
func topSessionsOf(sessions []internal.Session) []TopSession {
	ranked := make([]TopSession, 0, len(sessions))
	for _, session := range sessions {
		tokens := 0
		for _, msg := range session.Messages {
			tokens += estimateTokens(msg.Text)
		}
		name := session.Name
		if name == "" {
			name = internal.PlaceholderName
		}
		date := ""
		if t, ok := internal.ParseTime(session.CreatedAt); ok {
			date = t.Format(displayDateFormat)
		}
		ranked = append(ranked, TopSession{
			Name:     name,
			Messages: len(session.Messages),
			Date:     date,
			Tokens:   tokens,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Messages > ranked[j].Messages
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	return ranked
}

// powerDaysOf picks the top four weekdays by session count. Ties keep
// the Sunday-first weekday order.
func powerDaysOf(byDay map[string]int) *PowerDays {
	days := append([]string(nil), weekdayNames...)
	sort.SliceStable(days, func(i, j int) bool {
		return byDay[days[i]] > byDay[days[j]]
	})
	return &PowerDays{TopDays: days[:4]}
}

// firstAndLatest finds the earliest and the most recent session with a
// displayable human message and records truncated snippets of each.
func firstAndLatest(report *Report, nonEmpty []internal.Session) {
	type dated struct {
		session internal.Session
		t       time.Time
	}
	candidates := make([]dated, 0, len(nonEmpty))
	for _, session := range nonEmpty {
		if t, ok := internal.ParseTime(session.CreatedAt); ok {
			candidates = append(candidates, dated{session: session, t: t})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].t.Before(candidates[j].t)
	})

	for _, c := range candidates {
		if snippet, ok := firstHumanSnippet(c.session, true); ok {
			report.FirstMessage = &snippet
			break
		}
	}
	for i := len(candidates) - 1; i >= 0; i-- {
		if snippet, ok := firstHumanSnippet(candidates[i].session, false); ok {
			report.LatestMessage = &snippet
			break
		}
	}
}
