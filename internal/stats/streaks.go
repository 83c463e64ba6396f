package stats

import (
	"sort"
	"time"

	"github.com/iksnae/ai-wrapped/internal"
)

const dayKeyFormat = "2006-01-02"

// dayOf truncates a timestamp to midnight of its calendar day,
// re-anchored in UTC so day arithmetic is a plain 24h division.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// calendarDaysBetween returns the number of calendar days from a to b,
// both already truncated by dayOf.
func calendarDaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

type activeDay struct {
	date         time.Time
	sessionCount int
}

// calculateStreaks collapses sessions to a set of active calendar days
// and walks them in order: a gap of exactly one day continues a streak,
// anything else closes it. The longest streak breaks ties by total
// session count; the current streak only exists when the most recent
// activity is at most one calendar day before now.
func calculateStreaks(sessions []internal.Session, now time.Time) *StreakSummary {
	if len(sessions) == 0 {
		return nil
	}

	dayMap := make(map[string]*activeDay)
	for _, session := range sessions {
		t, ok := internal.ParseTime(session.CreatedAt)
		if !ok {
			continue
		}
		key := t.Format(dayKeyFormat)
		if entry, exists := dayMap[key]; exists {
			entry.sessionCount++
		} else {
			dayMap[key] = &activeDay{date: dayOf(t), sessionCount: 1}
		}
	}

	days := make([]*activeDay, 0, len(dayMap))
	for _, entry := range dayMap {
		days = append(days, entry)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].date.Before(days[j].date)
	})

	if len(days) == 0 {
		return nil
	}

	longest := Streak{
		Length:       1,
		StartDate:    days[0].date.Format(dayKeyFormat),
		EndDate:      days[0].date.Format(dayKeyFormat),
		SessionCount: days[0].sessionCount,
	}

	currentLength := 1
	currentStart := days[0].date
	currentEnd := days[0].date
	currentSessions := days[0].sessionCount

	commit := func() {
		if currentLength > longest.Length ||
			(currentLength == longest.Length && currentSessions > longest.SessionCount) {
			longest = Streak{
				Length:       currentLength,
				StartDate:    currentStart.Format(dayKeyFormat),
				EndDate:      currentEnd.Format(dayKeyFormat),
				SessionCount: currentSessions,
			}
		}
	}

	for i := 1; i < len(days); i++ {
		gap := calendarDaysBetween(days[i-1].date, days[i].date)
		if gap == 1 {
			currentLength++
			currentSessions += days[i].sessionCount
		} else {
			commit()
			currentLength = 1
			currentStart = days[i].date
			currentSessions = days[i].sessionCount
		}
		currentEnd = days[i].date
	}
	commit()

	mostRecent := days[len(days)-1]
	daysSinceLast := calendarDaysBetween(mostRecent.date, dayOf(now))

	current := CurrentStreak{}
	if daysSinceLast <= 1 {
		current.IsActive = true
		current.Length = 1
		current.SessionCount = mostRecent.sessionCount
		current.StartDate = mostRecent.date.Format(dayKeyFormat)
		current.EndDate = mostRecent.date.Format(dayKeyFormat)

		for i := len(days) - 2; i >= 0; i-- {
			if calendarDaysBetween(days[i].date, days[i+1].date) != 1 {
				break
			}
			current.Length++
			current.SessionCount += days[i].sessionCount
			current.StartDate = days[i].date.Format(dayKeyFormat)
		}
	}

	return &StreakSummary{
		Longest:                   longest,
		Current:                   current,
		TotalActiveDays:           len(days),
		DaysSinceLastConversation: daysSinceLast,
	}
}
