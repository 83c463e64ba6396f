package stats

import (
	"sort"
	"time"

	"github.com/iksnae/ai-wrapped/internal"
)

const displayDateFormat = "Jan 2, 2006"

// buildDailyData buckets sessions by calendar day of their creation
// timestamp, recording session and summed message counts, ascending.
func buildDailyData(sessions []internal.Session) []DailyDataPoint {
	type dayBucket struct {
		day      time.Time
		sessions int
		messages int
	}

	buckets := make(map[string]*dayBucket)
	for _, session := range sessions {
		t, ok := internal.ParseTime(session.CreatedAt)
		if !ok {
			continue
		}
		key := t.Format(dayKeyFormat)
		entry, exists := buckets[key]
		if !exists {
			entry = &dayBucket{day: dayOf(t)}
			buckets[key] = entry
		}
		entry.sessions++
		entry.messages += len(session.Messages)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	data := make([]DailyDataPoint, 0, len(keys))
	for _, key := range keys {
		data = append(data, DailyDataPoint{
			Date:     key,
			Sessions: buckets[key].sessions,
			Messages: buckets[key].messages,
		})
	}
	return data
}

// buildWeeklyData buckets sessions by calendar week; weeks start on
// Sunday.
func buildWeeklyData(sessions []internal.Session) []WeeklyDataPoint {
	buckets := make(map[string]int)
	for _, session := range sessions {
		t, ok := internal.ParseTime(session.CreatedAt)
		if !ok {
			continue
		}
		weekStart := dayOf(t).AddDate(0, 0, -int(t.Weekday()))
		buckets[weekStart.Format(dayKeyFormat)]++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	data := make([]WeeklyDataPoint, 0, len(keys))
	for _, key := range keys {
		data = append(data, WeeklyDataPoint{Week: key, Sessions: buckets[key]})
	}
	return data
}

// buildMonthlyData buckets sessions by calendar month.
func buildMonthlyData(sessions []internal.Session) []MonthlyDataPoint {
	buckets := make(map[string]int)
	for _, session := range sessions {
		t, ok := internal.ParseTime(session.CreatedAt)
		if !ok {
			continue
		}
		buckets[t.Format("2006-01")]++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	data := make([]MonthlyDataPoint, 0, len(keys))
	for _, key := range keys {
		data = append(data, MonthlyDataPoint{Month: key, Sessions: buckets[key]})
	}
	return data
}

// peakWeekOf picks the week with the maximum session count. The first
// maximum over the ascending-time list wins, so the earliest bucket
// among equal maxima is reported.
func peakWeekOf(weekly []WeeklyDataPoint) *PeakWeek {
	if len(weekly) == 0 {
		return nil
	}
	best := weekly[0]
	for _, w := range weekly[1:] {
		if w.Sessions > best.Sessions {
			best = w
		}
	}
	start, _ := time.Parse(dayKeyFormat, best.Week)
	return &PeakWeek{Date: start.Format(displayDateFormat), Count: best.Sessions}
}

// peakMonthOf mirrors peakWeekOf for month buckets.
func peakMonthOf(monthly []MonthlyDataPoint) *PeakMonth {
	if len(monthly) == 0 {
		return nil
	}
	best := monthly[0]
	for _, m := range monthly[1:] {
		if m.Sessions > best.Sessions {
			best = m
		}
	}
	start, _ := time.Parse("2006-01", best.Month)
	return &PeakMonth{Date: start.Format("Jan 2006"), Count: best.Sessions}
}

// busiestDayOf picks the day with the most sessions; ties prefer the
// higher message count, further ties keep the earlier day.
func busiestDayOf(daily []DailyDataPoint) *BusiestDay {
	if len(daily) == 0 {
		return nil
	}
	best := daily[0]
	for _, d := range daily[1:] {
		if d.Sessions > best.Sessions ||
			(d.Sessions == best.Sessions && d.Messages > best.Messages) {
			best = d
		}
	}
	return &BusiestDay{Date: best.Date, Sessions: best.Sessions, Messages: best.Messages}
}

// messageDistributionOf buckets per-session message counts into the
// fixed boundaries 0 / 1-4 / 5-10 / 11-25 / 26-50 / 51+. Percentages
// are computed against the full session count.
func messageDistributionOf(counts []int) []DistributionBucket {
	buckets := []struct {
		label    string
		min, max int
	}{
		{"Empty (0)", 0, 0},
		{"Quick Q&A (1-4)", 1, 4},
		{"Short (5-10)", 5, 10},
		{"Medium (11-25)", 11, 25},
		{"Long (26-50)", 26, 50},
		{"Deep Dive (50+)", 51, 1 << 30},
	}

	distribution := make([]DistributionBucket, 0, len(buckets))
	for _, b := range buckets {
		n := 0
		for _, c := range counts {
			if c >= b.min && c <= b.max {
				n++
			}
		}
		pct := 0.0
		if len(counts) > 0 {
			pct = round1(float64(n) / float64(len(counts)) * 100)
		}
		distribution = append(distribution, DistributionBucket{Label: b.label, Count: n, Percentage: pct})
	}
	return distribution
}

// durationDistributionOf buckets whole-minute session durations into
// <1 / 1-10 / 10-60 / 60-240 / 240-1440 / 1440+ minutes. Percentages
// are against the count of sessions with a measurable duration.
func durationDistributionOf(minutes []int) []DistributionBucket {
	buckets := []struct {
		label    string
		min, max int
	}{
		{"Under 1 minute", 0, 0},
		{"1-10 minutes", 1, 9},
		{"10-60 minutes", 10, 59},
		{"1-4 hours", 60, 239},
		{"4-24 hours", 240, 1439},
		{"Multi-day (24+ hours)", 1440, 1 << 30},
	}

	distribution := make([]DistributionBucket, 0, len(buckets))
	for _, b := range buckets {
		n := 0
		for _, m := range minutes {
			if m >= b.min && m <= b.max {
				n++
			}
		}
		pct := 0.0
		if len(minutes) > 0 {
			pct = round1(float64(n) / float64(len(minutes)) * 100)
		}
		distribution = append(distribution, DistributionBucket{Label: b.label, Count: n, Percentage: pct})
	}
	return distribution
}
