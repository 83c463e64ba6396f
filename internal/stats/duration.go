package stats

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// FormatDuration renders a duration in seconds as a human-readable
// string: "45 seconds", "5 minutes", "2 hours, 14 min", "3 days, 1 hour".
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d seconds", int(math.Round(seconds)))
	case seconds < 3600:
		minutes := int(math.Round(seconds / 60))
		return fmt.Sprintf("%d %s", minutes, plural("minute", minutes))
	case seconds < 86400:
		hours := int(seconds / 3600)
		minutes := int(math.Round(math.Mod(seconds, 3600) / 60))
		if minutes > 0 {
			return fmt.Sprintf("%d %s, %d min", hours, plural("hour", hours), minutes)
		}
		return fmt.Sprintf("%d %s", hours, plural("hour", hours))
	default:
		days := int(seconds / 86400)
		hours := int(math.Mod(seconds, 86400) / 3600)
		if hours > 0 {
			return fmt.Sprintf("%d %s, %d %s", days, plural("day", days), hours, plural("hour", hours))
		}
		return fmt.Sprintf("%d %s", days, plural("day", days))
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// medianDuration formats the median of the whole-minute durations.
// The index is floor(n/2) on the ascending-sorted list, which for even
// n yields the upper of the two middle values rather than their
// average. Downstream display text assumes this exact value, so the
// quirk is kept.
func medianDuration(minutes []int) string {
	if len(minutes) == 0 {
		return "0 seconds"
	}
	sorted := append([]int(nil), minutes...)
	sort.Ints(sorted)
	return FormatDuration(float64(sorted[len(sorted)/2] * 60))
}

// accountAge renders the span between the earliest and latest session
// as "N years, M months" / "N years" / "M months".
func accountAge(earliest, latest time.Time) string {
	months := fullMonthsBetween(earliest, latest)
	years := months / 12
	months = months % 12

	if years > 0 {
		if months > 0 {
			return fmt.Sprintf("%d %s, %d %s", years, plural("year", years), months, plural("month", months))
		}
		return fmt.Sprintf("%d %s", years, plural("year", years))
	}
	return fmt.Sprintf("%d %s", months, plural("month", months))
}

// fullMonthsBetween counts whole calendar months from a to b.
func fullMonthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if a.AddDate(0, months, 0).After(b) {
		months--
	}
	return months
}

// round1 rounds to one decimal place, round2 to two.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
