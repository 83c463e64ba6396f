package stats

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0 seconds"},
		{45, "45 seconds"},
		{60, "1 minute"},
		{300, "5 minutes"},
		{330, "6 minutes"}, // 5.5 minutes rounds up
		{3600, "1 hour"},
		{7200, "2 hours"},
		{8040, "2 hours, 14 min"},
		{86400, "1 day"},
		{90000, "1 day, 1 hour"},
		{176400, "2 days, 1 hour"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestMedianDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes []int
		want    string
	}{
		{name: "empty", minutes: nil, want: "0 seconds"},
		{name: "single", minutes: []int{5}, want: "5 minutes"},
		{name: "odd count", minutes: []int{3, 1, 2}, want: "2 minutes"},
		// Even counts take the upper of the two middle values.
		{name: "even count", minutes: []int{2, 10}, want: "10 minutes"},
		{name: "even count four", minutes: []int{1, 2, 8, 9}, want: "8 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := medianDuration(tt.minutes); got != tt.want {
				t.Errorf("medianDuration(%v) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestAccountAge(t *testing.T) {
	date := func(s string) time.Time {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad fixture date %q: %v", s, err)
		}
		return parsed
	}

	tests := []struct {
		name             string
		earliest, latest string
		want             string
	}{
		{name: "same month", earliest: "2024-03-01", latest: "2024-03-20", want: "0 months"},
		{name: "months only", earliest: "2024-01-01", latest: "2024-04-15", want: "3 months"},
		{name: "exactly one year", earliest: "2023-03-01", latest: "2024-03-01", want: "1 year"},
		{name: "years and months", earliest: "2023-01-10", latest: "2024-03-15", want: "1 year, 2 months"},
		{name: "partial month not counted", earliest: "2024-01-15", latest: "2024-02-10", want: "0 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := accountAge(date(tt.earliest), date(tt.latest)); got != tt.want {
				t.Errorf("accountAge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRounding(t *testing.T) {
	if got := round1(2168340.0 / harryPotterWords); got != 2.0 {
		t.Errorf("round1(two Potters) = %v, want 2.0", got)
	}
	if got := round1(1.25); got != 1.3 {
		t.Errorf("round1(1.25) = %v, want 1.3", got)
	}
	if got := round2(33.333333); got != 33.33 {
		t.Errorf("round2(33.333333) = %v, want 33.33", got)
	}
}
