package stats

import (
	"testing"

	"github.com/iksnae/ai-wrapped/internal"
)

func sessionWithMessages(createdAt string, messageCount int) internal.Session {
	messages := make([]internal.Message, messageCount)
	for i := range messages {
		messages[i] = internal.Message{Text: "m", Sender: internal.SenderHuman, CreatedAt: createdAt}
	}
	return internal.Session{UUID: createdAt, CreatedAt: createdAt, Messages: messages}
}

func TestBuildDailyData(t *testing.T) {
	sessions := []internal.Session{
		sessionWithMessages("2024-03-05T09:00:00Z", 2),
		sessionWithMessages("2024-03-05T15:00:00Z", 3),
		sessionWithMessages("2024-03-01T09:00:00Z", 1),
		{CreatedAt: "garbage"},
	}

	daily := buildDailyData(sessions)
	if len(daily) != 2 {
		t.Fatalf("len(daily) = %d, want 2", len(daily))
	}
	if daily[0].Date != "2024-03-01" {
		t.Errorf("daily[0].Date = %s, want ascending order", daily[0].Date)
	}
	if daily[1].Sessions != 2 || daily[1].Messages != 5 {
		t.Errorf("daily[1] = %+v, want 2 sessions, 5 messages", daily[1])
	}
}

func TestBuildWeeklyDataStartsSunday(t *testing.T) {
	// 2024-03-06 is a Wednesday; its week starts Sunday 2024-03-03.
	sessions := []internal.Session{
		sessionWithMessages("2024-03-06T09:00:00Z", 1),
		sessionWithMessages("2024-03-08T09:00:00Z", 1),
		sessionWithMessages("2024-03-10T09:00:00Z", 1), // next week's Sunday
	}

	weekly := buildWeeklyData(sessions)
	if len(weekly) != 2 {
		t.Fatalf("len(weekly) = %d, want 2", len(weekly))
	}
	if weekly[0].Week != "2024-03-03" || weekly[0].Sessions != 2 {
		t.Errorf("weekly[0] = %+v, want week 2024-03-03 with 2 sessions", weekly[0])
	}
	if weekly[1].Week != "2024-03-10" {
		t.Errorf("weekly[1].Week = %s, want 2024-03-10", weekly[1].Week)
	}
}

func TestBuildMonthlyData(t *testing.T) {
	sessions := []internal.Session{
		sessionWithMessages("2024-04-20T09:00:00Z", 1),
		sessionWithMessages("2024-03-06T09:00:00Z", 1),
		sessionWithMessages("2024-03-28T09:00:00Z", 1),
	}

	monthly := buildMonthlyData(sessions)
	if len(monthly) != 2 {
		t.Fatalf("len(monthly) = %d, want 2", len(monthly))
	}
	if monthly[0].Month != "2024-03" || monthly[0].Sessions != 2 {
		t.Errorf("monthly[0] = %+v", monthly[0])
	}
}

func TestPeakWeekFirstMaxWins(t *testing.T) {
	weekly := []WeeklyDataPoint{
		{Week: "2024-03-03", Sessions: 4},
		{Week: "2024-03-10", Sessions: 4},
		{Week: "2024-03-17", Sessions: 2},
	}

	peak := peakWeekOf(weekly)
	if peak == nil {
		t.Fatal("peak is nil")
	}
	if peak.Date != "Mar 3, 2024" || peak.Count != 4 {
		t.Errorf("peak = %+v, want the earlier of the tied weeks", peak)
	}

	if peakWeekOf(nil) != nil {
		t.Error("peakWeekOf(nil) should be nil")
	}
}

func TestPeakMonthFormat(t *testing.T) {
	peak := peakMonthOf([]MonthlyDataPoint{
		{Month: "2024-03", Sessions: 1},
		{Month: "2024-04", Sessions: 9},
	})
	if peak == nil {
		t.Fatal("peak is nil")
	}
	if peak.Date != "Apr 2024" || peak.Count != 9 {
		t.Errorf("peak = %+v", peak)
	}
}

func TestBusiestDayTieBreaks(t *testing.T) {
	daily := []DailyDataPoint{
		{Date: "2024-03-01", Sessions: 3, Messages: 10},
		{Date: "2024-03-02", Sessions: 3, Messages: 25},
		{Date: "2024-03-03", Sessions: 3, Messages: 25},
	}

	busiest := busiestDayOf(daily)
	if busiest == nil {
		t.Fatal("busiest is nil")
	}
	// More messages beats the earlier tie; a full tie keeps the earlier day.
	if busiest.Date != "2024-03-02" {
		t.Errorf("busiest.Date = %s, want 2024-03-02", busiest.Date)
	}

	if busiestDayOf(nil) != nil {
		t.Error("busiestDayOf(nil) should be nil")
	}
}

func TestMessageDistribution(t *testing.T) {
	distribution := messageDistributionOf([]int{0, 2, 7, 30})
	if len(distribution) != 6 {
		t.Fatalf("len(distribution) = %d, want 6", len(distribution))
	}

	wantCounts := map[string]int{
		"Empty (0)":       1,
		"Quick Q&A (1-4)": 1,
		"Short (5-10)":    1,
		"Medium (11-25)":  0,
		"Long (26-50)":    1,
		"Deep Dive (50+)": 0,
	}
	for _, bucket := range distribution {
		if bucket.Count != wantCounts[bucket.Label] {
			t.Errorf("bucket %q count = %d, want %d", bucket.Label, bucket.Count, wantCounts[bucket.Label])
		}
		if bucket.Count == 1 && bucket.Percentage != 25.0 {
			t.Errorf("bucket %q percentage = %v, want 25.0", bucket.Label, bucket.Percentage)
		}
	}
}

func TestDurationDistribution(t *testing.T) {
	distribution := durationDistributionOf([]int{0, 5, 30, 100, 500, 2000})
	if len(distribution) != 6 {
		t.Fatalf("len(distribution) = %d, want 6", len(distribution))
	}
	for _, bucket := range distribution {
		if bucket.Count != 1 {
			t.Errorf("bucket %q count = %d, want 1", bucket.Label, bucket.Count)
		}
		if bucket.Percentage != 16.7 {
			t.Errorf("bucket %q percentage = %v, want 16.7", bucket.Label, bucket.Percentage)
		}
	}
}

func TestDistributionEmptyInput(t *testing.T) {
	for _, bucket := range messageDistributionOf(nil) {
		if bucket.Count != 0 || bucket.Percentage != 0 {
			t.Errorf("bucket %q = %+v, want zeros", bucket.Label, bucket)
		}
	}
}
