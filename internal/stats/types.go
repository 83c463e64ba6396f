// Package stats computes the derived "Wrapped" statistics bundle from
// a canonical session list. The aggregator is a pure function: it never
// fails, reads nothing but its inputs, and reports zero/empty defaults
// for any metric whose preconditions are unmet.
package stats

import "github.com/iksnae/ai-wrapped/internal"

// harryPotterWords is the approximate word count of all seven books,
// used for the comparative multiple.
const harryPotterWords = 1084170

// DailyDataPoint is one calendar-day bucket of session activity.
type DailyDataPoint struct {
	Date     string `json:"date" yaml:"date"`
	Sessions int    `json:"sessions" yaml:"sessions"`
	Messages int    `json:"messages" yaml:"messages"`
}

// WeeklyDataPoint is one calendar-week bucket; weeks start on Sunday.
type WeeklyDataPoint struct {
	Week     string `json:"week" yaml:"week"`
	Sessions int    `json:"sessions" yaml:"sessions"`
}

// MonthlyDataPoint is one calendar-month bucket.
type MonthlyDataPoint struct {
	Month    string `json:"month" yaml:"month"`
	Sessions int    `json:"sessions" yaml:"sessions"`
}

// PeakWeek is the week bucket with the most sessions.
type PeakWeek struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

// PeakMonth is the month bucket with the most sessions.
type PeakMonth struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

// BusiestDay is the day bucket with the most sessions; ties prefer the
// day with more messages, then the earlier day.
type BusiestDay struct {
	Date     string `json:"date" yaml:"date"`
	Sessions int    `json:"sessions" yaml:"sessions"`
	Messages int    `json:"messages" yaml:"messages"`
}

// LongestSession describes the single maximum-duration session.
type LongestSession struct {
	Name            string  `json:"name" yaml:"name"`
	Duration        string  `json:"duration" yaml:"duration"`
	DurationSeconds float64 `json:"durationSeconds" yaml:"durationSeconds"`
	Messages        int     `json:"messages" yaml:"messages"`
	Date            string  `json:"date" yaml:"date"`
}

// TopSession is one entry of the top-10-by-message-count ranking.
type TopSession struct {
	Name     string `json:"name" yaml:"name"`
	Messages int    `json:"messages" yaml:"messages"`
	Date     string `json:"date" yaml:"date"`
	Tokens   int    `json:"tokens" yaml:"tokens"`
}

// DistributionBucket is one row of a fixed-boundary distribution table.
type DistributionBucket struct {
	Label      string  `json:"label" yaml:"label"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// PowerDays lists the top weekdays by session count.
type PowerDays struct {
	TopDays []string `json:"topDays" yaml:"topDays"`
}

// TimeOfDayPeriod is one of the four fixed local-hour bands.
type TimeOfDayPeriod struct {
	Period     string  `json:"period" yaml:"period"`
	Emoji      string  `json:"emoji" yaml:"emoji"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// TimeOfDay is the message histogram over the four hour bands.
type TimeOfDay struct {
	Periods []TimeOfDayPeriod `json:"periods" yaml:"periods"`
}

// Streak is a run of consecutive calendar days with at least one
// session.
type Streak struct {
	Length       int    `json:"length" yaml:"length"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	EndDate      string `json:"endDate" yaml:"endDate"`
	SessionCount int    `json:"sessionCount" yaml:"sessionCount"`
}

// CurrentStreak is the streak ending at "now", if still active (last
// activity at most one calendar day old).
type CurrentStreak struct {
	Length       int    `json:"length" yaml:"length"`
	IsActive     bool   `json:"isActive" yaml:"isActive"`
	StartDate    string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	SessionCount int    `json:"sessionCount,omitempty" yaml:"sessionCount,omitempty"`
}

// StreakSummary aggregates streak metrics over the active-day set.
type StreakSummary struct {
	Longest                   Streak        `json:"longest" yaml:"longest"`
	Current                   CurrentStreak `json:"current" yaml:"current"`
	TotalActiveDays           int           `json:"totalActiveDays" yaml:"totalActiveDays"`
	DaysSinceLastConversation int           `json:"daysSinceLastConversation" yaml:"daysSinceLastConversation"`
}

// MessageSnippet is a truncated displayable message with its date.
type MessageSnippet struct {
	Text string `json:"text" yaml:"text"`
	Date string `json:"date" yaml:"date"`
}

// ImageSession identifies the session with the most generated images.
type ImageSession struct {
	Name       string `json:"name" yaml:"name"`
	Date       string `json:"date" yaml:"date"`
	ImageCount int    `json:"imageCount" yaml:"imageCount"`
}

// ImageUsage summarizes image-generation activity (branching-tree
// exports only).
type ImageUsage struct {
	TotalImages        int           `json:"totalImages" yaml:"totalImages"`
	SessionsWithImages int           `json:"sessionsWithImages" yaml:"sessionsWithImages"`
	TopSession         *ImageSession `json:"topSession,omitempty" yaml:"topSession,omitempty"`
}

// Persona is the LLM-generated blurb attached by downstream consumers;
// the aggregator itself never fills it in.
type Persona struct {
	Title      string `json:"title" yaml:"title"`
	Summary    string `json:"summary" yaml:"summary"`
	Roast      string `json:"roast" yaml:"roast"`
	Prediction string `json:"prediction" yaml:"prediction"`
}

// Report is the full derived statistics bundle: a flat, fully computed
// snapshot produced once per input archive and immutable thereafter.
// The bulk numeric arrays carry omitempty so the sanitized share copy
// marshals without them.
type Report struct {
	Provider internal.Provider `json:"provider" yaml:"provider"`

	TotalSessions       int     `json:"totalSessions" yaml:"totalSessions"`
	TotalMessages       int     `json:"totalMessages" yaml:"totalMessages"`
	TotalTokens         int     `json:"totalTokens" yaml:"totalTokens"`
	EstimatedWords      int     `json:"estimatedWords" yaml:"estimatedWords"`
	HarryPotterMultiple float64 `json:"harryPotterMultiple" yaml:"harryPotterMultiple"`

	EarliestDate string `json:"earliestDate" yaml:"earliestDate"`
	LatestDate   string `json:"latestDate" yaml:"latestDate"`
	AccountAge   string `json:"accountAge" yaml:"accountAge"`

	SessionDurationsMinutes []int          `json:"sessionDurationsMinutes,omitempty" yaml:"sessionDurationsMinutes,omitempty"`
	SessionMessageCounts    []int          `json:"sessionMessageCounts,omitempty" yaml:"sessionMessageCounts,omitempty"`
	FirstMessageTokens      []int          `json:"firstMessageTokens,omitempty" yaml:"firstMessageTokens,omitempty"`
	MessagesByHour          map[int]int    `json:"messagesByHour,omitempty" yaml:"messagesByHour,omitempty"`
	SessionsByDayOfWeek     map[string]int `json:"sessionsByDayOfWeek,omitempty" yaml:"sessionsByDayOfWeek,omitempty"`

	DailyData   []DailyDataPoint   `json:"dailyData,omitempty" yaml:"dailyData,omitempty"`
	WeeklyData  []WeeklyDataPoint  `json:"weeklyData,omitempty" yaml:"weeklyData,omitempty"`
	MonthlyData []MonthlyDataPoint `json:"monthlyData,omitempty" yaml:"monthlyData,omitempty"`
	PeakWeek    *PeakWeek          `json:"peakWeek,omitempty" yaml:"peakWeek,omitempty"`
	PeakMonth   *PeakMonth         `json:"peakMonth,omitempty" yaml:"peakMonth,omitempty"`

	LongestSession LongestSession `json:"longestSession" yaml:"longestSession"`
	MedianDuration string         `json:"medianDuration,omitempty" yaml:"medianDuration,omitempty"`

	TurnTakingRatio   float64 `json:"turnTakingRatio,omitempty" yaml:"turnTakingRatio,omitempty"`
	HumanMessages     int     `json:"humanMessages,omitempty" yaml:"humanMessages,omitempty"`
	AssistantMessages int     `json:"assistantMessages,omitempty" yaml:"assistantMessages,omitempty"`
	HumanTokens       int     `json:"humanTokens,omitempty" yaml:"humanTokens,omitempty"`
	AssistantTokens   int     `json:"assistantTokens,omitempty" yaml:"assistantTokens,omitempty"`

	TopSessions []TopSession `json:"topSessions,omitempty" yaml:"topSessions,omitempty"`

	MessageDistribution  []DistributionBucket `json:"messageDistribution,omitempty" yaml:"messageDistribution,omitempty"`
	DurationDistribution []DistributionBucket `json:"durationDistribution,omitempty" yaml:"durationDistribution,omitempty"`

	SessionsPerWeek    float64 `json:"sessionsPerWeek" yaml:"sessionsPerWeek"`
	MessagesPerSession float64 `json:"messagesPerSession" yaml:"messagesPerSession"`

	ThankYouCount      int     `json:"thankYouCount" yaml:"thankYouCount"`
	ThankYouPercentage float64 `json:"thankYouPercentage" yaml:"thankYouPercentage"`
	ApologyCount       int     `json:"apologyCount" yaml:"apologyCount"`

	PowerDays *PowerDays `json:"powerDays,omitempty" yaml:"powerDays,omitempty"`
	TimeOfDay TimeOfDay  `json:"timeOfDay" yaml:"timeOfDay"`

	ImageUsage *ImageUsage    `json:"imageUsage,omitempty" yaml:"imageUsage,omitempty"`
	BusiestDay *BusiestDay    `json:"busiestDay,omitempty" yaml:"busiestDay,omitempty"`
	Streaks    *StreakSummary `json:"streaks,omitempty" yaml:"streaks,omitempty"`

	FirstMessage  *MessageSnippet `json:"firstMessage,omitempty" yaml:"firstMessage,omitempty"`
	LatestMessage *MessageSnippet `json:"latestMessage,omitempty" yaml:"latestMessage,omitempty"`

	ShareID string `json:"shareId,omitempty" yaml:"shareId,omitempty"`
	Persona *Persona `json:"persona,omitempty" yaml:"persona,omitempty"`

	ActiveDatesThisYear []string `json:"activeDatesThisYear,omitempty" yaml:"activeDatesThisYear,omitempty"`
}
