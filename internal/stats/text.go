package stats

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/iksnae/ai-wrapped/internal"
)

var (
	gratitudePattern = regexp.MustCompile(`(?i)\b(thank|thanks|thx|ty|appreciate)\b`)
	pardonPattern    = regexp.MustCompile(`(?i)\bpardon me\b`)
	sentencePattern  = regexp.MustCompile(`^[^.!?]+[.!?]`)
)

// isGratitude reports whether a human message contains a whole-word
// gratitude term.
func isGratitude(text string) bool {
	return gratitudePattern.MatchString(text)
}

// isApology reports whether an assistant message contains an apology:
// "sorry" or "apolog" as substrings, or the exact phrase "pardon me".
func isApology(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "sorry") ||
		strings.Contains(lower, "apolog") ||
		pardonPattern.MatchString(text)
}

// firstHumanSnippet finds the first human message with non-blank text
// in a session and returns it truncated for display. For the earliest
// session the text is cut to its first complete sentence or its first
// 20 words, whichever is shorter; for the latest session it is cut to
// 30 words with no sentence preference.
func firstHumanSnippet(session internal.Session, sentenceOr20 bool) (MessageSnippet, bool) {
	for _, msg := range session.Messages {
		if msg.Sender != internal.SenderHuman || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		full := strings.TrimSpace(msg.Text)
		var text string
		if sentenceOr20 {
			text = truncateSentenceOrWords(full, 20)
		} else {
			text = truncateWords(full, 30)
		}

		date := ""
		if t, ok := internal.ParseTime(session.CreatedAt); ok {
			date = t.Format(displayDateFormat)
		}
		return MessageSnippet{Text: text, Date: date}, true
	}
	return MessageSnippet{}, false
}

// truncateSentenceOrWords keeps the first complete sentence (up to and
// including '.', '!' or '?') or the first n words with an ellipsis,
// whichever string is shorter.
func truncateSentenceOrWords(text string, n int) string {
	sentence := text
	if match := sentencePattern.FindString(text); match != "" {
		sentence = strings.TrimSpace(match)
	}
	words := truncateWords(text, n)
	if utf8.RuneCountInString(sentence) <= utf8.RuneCountInString(words) {
		return sentence
	}
	return words
}

// truncateWords keeps the first n whitespace-separated words, with an
// ellipsis when anything was cut.
func truncateWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "..."
}
