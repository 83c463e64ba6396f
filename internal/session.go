package internal

import "time"

// Provider identifies which export schema a file came from.
type Provider string

const (
	// ProviderClaude is the linear-thread schema: each conversation
	// already carries an ordered chat_messages array.
	ProviderClaude Provider = "claude"
	// ProviderChatGPT is the branching-tree schema: messages form a node
	// graph with parent pointers and a current_node marker.
	ProviderChatGPT Provider = "chatgpt"
)

// Valid reports whether p is a known provider tag.
func (p Provider) Valid() bool {
	return p == ProviderClaude || p == ProviderChatGPT
}

// Sender identifies which side of the conversation produced a message.
// Only these two roles survive normalization.
type Sender string

const (
	SenderHuman     Sender = "human"
	SenderAssistant Sender = "assistant"
)

// Attachment describes non-text content produced alongside a message.
// Today only image batches from tool turns are recorded.
type Attachment struct {
	Type          string   `json:"type" yaml:"type"`
	Count         int      `json:"count" yaml:"count"`
	AssetPointers []string `json:"asset_pointers,omitempty" yaml:"asset_pointers,omitempty"`
}

// Message is one turn of a normalized conversation.
type Message struct {
	UUID        string       `json:"uuid" yaml:"uuid"`
	Text        string       `json:"text" yaml:"text"`
	Sender      Sender       `json:"sender" yaml:"sender"`
	CreatedAt   string       `json:"created_at" yaml:"created_at"`
	Attachments []Attachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

// Session is one normalized conversation. Messages are ordered by
// timestamp ascending; ties keep the original traversal order.
type Session struct {
	UUID      string    `json:"uuid" yaml:"uuid"`
	Name      string    `json:"name" yaml:"name"`
	Summary   string    `json:"summary,omitempty" yaml:"summary,omitempty"`
	CreatedAt string    `json:"created_at" yaml:"created_at"`
	UpdatedAt string    `json:"updated_at" yaml:"updated_at"`
	Messages  []Message `json:"chat_messages" yaml:"chat_messages"`
}

// PlaceholderName is used when an export carries no conversation title.
const PlaceholderName = "(unnamed)"

// epochZeroISO is the sentinel timestamp for records with no usable
// time information at all.
const epochZeroISO = "1970-01-01T00:00:00.000Z"

// ParseTime parses a timestamp string from either export schema.
// Returns false for empty or unparseable values; callers skip those
// records rather than failing.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
