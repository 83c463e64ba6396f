package internal

import (
	"encoding/json"
	"time"
)

// Raw types for the branching-tree export schema. Message content is
// kept as raw JSON because it takes several shapes (plain string,
// object with parts, array of mixed parts); text_extractor.go flattens
// it.

// TreeConversation is one conversation record from the branching-tree
// export.
type TreeConversation struct {
	ConversationID string              `json:"conversation_id"`
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	CreateTime     *float64            `json:"create_time"`
	UpdateTime     *float64            `json:"update_time"`
	Mapping        map[string]TreeNode `json:"mapping"`
	CurrentNode    string              `json:"current_node"`
}

// TreeNode is one node in the conversation graph. Parent is empty for
// the root; Message is nil for structural nodes.
type TreeNode struct {
	ID      string       `json:"id"`
	Parent  string       `json:"parent"`
	Message *TreeMessage `json:"message"`
}

// TreeAuthor carries the role of a node's message.
type TreeAuthor struct {
	Role string `json:"role"`
}

// TreeMessage is the payload of a graph node.
type TreeMessage struct {
	ID         string          `json:"id"`
	Author     TreeAuthor      `json:"author"`
	Recipient  string          `json:"recipient"`
	CreateTime *float64        `json:"create_time"`
	UpdateTime *float64        `json:"update_time"`
	Content    json.RawMessage `json:"content"`
}

// defaultRecipient marks an assistant message addressed to the user.
// Any other recipient is an internal tool-invocation step.
const defaultRecipient = "all"

// timestamp returns the message's creation time, falling back to its
// update time. ok is false when neither is present.
func (m *TreeMessage) timestamp() (float64, bool) {
	if m == nil {
		return 0, false
	}
	if m.CreateTime != nil {
		return *m.CreateTime, true
	}
	if m.UpdateTime != nil {
		return *m.UpdateTime, true
	}
	return 0, false
}

// sortKey is the ordering timestamp for the final message sort. Nodes
// without any timestamp sort last (ties broken by walk index).
func (m *TreeMessage) sortKey() float64 {
	if ts, ok := m.timestamp(); ok {
		return ts
	}
	return maxSortKey
}

const maxSortKey = 1e308

// epochToISO converts a Unix epoch in seconds (possibly fractional) to
// an ISO-8601 string in UTC. Returns false for nil or NaN-ish input.
func epochToISO(epoch *float64) (string, bool) {
	if epoch == nil || *epoch != *epoch || *epoch == 0 {
		return "", false
	}
	sec := int64(*epoch)
	nsec := int64((*epoch - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC().Format("2006-01-02T15:04:05.000Z"), true
}
