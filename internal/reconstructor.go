package internal

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// visibleMessage is an intermediate record between the graph walk and
// the canonical Message list.
type visibleMessage struct {
	index       int
	sender      Sender
	message     *TreeMessage
	attachments []Attachment
}

// pendingBatch holds image attachments from tool nodes that have not
// yet been claimed by a following assistant message.
type pendingBatch struct {
	attachments []Attachment
	timestamp   float64
	order       int
}

// NormalizeTreeConversations converts a branching-tree export document
// into canonical sessions. Conversations that fail to decode or
// normalize are logged and skipped; if nothing usable remains the whole
// document is rejected.
func NormalizeTreeConversations(raw json.RawMessage) ([]Session, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, &StructureError{Reason: "expected an array of conversations"}
	}

	var sessions []Session
	for i, elem := range elements {
		var conv TreeConversation
		if err := json.Unmarshal(elem, &conv); err != nil {
			LogWarn("skipping malformed conversation %d: %v", i, err)
			continue
		}
		session, err := normalizeTreeConversation(&conv)
		if err != nil {
			LogWarn("skipping conversation %d (%s): %v", i, conv.ID, err)
			continue
		}
		sessions = append(sessions, *session)
	}

	if len(sessions) == 0 {
		return nil, &StructureError{Reason: "no conversations could be normalized from the export"}
	}
	return sessions, nil
}

func normalizeTreeConversation(conv *TreeConversation) (*Session, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}

	path := walkConversationPath(conv)
	visible := filterVisibleMessages(path)

	var messages []Message
	for _, entry := range visible {
		msg := entry.message

		createdAt, ok := epochToISO(msg.CreateTime)
		if !ok {
			createdAt, ok = epochToISO(msg.UpdateTime)
		}
		if !ok {
			createdAt, ok = epochToISO(conv.CreateTime)
		}
		if !ok {
			createdAt = epochZeroISO
		}

		text := ExtractText(msg.Content)
		if text == "" && len(entry.attachments) == 0 {
			continue
		}

		id := msg.ID
		if id == "" {
			id = uuid.NewString()
		}

		messages = append(messages, Message{
			UUID:        id,
			Text:        text,
			Sender:      entry.sender,
			CreatedAt:   createdAt,
			Attachments: entry.attachments,
		})
	}

	sessionID := conv.ConversationID
	if sessionID == "" {
		sessionID = conv.ID
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	name := conv.Title
	if name == "" {
		name = PlaceholderName
	}

	createdAt, ok := epochToISO(conv.CreateTime)
	if !ok {
		createdAt = epochZeroISO
	}
	updatedAt, ok := epochToISO(conv.UpdateTime)
	if !ok {
		updatedAt = createdAt
	}

	return &Session{
		UUID:      sessionID,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Messages:  messages,
	}, nil
}

// walkConversationPath follows parent pointers backward from the
// current-node marker and returns the nodes in root-to-current order.
// A visited set guards against parent cycles. When the marker is
// missing or dangling, every node carrying a message is taken instead,
// ordered by timestamp ascending as a best-effort substitute.
func walkConversationPath(conv *TreeConversation) []TreeNode {
	currentID := conv.CurrentNode
	if _, ok := conv.Mapping[currentID]; currentID == "" || !ok {
		return fallbackPath(conv)
	}

	var path []TreeNode
	visited := make(map[string]bool)
	cursor := currentID

	for cursor != "" {
		if visited[cursor] {
			break
		}
		node, ok := conv.Mapping[cursor]
		if !ok {
			break
		}
		path = append(path, node)
		visited[cursor] = true
		cursor = node.Parent
	}

	// Reverse to root-to-current order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func fallbackPath(conv *TreeConversation) []TreeNode {
	var nodes []TreeNode
	for id, node := range conv.Mapping {
		if node.Message != nil {
			if node.ID == "" {
				node.ID = id
			}
			nodes = append(nodes, node)
		}
	}
	sort.Slice(nodes, func(i, j int) bool {
		ti, _ := nodes[i].Message.timestamp()
		tj, _ := nodes[j].Message.timestamp()
		if ti != tj {
			return ti < tj
		}
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}

// filterVisibleMessages classifies each node on the path by author
// role. User messages pass through. Assistant messages addressed to
// the default recipient pass through and claim any pending tool
// attachments; assistant messages addressed elsewhere are internal
// tool-invocation steps and are dropped. Tool nodes never surface
// directly: their image output accumulates as pending batches, and any
// batch still unclaimed at the end of the walk is flushed into one
// synthesized empty assistant message. The result is sorted by
// timestamp, ties broken by walk index.
func filterVisibleMessages(path []TreeNode) []visibleMessage {
	var messages []visibleMessage
	var pending []pendingBatch
	var lastTimestamp float64

	for index, node := range path {
		msg := node.Message
		if msg == nil {
			continue
		}

		if ts, ok := msg.timestamp(); ok {
			lastTimestamp = ts
		}

		switch msg.Author.Role {
		case "user":
			messages = append(messages, visibleMessage{
				index:   index,
				sender:  SenderHuman,
				message: msg,
			})

		case "assistant":
			recipient := msg.Recipient
			if recipient == "" {
				recipient = defaultRecipient
			}
			if recipient != defaultRecipient {
				continue // tool-directed step, never visible
			}
			messages = append(messages, visibleMessage{
				index:       index,
				sender:      SenderAssistant,
				message:     msg,
				attachments: claimPending(&pending),
			})

		case "tool":
			attachments := ExtractImageAttachments(msg.Content)
			if len(attachments) == 0 {
				continue
			}
			ts, ok := msg.timestamp()
			if !ok {
				ts = lastTimestamp
			}
			pending = append(pending, pendingBatch{
				attachments: attachments,
				timestamp:   ts,
				order:       index,
			})
		}
	}

	// Flush batches the walk never claimed.
	for _, batch := range pending {
		ts := batch.timestamp
		messages = append(messages, visibleMessage{
			index:  batch.order,
			sender: SenderAssistant,
			message: &TreeMessage{
				Author:     TreeAuthor{Role: "assistant"},
				Recipient:  defaultRecipient,
				CreateTime: &ts,
				Content:    json.RawMessage(`{"content_type":"text","parts":[""]}`),
			},
			attachments: batch.attachments,
		})
	}

	sort.SliceStable(messages, func(i, j int) bool {
		ti := messages[i].message.sortKey()
		tj := messages[j].message.sortKey()
		if ti != tj {
			return ti < tj
		}
		return messages[i].index < messages[j].index
	})
	return messages
}

// claimPending concatenates and clears the pending attachment batches.
func claimPending(pending *[]pendingBatch) []Attachment {
	if len(*pending) == 0 {
		return nil
	}
	var collected []Attachment
	for _, batch := range *pending {
		collected = append(collected, batch.attachments...)
	}
	*pending = nil
	return collected
}
