package internal

import (
	"encoding/json"
	"strings"
)

// DetectProvider classifies a parsed conversations.json document.
// The first array element's shape decides: a chat_messages field means
// the linear-thread (Claude) schema, a mapping field the branching-tree
// (ChatGPT) schema. If the content is inconclusive (for example an
// empty array), the file path is checked for provider name hints.
func DetectProvider(raw json.RawMessage, path string) (Provider, error) {
	if p, ok := detectFromJSON(raw); ok {
		return p, nil
	}
	if p, ok := detectFromPath(path); ok {
		return p, nil
	}
	return "", &AmbiguousProviderError{Path: path}
}

func detectFromJSON(raw json.RawMessage) (Provider, bool) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil || len(elements) == 0 {
		return "", false
	}

	var sample struct {
		ChatMessages json.RawMessage `json:"chat_messages"`
		Mapping      json.RawMessage `json:"mapping"`
	}
	if err := json.Unmarshal(elements[0], &sample); err != nil {
		return "", false
	}

	if sample.ChatMessages != nil {
		return ProviderClaude, true
	}
	if sample.Mapping != nil {
		return ProviderChatGPT, true
	}
	return "", false
}

func detectFromPath(path string) (Provider, bool) {
	lower := strings.ToLower(path)
	if strings.Contains(lower, "claude") {
		return ProviderClaude, true
	}
	if strings.Contains(lower, "chatgpt") || strings.Contains(lower, "openai") {
		return ProviderChatGPT, true
	}
	return "", false
}
