package internal

import "encoding/json"

// ParseLinearSessions decodes a linear-thread export document. The
// schema is already normalized at the source, so beyond validating the
// minimal shape of the first conversation the array passes straight
// through as the canonical model.
func ParseLinearSessions(raw json.RawMessage) ([]Session, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, &StructureError{Reason: "expected an array of conversations"}
	}
	if len(elements) == 0 {
		return nil, &StructureError{Reason: "no conversations found in the export"}
	}

	var probe struct {
		UUID      json.RawMessage `json:"uuid"`
		CreatedAt json.RawMessage `json:"created_at"`
		Messages  json.RawMessage `json:"chat_messages"`
	}
	if err := json.Unmarshal(elements[0], &probe); err != nil ||
		probe.UUID == nil || probe.CreatedAt == nil || probe.Messages == nil {
		return nil, &StructureError{Reason: "first conversation is missing uuid, created_at or chat_messages"}
	}

	var sessions []Session
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, &StructureError{Reason: "conversations do not match the linear-thread schema"}
	}
	return sessions, nil
}
