package internal

import (
	"encoding/json"
	"strings"
)

// contentPart is one flattened element of a tree message's content.
// Either Text, AssetPointer, or both may be set.
type contentPart struct {
	Text         string
	AssetPointer string
}

type rawContentObject struct {
	Text         *string           `json:"text"`
	AssetPointer *string           `json:"asset_pointer"`
	Parts        []json.RawMessage `json:"parts"`
}

// FlattenContentParts normalizes a tree message's content to a flat
// list of parts. Content may be a plain string, a single object with a
// parts array, or an array whose elements are strings or objects
// (possibly with their own nested parts arrays).
func FlattenContentParts(raw json.RawMessage) []contentPart {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []contentPart{{Text: s}}
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		var parts []contentPart
		for _, elem := range arr {
			parts = append(parts, flattenElement(elem)...)
		}
		return parts
	}

	var obj rawContentObject
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Parts != nil {
			var parts []contentPart
			for _, p := range obj.Parts {
				parts = append(parts, decodePart(p)...)
			}
			return parts
		}
		return []contentPart{objectPart(obj)}
	}

	return nil
}

// flattenElement handles one element of a top-level content array:
// objects carrying a nested parts array are expanded in place.
func flattenElement(raw json.RawMessage) []contentPart {
	var obj rawContentObject
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Parts != nil {
		var parts []contentPart
		for _, p := range obj.Parts {
			parts = append(parts, decodePart(p)...)
		}
		return parts
	}
	return decodePart(raw)
}

// decodePart handles a leaf part: a string or an object with
// text/asset_pointer fields.
func decodePart(raw json.RawMessage) []contentPart {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []contentPart{{Text: s}}
	}

	var obj rawContentObject
	if err := json.Unmarshal(raw, &obj); err == nil {
		return []contentPart{objectPart(obj)}
	}
	return nil
}

func objectPart(obj rawContentObject) contentPart {
	var part contentPart
	if obj.Text != nil {
		part.Text = *obj.Text
	}
	if obj.AssetPointer != nil {
		part.AssetPointer = *obj.AssetPointer
	}
	return part
}

// ExtractText flattens a tree message's content and joins its
// non-blank trimmed text parts with newlines.
func ExtractText(raw json.RawMessage) string {
	var texts []string
	for _, part := range FlattenContentParts(raw) {
		if trimmed := strings.TrimSpace(part.Text); trimmed != "" {
			texts = append(texts, trimmed)
		}
	}
	return strings.Join(texts, "\n")
}

// ExtractImageAttachments collects image references from a tool node's
// content. A node with n image parts yields a single attachment with
// count n and the running list of asset pointers; non-image output
// yields nothing.
func ExtractImageAttachments(raw json.RawMessage) []Attachment {
	var pointers []string
	for _, part := range FlattenContentParts(raw) {
		if part.AssetPointer != "" {
			pointers = append(pointers, part.AssetPointer)
		}
	}
	if len(pointers) == 0 {
		return nil
	}
	return []Attachment{{
		Type:          "image",
		Count:         len(pointers),
		AssetPointers: pointers,
	}}
}
