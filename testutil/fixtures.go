// Package testutil provides fixture builders shared by the test suites.
package testutil

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// BuildZip creates an in-memory zip archive from a map of entry name to
// file contents.
func BuildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, contents := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(contents)); err != nil {
			t.Fatalf("Failed to write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

// WriteZip writes a zip archive to disk under dir and returns its path.
func WriteZip(t *testing.T, dir, name string, files map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildZip(t, files), 0644); err != nil {
		t.Fatalf("Failed to write zip fixture: %v", err)
	}
	return path
}

// MarshalJSON marshals a value for use as fixture file contents.
func MarshalJSON(t *testing.T, v interface{}) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal fixture: %v", err)
	}
	return string(data)
}

// ClaudeMessage builds one message object of the linear-thread schema.
func ClaudeMessage(uuid, sender, text, createdAt string) map[string]interface{} {
	return map[string]interface{}{
		"uuid":       uuid,
		"sender":     sender,
		"text":       text,
		"created_at": createdAt,
	}
}

// ClaudeConversation builds one conversation object of the
// linear-thread schema.
func ClaudeConversation(uuid, name, createdAt string, messages ...map[string]interface{}) map[string]interface{} {
	if messages == nil {
		messages = []map[string]interface{}{}
	}
	return map[string]interface{}{
		"uuid":          uuid,
		"name":          name,
		"created_at":    createdAt,
		"updated_at":    createdAt,
		"chat_messages": messages,
	}
}

// TreeNode builds one node of the branching-tree schema. message may be
// nil for structural nodes.
func TreeNode(id, parent string, message map[string]interface{}) map[string]interface{} {
	node := map[string]interface{}{"id": id}
	if parent != "" {
		node["parent"] = parent
	}
	if message != nil {
		node["message"] = message
	}
	return node
}

// TreeMessage builds one message payload of the branching-tree schema.
func TreeMessage(id, role, recipient string, createTime float64, content interface{}) map[string]interface{} {
	msg := map[string]interface{}{
		"id":     id,
		"author": map[string]interface{}{"role": role},
	}
	if recipient != "" {
		msg["recipient"] = recipient
	}
	if createTime != 0 {
		msg["create_time"] = createTime
	}
	if content != nil {
		msg["content"] = content
	}
	return msg
}

// TextContent builds a parts-style text content object.
func TextContent(parts ...interface{}) map[string]interface{} {
	return map[string]interface{}{
		"content_type": "text",
		"parts":        parts,
	}
}

// ImagePart builds an image pointer content part.
func ImagePart(pointer string) map[string]interface{} {
	return map[string]interface{}{
		"content_type":  "image_asset_pointer",
		"asset_pointer": pointer,
	}
}

// TreeConversation builds one conversation of the branching-tree
// schema from a node list.
func TreeConversation(id, title string, createTime float64, currentNode string, nodes ...map[string]interface{}) map[string]interface{} {
	mapping := make(map[string]interface{}, len(nodes))
	for _, node := range nodes {
		mapping[node["id"].(string)] = node
	}
	conv := map[string]interface{}{
		"conversation_id": id,
		"title":           title,
		"mapping":         mapping,
	}
	if createTime != 0 {
		conv["create_time"] = createTime
	}
	if currentNode != "" {
		conv["current_node"] = currentNode
	}
	return conv
}
