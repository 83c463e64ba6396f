package internal

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		path    string
		want    Provider
		wantErr bool
	}{
		{
			name: "linear thread schema",
			raw:  `[{"uuid":"a","chat_messages":[]}]`,
			want: ProviderClaude,
		},
		{
			name: "branching tree schema",
			raw:  `[{"id":"a","mapping":{}}]`,
			want: ProviderChatGPT,
		},
		{
			name: "empty array with claude path hint",
			raw:  `[]`,
			path: "claude_export/conversations.json",
			want: ProviderClaude,
		},
		{
			name: "empty array with chatgpt path hint",
			raw:  `[]`,
			path: "ChatGPT-export.zip",
			want: ProviderChatGPT,
		},
		{
			name: "empty array with openai path hint",
			raw:  `[]`,
			path: "openai-data.zip",
			want: ProviderChatGPT,
		},
		{
			name:    "no shape and no hint",
			raw:     `[]`,
			path:    "conversations.json",
			wantErr: true,
		},
		{
			name:    "non-array document",
			raw:     `{"version":1}`,
			path:    "export.zip",
			wantErr: true,
		},
		{
			name: "content shape wins over contradicting path",
			raw:  `[{"mapping":{}}]`,
			path: "claude.zip",
			want: ProviderChatGPT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectProvider(json.RawMessage(tt.raw), tt.path)
			if tt.wantErr {
				var ambiguous *AmbiguousProviderError
				if !errors.As(err, &ambiguous) {
					t.Fatalf("error = %v, want AmbiguousProviderError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectProvider() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectProvider() = %v, want %v", got, tt.want)
			}
		})
	}
}
