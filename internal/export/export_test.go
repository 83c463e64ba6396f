package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/ai-wrapped/internal"
	"github.com/iksnae/ai-wrapped/internal/stats"
	"gopkg.in/yaml.v3"
)

func sampleReport() *stats.Report {
	return &stats.Report{
		Provider:       internal.ProviderClaude,
		TotalSessions:  3,
		TotalMessages:  12,
		TotalTokens:    40,
		EstimatedWords: 30,
		LongestSession: stats.LongestSession{
			Name: "Secret project", Duration: "5 minutes", DurationSeconds: 300, Messages: 4, Date: "Mar 5, 2024",
		},
		SessionDurationsMinutes: []int{1, 5, 9},
		SessionMessageCounts:    []int{2, 4, 6},
		MessagesByHour:          map[int]int{10: 12},
		DailyData:               []stats.DailyDataPoint{{Date: "2024-03-05", Sessions: 3, Messages: 12}},
		MessageDistribution: []stats.DistributionBucket{
			{Label: "Empty (0)", Count: 0},
			{Label: "Quick Q&A (1-4)", Count: 2},
			{Label: "Short (5-10)", Count: 1},
			{Label: "Medium (11-25)", Count: 0},
		},
		TopSessions: []stats.TopSession{
			{Name: "Secret project", Messages: 6},
			{Name: "Second", Messages: 4},
		},
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format    string
		extension string
		wantErr   bool
	}{
		{format: "json", extension: "json"},
		{format: "yaml", extension: "yaml"},
		{format: "yml", extension: "yaml"},
		{format: "xml", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		exporter, err := NewExporter(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewExporter(%q) should fail", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewExporter(%q) error = %v", tt.format, err)
			continue
		}
		if exporter.Extension() != tt.extension {
			t.Errorf("Extension() = %q, want %q", exporter.Extension(), tt.extension)
		}
	}
}

func TestJSONExportRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(sampleReport(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded stats.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.TotalSessions != 3 || decoded.Provider != internal.ProviderClaude {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(buf.String(), "\n  \"totalSessions\"") {
		t.Error("output should be indented")
	}
}

func TestYAMLExport(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(sampleReport(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded stats.Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.TotalMessages != 12 {
		t.Errorf("TotalMessages = %d, want 12", decoded.TotalMessages)
	}
}

func TestSanitize(t *testing.T) {
	report := sampleReport()
	sanitized := Sanitize(report)

	if sanitized.TotalSessions != 3 || sanitized.EstimatedWords != 30 {
		t.Errorf("displayed totals should survive: %+v", sanitized)
	}
	if sanitized.LongestSession.Name != "" {
		t.Errorf("LongestSession.Name = %q, want blanked", sanitized.LongestSession.Name)
	}
	if sanitized.LongestSession.Duration != "5 minutes" {
		t.Errorf("LongestSession.Duration = %q, want kept", sanitized.LongestSession.Duration)
	}
	if sanitized.SessionDurationsMinutes != nil || sanitized.SessionMessageCounts != nil {
		t.Error("bulk per-session arrays should be stripped")
	}
	if sanitized.MessagesByHour != nil || sanitized.DailyData != nil {
		t.Error("hour map and daily table should be stripped")
	}
	if len(sanitized.MessageDistribution) != 2 {
		t.Fatalf("len(MessageDistribution) = %d, want the two quick buckets", len(sanitized.MessageDistribution))
	}
	for _, bucket := range sanitized.MessageDistribution {
		if !strings.Contains(bucket.Label, "Quick Q&A") && !strings.Contains(bucket.Label, "Short") {
			t.Errorf("unexpected bucket %q", bucket.Label)
		}
	}
	if len(sanitized.TopSessions) != 1 || sanitized.TopSessions[0].Name != "Secret project" {
		t.Errorf("TopSessions = %+v, want only the top entry", sanitized.TopSessions)
	}

	// The source report is left untouched.
	if report.LongestSession.Name != "Secret project" {
		t.Error("Sanitize must not mutate its input")
	}
}
