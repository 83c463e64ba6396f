package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/ai-wrapped/internal/stats"
)

// JSONExporter writes the bundle as indented JSON
type JSONExporter struct{}

// Export writes a report to JSON format
func (e *JSONExporter) Export(report *stats.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
