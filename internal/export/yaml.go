package export

import (
	"io"

	"github.com/iksnae/ai-wrapped/internal/stats"
	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the bundle as YAML
type YAMLExporter struct{}

// Export writes a report to YAML format
func (e *YAMLExporter) Export(report *stats.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(report)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
