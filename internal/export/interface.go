// Package export writes statistics bundles in the supported output
// formats and produces the sanitized share payload.
package export

import (
	"fmt"
	"io"

	"github.com/iksnae/ai-wrapped/internal/stats"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(report *stats.Report, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}
}
