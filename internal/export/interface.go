package export

import (
	"fmt"
	"io"

	"github.com/yamanjr10/deskdash/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(snapshot *internal.Snapshot, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md)", format)
	}
}
