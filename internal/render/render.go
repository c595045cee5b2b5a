package render

import (
	"fmt"

	"github.com/rgordon/buscheck/internal/schema"
)

// Renderer formats a Report into bytes for output.
type Renderer interface {
	Render(report *schema.Report) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "json", "md". colored applies only
// to the text renderer and should be false when output is not a terminal.
func NewRenderer(format string, colored bool) (Renderer, error) {
	switch format {
	case "text":
		return &textRenderer{colored: colored}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, json, md", format)
	}
}
