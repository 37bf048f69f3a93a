package render

import (
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
)

var _ ports.Renderer = (*JSONRenderer)(nil)

// JSONRenderer writes the report as an indented JSON document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render writes the report to w.
func (r *JSONRenderer) Render(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrReportWriteFailed, err)
	}
	return nil
}
