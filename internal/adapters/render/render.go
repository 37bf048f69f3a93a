// Package render formats scan reports for output streams.
package render

import (
	"fmt"
	"io"

	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/zerr"
)

// New returns the renderer for format. Color only affects the text format.
func New(format string, color bool) (ports.Renderer, error) {
	switch format {
	case domain.FormatText, "":
		return NewTextRenderer(color), nil
	case domain.FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, zerr.With(fmt.Errorf("%w", domain.ErrInvalidFormat), "format", format)
	}
}

// errWriter remembers the first write error so formatting code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) Err() error {
	if ew.err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrReportWriteFailed, ew.err)
}
