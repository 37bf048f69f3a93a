package ports

import (
	"io"

	"go.trai.ch/depconflict/internal/core/domain"
)

// Renderer formats a scan report for an output stream.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes the report to w. It makes no decisions beyond formatting.
	Render(w io.Writer, report *domain.Report) error
}
