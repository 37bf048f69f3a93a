// Package detector provides environment detection for output color selection.
package detector

import (
	"io"
	"os"

	"go.trai.ch/depconflict/internal/core/domain"
	"golang.org/x/term"
)

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// DetectColor returns whether colored output is appropriate for w.
// Color is used on terminals unless NO_COLOR is set or a CI environment is detected.
func DetectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return false
	}

	return IsTerminal(w)
}

// ResolveColor applies the user's color mode to auto-detection.
// Unknown modes fall back to auto-detection.
func ResolveColor(mode string, autoDetected bool) bool {
	switch mode {
	case domain.ColorAlways:
		return true
	case domain.ColorNever:
		return false
	default:
		return autoDetected
	}
}
