package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/depconflict/internal/core/domain"
	"go.trai.ch/depconflict/internal/core/ports"
	"go.trai.ch/depconflict/internal/ui/output"
	"go.trai.ch/depconflict/internal/ui/style"
)

// recommendations is the fixed remediation block printed after a report with conflicts.
var recommendations = []string{
	"Review each conflict and decide on a target version",
	"Update packages to use consistent versions",
	"Consider using pnpm overrides or npm resolutions",
	"Test thoroughly after version updates",
}

var _ ports.Renderer = (*TextRenderer)(nil)

// TextRenderer writes the human-readable report.
type TextRenderer struct {
	color bool
}

// NewTextRenderer creates a TextRenderer. Without color the output is plain text.
func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{color: color}
}

type textStyles struct {
	title   lipgloss.Style
	pkg     lipgloss.Style
	version lipgloss.Style
	muted   lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	hint    lipgloss.Style
}

func (r *TextRenderer) styles(w io.Writer) textStyles {
	profile := output.ProfileFor(r.color)
	lr := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	lr.SetColorProfile(profile)
	return textStyles{
		title:   lr.NewStyle().Bold(true),
		pkg:     lr.NewStyle().Bold(true).Foreground(style.Iris),
		version: lr.NewStyle().Foreground(style.Yellow),
		muted:   lr.NewStyle().Foreground(style.Slate),
		ok:      lr.NewStyle().Foreground(style.Green),
		warn:    lr.NewStyle().Foreground(style.Yellow),
		hint:    lr.NewStyle().Foreground(style.Iris),
	}
}

// Render writes the report to w.
func (r *TextRenderer) Render(w io.Writer, report *domain.Report) error {
	s := r.styles(w)
	ew := &errWriter{w: w}

	ew.WriteString("\n" + s.muted.Render(style.Search) + " Analyzing dependencies in: " + report.Root + "\n")
	ew.WriteString("   Found " + plural(len(report.Manifests), "package.json file", "package.json files") + "\n")

	ew.WriteString("\n" + s.title.Render("Dependency Analysis Report") + "\n\n")
	ew.WriteString(strings.Repeat("=", style.RuleWide) + "\n")

	if !report.HasConflicts() {
		ew.WriteString("\n" + s.ok.Render(style.Check+" No version conflicts found!") + "\n")
		writeDelta(ew, s, report.Delta)
		ew.WriteString("\n")
		return ew.Err()
	}

	header := fmt.Sprintf("%s Found %s with version conflicts:",
		style.Warning, plural(len(report.Conflicts), "package", "packages"))
	ew.WriteString("\n" + s.warn.Render(header) + "\n")

	for _, conflict := range report.Conflicts {
		ew.WriteString("\n" + s.pkg.Render(style.Package+" "+conflict.Package) + "\n")
		ew.WriteString(strings.Repeat("-", style.RuleNarrow) + "\n")

		for _, usage := range conflict.Versions {
			ew.WriteString("  Version: " + s.version.Render(usage.Version) + "\n")
			ew.WriteString("  Used by:\n")
			for _, path := range usage.UsedBy {
				ew.WriteString("    - " + path + "\n")
			}
		}

		if suggestion, ok := report.SuggestionFor(conflict.Package); ok {
			ew.WriteString("  " + s.hint.Render(style.Hint+" Suggested target: "+suggestion.Target) +
				" " + s.muted.Render(acceptance(suggestion)) + "\n")
		}
	}

	writeDelta(ew, s, report.Delta)

	ew.WriteString("\n" + strings.Repeat("=", style.RuleWide) + "\n")
	ew.WriteString("\n" + s.hint.Render(style.Hint+" Recommendations:") + "\n")
	for i, line := range recommendations {
		ew.WriteString(fmt.Sprintf("  %d. %s\n", i+1, line))
	}
	ew.WriteString("\n")

	return ew.Err()
}

func writeDelta(ew *errWriter, s textStyles, delta *domain.Delta) {
	if delta == nil {
		return
	}

	ew.WriteString("\n" + s.title.Render("Changes since last scan:") + "\n")
	if delta.Unchanged {
		ew.WriteString("  " + s.muted.Render("no changes") + "\n")
		return
	}

	rows := []struct {
		icon     string
		label    string
		packages []string
		style    lipgloss.Style
	}{
		{style.Plus, "introduced", delta.Introduced, s.warn},
		{style.Minus, "resolved", delta.Resolved, s.ok},
		{style.Tilde, "changed", delta.Changed, s.version},
	}
	for _, row := range rows {
		if len(row.packages) == 0 {
			continue
		}
		ew.WriteString("  " + row.style.Render(row.icon+" "+row.label+":") + " " + strings.Join(row.packages, ", ") + "\n")
	}
}

func acceptance(s domain.Suggestion) string {
	if len(s.Accepting) == 0 {
		return "(no declared range accepts it)"
	}
	return "(accepted by: " + strings.Join(s.Accepting, ", ") + ")"
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
