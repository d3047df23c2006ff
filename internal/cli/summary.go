package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/gogpu/bookmark"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type summaryRow struct {
	label, value string
	warn         bool
}

func summaryRows(doc *bookmark.Document, dest string, copied bool) []summaryRow {
	s := doc.Stats
	rows := []summaryRow{
		{label: "seed", value: doc.Seed},
		{label: "mode", value: string(s.Mode)},
	}
	if s.Mode == bookmark.ModeShapes {
		rows = append(rows, summaryRow{label: "shapes", value: fmt.Sprintf("%d", s.Placed)})
	} else {
		rows = append(rows, summaryRow{
			label: "lines",
			value: fmt.Sprintf("%d of %d", s.Placed, s.Requested),
			warn:  s.Placed < s.Requested,
		})
	}
	if s.MissingGlyphs > 0 {
		rows = append(rows, summaryRow{label: "missing", value: fmt.Sprintf("%d glyphs", s.MissingGlyphs), warn: true})
	}
	if doc.Outline.IsEmpty() {
		rows = append(rows, summaryRow{label: "outline", value: "empty", warn: true})
	} else {
		rows = append(rows, summaryRow{
			label: "outline",
			value: fmt.Sprintf("%d contours, %.1f mm²", s.Contours, s.Area),
		})
	}
	out := dest
	if copied {
		out += " + clipboard"
	}
	return append(rows, summaryRow{label: "output", value: out})
}

// writeSummary prints a short report of a finished render. Terminals get
// a styled block, everything else one logfmt-style line.
func writeSummary(w io.Writer, doc *bookmark.Document, dest string, copied bool) {
	rows := summaryRows(doc, dest, copied)
	if !isTerminal(w) {
		parts := make([]string, len(rows))
		for i, r := range rows {
			parts[i] = r.label + "=" + quoteIfNeeded(r.value)
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("bookmark"))
	b.WriteByte('\n')
	for _, r := range rows {
		style := valueStyle
		if r.warn {
			style = warnStyle
		}
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(style.Render(r.value))
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
