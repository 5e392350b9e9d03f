package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	matchIndent  = "    └── "
	previewRule  = 69
	summaryRule  = 20
	reportHeader = "Directory Tree of '%s'\nFull Path: %s\n\n"
)

// Header names the tree at the top of a report.
type Header struct {
	Name     string // display name, usually the base name of FullPath
	FullPath string
}

// Palette selects console colors. The zero value prints plain text.
type Palette struct {
	Enabled   bool // emit color escapes at all
	Highlight bool // color files with matches differently from other entries
}

// paint wraps s in attr when the palette is enabled.
func (p Palette) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.Enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// RenderReport writes the plain text report: the header, one line per
// entry and, when searching, one indented line per displayed mark.
func RenderReport(w io.Writer, hdr Header, entries []Entry, searching bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, reportHeader, hdr.Name, hdr.FullPath)

	for _, e := range entries {
		b.WriteString(e.Line)
		b.WriteString("\n")
		if !searching || e.IsDir() {
			continue
		}
		for _, m := range e.Visible() {
			b.WriteString(matchIndent)
			b.WriteString(m.String())
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderPreview prints the tree to an interactive surface. Files with a
// real match are highlighted when the palette asks for it; overflow marks
// are set apart from match lines.
func RenderPreview(w io.Writer, entries []Entry, p Palette, searching bool) {
	rule := strings.Repeat("=", previewRule)
	fmt.Fprintf(w, "\n%s\n%s\n", p.paint("Directory Tree Preview:", color.FgGreen), p.paint(rule, color.FgGreen))

	for _, e := range entries {
		attr := color.FgGreen
		if p.Highlight && e.HasMatch() {
			attr = color.FgYellow
		}
		fmt.Fprintln(w, p.paint(e.Line, attr))

		if !searching || e.IsDir() {
			continue
		}
		for _, m := range e.Visible() {
			markAttr := color.FgCyan
			if m.Kind == MarkOverflow {
				markAttr = color.FgRed
			}
			fmt.Fprintln(w, p.paint(matchIndent+m.String(), markAttr))
		}
	}

	fmt.Fprintf(w, "%s\n\n", p.paint(rule, color.FgGreen))
}

// RenderStats prints the statistics summary.
func RenderStats(w io.Writer, s Stats, p Palette, searching bool) {
	fmt.Fprintf(w, "\n%s\n", p.paint("Statistics Summary:", color.Bold, color.FgGreen))
	fmt.Fprintf(w, "%s\n\n", p.paint(strings.Repeat("=", summaryRule), color.FgGreen))
	fmt.Fprintln(w, p.paint(fmt.Sprintf("Directories:   %d", s.Directories), color.FgGreen))
	fmt.Fprintln(w, p.paint(fmt.Sprintf("Files:         %d (Total Size: %s)", s.Files, FormatSize(s.TotalSize)), color.FgGreen))
	if searching {
		fmt.Fprintf(w, "Search Hits:   %d files (%d matches)\n", s.MatchingFiles, s.TotalMatches)
	}
}
