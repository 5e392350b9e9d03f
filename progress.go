package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// terminalProgress rewrites a single "Scanning: <path>" line in place.
type terminalProgress struct {
	w     io.Writer
	width int
	dim   *color.Color
}

// newTerminalProgress sizes the progress line to f's terminal, falling back
// to 80 columns when f is not a terminal.
func newTerminalProgress(f *os.File, colored bool) *terminalProgress {
	width := defaultTerminalWidth
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		width = w
	}
	return newProgressWriter(f, width, colored)
}

func newProgressWriter(w io.Writer, width int, colored bool) *terminalProgress {
	dim := color.New(color.Faint)
	if colored {
		dim.EnableColor()
	} else {
		dim.DisableColor()
	}
	return &terminalProgress{w: w, width: width, dim: dim}
}

// Scanning implements ProgressReporter.
func (p *terminalProgress) Scanning(path string) {
	display := truncateLeft(path, p.width-10)
	pad := p.width - runewidth.StringWidth(display) - 9
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(p.w, "%s%s\r", p.dim.Sprint("Scanning: "+display), strings.Repeat(" ", pad))
}

// Clear blanks the progress line.
func (p *terminalProgress) Clear() {
	fmt.Fprintf(p.w, "%s\r", strings.Repeat(" ", p.width))
}

// truncateLeft keeps the tail of s so it fits in fewer than max terminal
// columns, marking the cut with "...". Runes are never split.
func truncateLeft(s string, max int) string {
	if runewidth.StringWidth(s) < max {
		return s
	}
	keep := max - 3
	if keep <= 0 {
		return "..."
	}
	start, width := len(s), 0
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:start])
		w := runewidth.RuneWidth(r)
		if width+w > keep {
			break
		}
		width += w
		start -= size
	}
	return "..." + s[start:]
}
