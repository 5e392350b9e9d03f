package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// consoleLogger writes diagnostics to stderr with colored level prefixes.
type consoleLogger struct {
	w    io.Writer
	warn *color.Color
	err  *color.Color
	info *color.Color
}

// console is the process-wide diagnostics sink.
var console = newConsoleLogger(os.Stderr, stderrIsTerminal())

func newConsoleLogger(w io.Writer, colored bool) *consoleLogger {
	l := &consoleLogger{
		w:    w,
		warn: color.New(color.FgYellow),
		err:  color.New(color.FgRed),
		info: color.New(color.Faint),
	}
	for _, c := range []*color.Color{l.warn, l.err, l.info} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return l
}

// stderrIsTerminal reports whether stderr can take color escapes.
func stderrIsTerminal() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (l *consoleLogger) Warnf(format string, args ...any) {
	fmt.Fprintln(l.w, l.warn.Sprint("Warning: ")+fmt.Sprintf(format, args...))
}

func (l *consoleLogger) Errorf(format string, args ...any) {
	fmt.Fprintln(l.w, l.err.Sprint("Error: ")+fmt.Sprintf(format, args...))
}

func (l *consoleLogger) Infof(format string, args ...any) {
	fmt.Fprintln(l.w, l.info.Sprintf(format, args...))
}
