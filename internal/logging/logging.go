// Package logging builds the diagnostic logger used by commands.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "todo"

// New returns a logger writing to w. Debug enables debug-level output;
// otherwise only warnings and errors are shown.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, false)
}
