// Package logging builds the diagnostics logger used for progress output.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every diagnostic line.
const Prefix = "goxor"

// New returns a logger writing to w. When enabled is false only errors are emitted,
// which keeps stderr silent unless something goes wrong.
func New(w io.Writer, enabled bool) *log.Logger {
	level := log.ErrorLevel
	if enabled {
		level = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: false,
	})
}
