package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// Console creates a plain logger for user facing output on w.
// It always prints at info level, whatever the global level is.
func Console(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.InfoLevel,
	})
}
