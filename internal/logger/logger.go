// Package logger provides a small wrapper over charmbracelet/log's default
// logger, consistent across the server, CLI, and builder commands.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a new charm logger that respects the global log level. Output
// goes to stderr, like charmbracelet/log's own package-level default
// logger, so it never collides with a server's msgpack responses on stdout.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a charm logger with explicit options, for callers
// that need caller/timestamp reporting or a non-default formatter.
func NewWithConfig(prefix string, level log.Level, caller, timestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: timestamp,
		Formatter:       formatter,
	})
}
