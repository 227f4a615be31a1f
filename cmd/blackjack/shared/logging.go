package shared

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a charmbracelet logger writing to w. debug forces
// DebugLevel regardless of level.
func SetupLogger(w io.Writer, level log.Level, debug bool) *log.Logger {
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// SetupStructuredLogger configures a logfmt logger for files and pipes
func SetupStructuredLogger(w io.Writer, level log.Level, debug bool) *log.Logger {
	logger := SetupLogger(w, level, debug)
	logger.SetFormatter(log.LogfmtFormatter)
	return logger
}
