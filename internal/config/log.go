package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates the application logger writing to w. The level comes from
// METEOR_LOG_LEVEL (debug, info, warn, error); unknown values mean info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv("METEOR_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// LogWriter opens METEOR_LOG_FILE for appending. Without it, output is
// discarded; full-screen front-ends own the terminal and cannot log to it.
// The returned close function is always safe to call.
func LogWriter() (io.Writer, func() error) {
	path := GetEnv("METEOR_LOG_FILE", "")
	if path == "" {
		return io.Discard, func() error { return nil }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() error { return nil }
	}
	return f, f.Close
}
