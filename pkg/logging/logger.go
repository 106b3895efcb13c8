package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger so the rest of the codebase does not depend
// on a concrete handler configuration.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger at the given level writing to stdout.
// Unknown levels fall back to info.
func New(level string) *Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a JSON logger writing to w, mainly for tests.
func NewWithWriter(w io.Writer, level string) *Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel})
	return &Logger{Logger: slog.New(handler)}
}

// Default returns an info-level logger.
func Default() *Logger {
	return New("info")
}
