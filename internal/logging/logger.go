package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the process-wide structured logger
var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Setup replaces Logger with a text logger writing to w at the given level
func Setup(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogger allows overriding the default logger (e.g. for testing)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
