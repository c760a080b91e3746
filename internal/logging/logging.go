package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger with a text handler writing to STDERR, leaving
// STDOUT to the console UI and the archive writers.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a logger writing to w; used by tests.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
