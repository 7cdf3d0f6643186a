// Package logx sets up the structured logger used by the spirograph command.
package logx

import (
	"io"
	"log/slog"
)

// LevelFromFlags returns the level for the given command line flags:
// verbose selects debug, quiet selects error, and neither keeps fallback.
// verbose wins when both are set.
func LevelFromFlags(verbose, quiet bool, fallback slog.Level) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	default:
		return fallback
	}
}

// New returns a text logger writing records at or above level to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
