// Package logging builds the seeder's slog logger from SEED_LOG_LEVEL.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger on stderr at the requested level. "silent"
// discards all output, "debug" enables per-row detail, anything else is info.
func New(level string) *slog.Logger {
	switch level {
	case "silent":
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	case "debug":
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
