// Package logging builds the logger shared by the hooks.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelEnvVar selects the log level of the hooks.
const LevelEnvVar = "PCT_LOG"

var levels = map[string]slog.Level{
	"error":    slog.LevelError,
	"critical": slog.LevelError,
	"warn":     slog.LevelWarn,
	"warning":  slog.LevelWarn,
	"info":     slog.LevelInfo,
	"debug":    slog.LevelDebug,
	"trace":    slog.LevelDebug,
}

// ParseLevel maps a level name to a slog level. Unknown or empty names yield
// slog.LevelWarn.
func ParseLevel(name string) slog.Level {
	level, ok := levels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return slog.LevelWarn
	}

	return level
}

// New returns a text logger writing to w at the level named by levelName.
// It is created once per process and passed to whatever needs to log.
func New(w io.Writer, levelName string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(levelName),
	}))
}
