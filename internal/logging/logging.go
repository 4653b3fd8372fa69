// Package logging builds the slog logger shared by every command.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a config string to a slog level. Unknown values mean warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenFile returns a logger appending to dataDir/sunspot.log, for use while
// the terminal is owned by the TUI. If the file cannot be opened it falls
// back to a discarding logger; the returned closer is always safe to call.
func OpenFile(dataDir, level string) (*slog.Logger, func() error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return Discard(), func() error { return nil }
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "sunspot.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Discard(), func() error { return nil }
	}
	return New(f, level), f.Close
}
