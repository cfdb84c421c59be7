// Package logging builds the structured logger shared by commands.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

// EnvLevel names the environment variable that sets the log level when
// --log-level is not given.
const EnvLevel = "TASKREPORT_LOG_LEVEL"

// DefaultLevel keeps a CLI quiet unless something goes wrong.
const DefaultLevel = "WARN"

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts DEBUG, INFO, WARN or ERROR (any case) to a slog level.
// Unknown values yield WARN.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ValidLevels returns the accepted level names.
func ValidLevels() []string {
	return []string{"DEBUG", "INFO", "WARN", "ERROR"}
}

// NewTest returns a logger that writes to t.Log at DEBUG level.
// Logs only appear on test failure or when running with -v.
func NewTest(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
