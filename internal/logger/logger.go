package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// EnvLevel names the environment variable consulted when no level is given.
const EnvLevel = "POWERPROMPT_LOG"

func levelFromString(s string) (l slog.Level, ok bool) {
	switch strings.ToLower(s) {
	case "debug", "dbg":
		return slog.LevelDebug, true
	case "info", "inf":
		return slog.LevelInfo, true
	case "warn", "wrn":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ResolveLevel picks the level from the flag value, then $POWERPROMPT_LOG,
// then info.
func ResolveLevel(flagValue string) slog.Level {
	if l, ok := levelFromString(flagValue); ok {
		return l
	}
	l, _ := levelFromString(os.Getenv(EnvLevel))
	return l
}

// InitLogger installs a text slog handler appending to the file at path as
// the default logger. Stdout is left alone: it carries the generated script.
// The returned closer releases the log file.
func InitLogger(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	// slog defaults to logging in the order of time, level, msg, and other attributes.
	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	return logFile, nil
}

// Discard installs a default logger that drops everything.
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
