// Package logging builds the process logger. The terminal UI owns the
// screen, so interactive runs log to a rotating file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/uiakraken/kraken/internal/config"
)

// ParseLevel maps debug, warn and error to their slog levels; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// File returns a JSON logger writing to the configured log file, rotated by
// size. The returned closer flushes and closes the file.
func File(cfg *config.Config, level string) (*slog.Logger, io.Closer, error) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    max(1, cfg.Log.MaxSizeMB),
		MaxBackups: cfg.Log.MaxBackups,
	}
	return New(w, true, level), w, nil
}

// Stderr returns a text logger for non-interactive commands.
func Stderr(level string) *slog.Logger {
	return New(os.Stderr, false, level)
}

func New(w io.Writer, json bool, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
