package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"tableflip.dev/daybook/pkg/store"
)

// setupLogging points the default slog logger at the configured log file.
// The calendar owns the terminal, so nothing is logged to stdout or stderr.
// When the file cannot be opened logs are discarded and the error returned.
func setupLogging(s *store.Settings, debug bool) (io.Closer, error) {
	level := slog.LevelInfo
	if s.LogLevel != "" {
		if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", s.LogLevel, err)
		}
	}
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	path := s.LogFile
	if path == "" {
		var err error
		if path, err = store.DefaultLogFile(); err != nil {
			slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, opts)))
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, opts)))
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, opts)))
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(f, opts)))
	return f, nil
}
