package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing human-readable lines to stderr at the given level
// ("debug", "info", "warn", "error"). When file is non-empty, JSON lines are also appended to it;
// the returned closer must be closed on exit (it is a no-op when no file is used).
func New(level, file string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("logger: %w", err)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}

	if file == "" {
		return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("logger: %w", err)
	}
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("logger: %w", err)
	}
	w := zerolog.MultiLevelWriter(console, f)
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
