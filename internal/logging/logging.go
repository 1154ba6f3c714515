// Package logging builds the application's structured logger.
//
// The TUI owns stdout, so logs only ever go to a file, and only when debug
// logging is enabled. Otherwise every record is discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options controls where and whether logs are written.
type Options struct {
	Debug bool
	// File is the log destination. Empty uses DefaultPath.
	File string
	// DefaultPath resolves a fallback file; nil disables the fallback.
	DefaultPath func() (string, error)
}

// New returns a logger and a closer for its backing file. The closer is
// always non-nil.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if !opts.Debug {
		return Discard(), nopCloser{}, nil
	}

	path := opts.File
	if path == "" && opts.DefaultPath != nil {
		p, err := opts.DefaultPath()
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}
	if path == "" {
		return Discard(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	return NewWithWriter(f, slog.LevelDebug), f, nil
}

// NewWithWriter returns a JSON logger writing to w at level.
func NewWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
