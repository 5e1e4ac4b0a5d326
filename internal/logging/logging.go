// Package logging sets up the zerolog logger. The terminal belongs to the TUI,
// so log lines go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Settings selects the level and destination of log output
type Settings struct {
	Level string
	File  string // empty discards all output
}

// Logger is a zerolog logger together with the file it writes to
type Logger struct {
	zerolog.Logger
	file *os.File
}

// New opens the log file and returns a logger writing to it.
func New(s Settings) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(s.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if s.File == "" {
		return &Logger{Logger: zerolog.Nop()}, nil
	}

	if dir := filepath.Dir(s.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	return &Logger{Logger: newLogger(f, lvl), file: f}, nil
}

// NewWriter returns a logger writing to w; used by tests and the window command.
func NewWriter(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{Logger: newLogger(w, level)}
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with the component name
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
