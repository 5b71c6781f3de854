// Package logging builds the charmbracelet/log loggers used by the CLI and
// the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultFile is where interactive play logs, since the TUI owns the terminal.
const DefaultFile = "~/.snake/snake.log"

// New creates a logger writing to w at the given level name.
// Unknown level names fall back to info.
func New(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel converts a level name such as "debug" to a log.Level.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// OpenFile opens (appending) the log file at path, creating parent
// directories. A leading ~ is expanded to the home directory.
func OpenFile(path string) (*os.File, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}

// NewFileLogger opens path and returns a logger writing to it. When the
// file cannot be opened the logger discards output and the error is
// returned so the caller may report it. The returned close func is never nil.
func NewFileLogger(path, level string) (*log.Logger, func() error, error) {
	f, err := OpenFile(path)
	if err != nil {
		return New(io.Discard, level, "snake"), func() error { return nil }, err
	}
	return New(f, level, "snake"), f.Close, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
