// Package logging builds slog loggers from service configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Level is a configured logging severity.
type Level string

// Format selects the handler's output encoding.
type Format string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"

	FormatText Format = "text"
	FormatJSON Format = "json"
)

var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// New creates a logger writing to stdout per the configuration.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a configured logger writing to w. Unknown levels
// fall back to info.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level, ok := slogLevels[cfg.Level]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Validate reports whether the level is one of the configured severities.
func (l Level) Validate() error {
	if _, ok := slogLevels[l]; !ok {
		return fmt.Errorf("invalid log level %q (debug, info, warn, error)", l)
	}
	return nil
}

// Validate reports whether the format is a supported encoding.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid log format %q (text, json)", f)
}
