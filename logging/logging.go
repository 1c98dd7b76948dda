// Package logging builds the process-wide structured logger.
//
// It is a thin layer over log/slog: a Config selects the minimum level,
// text or JSON output and an optional service attribute stamped on every
// record.
//
//	logger := logging.New(logging.Config{Level: logging.LevelInfo, Service: "algoviz"})
//	logger.Info("trace generated", "family", "sorting", "steps", 42)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

// Config configures New. A zero Config logs Info and above as text to stderr.
type Config struct {
	// Level sets the minimum level; lower records are discarded.
	Level Level

	// JSON selects the JSON handler instead of text.
	JSON bool

	// Service, when set, is attached to every record as "service".
	Service string

	// Output overrides the destination. Default: os.Stderr.
	Output io.Writer
}

// New returns a logger configured by cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	if cfg.Service != "" {
		h = h.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record, for tests.
func Discard() *slog.Logger {
	return New(Config{Output: io.Discard, Level: LevelError})
}
