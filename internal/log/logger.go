// Package log provides the component-tagged structured logger used as
// the observability side channel: fetch and mutation failures are
// reported here instead of being thrown into the render path.
package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger and stamps every record with the component
// that emitted it.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a logger writing text records to stdout at the given
// level.
func New(level slog.Level, component string) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler).With("component", component),
		component: component,
	}
}

// NewWithHandler creates a logger with a caller-supplied handler; tests
// use this to capture output.
func NewWithHandler(handler slog.Handler, component string) *Logger {
	return &Logger{
		Logger:    slog.New(handler).With("component", component),
		component: component,
	}
}

// WithComponent returns a logger for a sub-component sharing the same
// handler.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
