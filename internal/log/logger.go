// Package log wraps log/slog with a component attribute and shared field
// names so every process of the tracker logs the same shape.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a slog.Logger bound to one component. The embedded logger
// already carries the component attribute.
type Logger struct {
	*slog.Logger
	base      *slog.Logger
	component string
}

type Config struct {
	Level     slog.Level
	Component string
	Handler   slog.Handler
}

func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: ComponentApp,
		Handler:   NewHandler(os.Stdout, slog.LevelInfo, "text"),
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

// NewHandler builds a text or JSON handler writing to w.
func NewHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func New(config Config) *Logger {
	handler := config.Handler
	if handler == nil {
		handler = NewHandler(os.Stdout, config.Level, "text")
	}
	return bind(slog.New(handler), config.Component)
}

// FromSlog binds an existing slog logger to component.
func FromSlog(logger *slog.Logger, component string) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return bind(logger, component)
}

func bind(base *slog.Logger, component string) *Logger {
	l := &Logger{Logger: base, base: base, component: component}
	if component != "" {
		l.Logger = base.With(FieldComponent, component)
	}
	return l
}

// With returns a logger carrying args in addition to the component.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		base:      l.base.With(args...),
		component: l.component,
	}
}

// WithComponent rebinds the logger to another component, keeping other
// attributes added through With.
func (l *Logger) WithComponent(component string) *Logger {
	return bind(l.base, component)
}

func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}

func (l *Logger) Component() string {
	return l.component
}
