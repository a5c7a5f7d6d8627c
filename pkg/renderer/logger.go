package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// NewNopLogger returns a logger that discards all output
func NewNopLogger() core.Logger {
	return nopLogger{}
}

// SlogLogger implements core.Logger on top of a structured logger.
// Each Printf call becomes one record at the configured level.
type SlogLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogLogger wraps l, logging at info level. A nil l uses slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l, level: slog.LevelInfo}
}

// WithLevel returns a copy of the logger that emits records at level
func (sl *SlogLogger) WithLevel(level slog.Level) *SlogLogger {
	return &SlogLogger{logger: sl.logger, level: level}
}

func (sl *SlogLogger) Printf(format string, args ...interface{}) {
	ctx := context.Background()
	if !sl.logger.Enabled(ctx, sl.level) {
		return
	}
	sl.logger.Log(ctx, sl.level, strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
