package strhash

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with strhash-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTextLen adds the text length field to the logger.
func (l *Logger) WithTextLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("text_len", n),
	}
}

// WithModulusCount adds the modulus count field to the logger.
func (l *Logger) WithModulusCount(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("moduli", k),
	}
}

// LogBuild logs a completed table construction.
func (l *Logger) LogBuild(n, k int, validated bool) {
	l.Debug("table built",
		"text_len", n,
		"moduli", k,
		"validated", validated,
	)
}
