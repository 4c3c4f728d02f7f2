package cellgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/cellgo/query"
)

// Logger wraps slog.Logger with cellgo-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// WithField adds a field name to the logger.
func (l *Logger) WithField(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", name),
	}
}

// WithKeys adds an ordering key list to the logger.
func (l *Logger) WithKeys(keys []string) *Logger {
	return &Logger{
		Logger: l.Logger.With("keys", keys),
	}
}

// WithRecords adds a record count to the logger.
func (l *Logger) WithRecords(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("records", n),
	}
}

// LogSort logs a sort operation.
func (l *Logger) LogSort(ctx context.Context, keys []string, records int) {
	l.DebugContext(ctx, "sort completed",
		"keys", keys,
		"records", records,
	)
}

// LogQuery logs the evaluation of a query condition.
func (l *Logger) LogQuery(ctx context.Context, cond *query.Condition, selected, records int) {
	l.DebugContext(ctx, "query condition evaluated",
		"condition", cond.String(),
		"selected", selected,
		"records", records,
	)
}

// LogDedup logs a deduplication pass.
func (l *Logger) LogDedup(ctx context.Context, keys []string, before, after int) {
	if after < before {
		l.InfoContext(ctx, "dedup dropped records",
			"keys", keys,
			"before", before,
			"after", after,
		)
	} else {
		l.DebugContext(ctx, "dedup kept all records",
			"keys", keys,
			"records", before,
		)
	}
}

// LogResolve logs an enumeration resolution.
func (l *Logger) LogResolve(ctx context.Context, field string, valid, records int) {
	if valid < records {
		l.WarnContext(ctx, "enumeration resolved with invalid indices",
			"field", field,
			"valid", valid,
			"records", records,
		)
	} else {
		l.DebugContext(ctx, "enumeration resolved",
			"field", field,
			"records", records,
		)
	}
}
