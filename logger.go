package meshkit

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/hupe1980/meshkit/config"
)

// Logger wraps slog.Logger with meshkit-specific context.
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
	return newLogger(os.Stderr, "json", level)
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(os.Stderr, "text", level)
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// NewLoggerFromConfig creates a Logger writing to w with the configured
// level and format.
func NewLoggerFromConfig(w io.Writer, cfg config.LogConfig) (*Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return newLogger(w, cfg.Format, level), nil
}

func newLogger(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithAttribute adds an attribute name field to the logger.
func (l *Logger) WithAttribute(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("attribute", name),
	}
}

// WithCollection adds a collection identifier field to the logger.
func (l *Logger) WithCollection(id uuid.UUID) *Logger {
	return &Logger{
		Logger: l.Logger.With("collection", id.String()),
	}
}

// WithEpsilon adds a colocation tolerance field to the logger.
func (l *Logger) WithEpsilon(epsilon float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("epsilon", epsilon),
	}
}

// LogMerge logs a merge of point sets.
func (l *Logger) LogMerge(ctx context.Context, sources, unique int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "merge failed",
			"sources", sources,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "merge completed",
			"sources", sources,
			"unique", unique,
		)
	}
}

// LogColocation logs the removal of colocated points.
func (l *Logger) LogColocation(ctx context.Context, points, removed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "colocated point removal failed",
			"points", points,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "colocated points removed",
			"points", points,
			"removed", removed,
		)
	}
}

// LogArchive logs an archive save or load.
func (l *Logger) LogArchive(ctx context.Context, op, filename string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "archive "+op+" failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "archive "+op+" completed",
			"filename", filename,
		)
	}
}

func (l *Logger) std() *slog.Logger {
	if l == nil {
		return nil
	}
	return l.Logger
}
