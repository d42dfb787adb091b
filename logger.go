package filekit

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with filekit-specific helpers.
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

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(path string, tokens int, err error) {
	if err != nil {
		l.Error("load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("load completed",
			"path", path,
			"tokens", tokens,
		)
	}
}

// LogLoadMany logs a multi-file load operation.
func (l *Logger) LogLoadMany(files int, err error) {
	if err != nil {
		l.Error("multi-load failed",
			"files", files,
			"error", err,
		)
	} else {
		l.Info("multi-load completed",
			"files", files,
		)
	}
}

// LogPick logs a random line selection.
func (l *Logger) LogPick(path string, err error) {
	if err != nil {
		l.Error("pick failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("pick completed",
			"path", path,
		)
	}
}

// LogList logs a directory listing.
func (l *Logger) LogList(dir string, entries int, err error) {
	if err != nil {
		l.Error("list failed",
			"dir", dir,
			"error", err,
		)
	} else {
		l.Debug("list completed",
			"dir", dir,
			"entries", entries,
		)
	}
}

// LogAppend logs an append operation.
func (l *Logger) LogAppend(path string, size int, err error) {
	if err != nil {
		l.Error("append failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("append completed",
			"path", path,
			"bytes", size,
		)
	}
}
