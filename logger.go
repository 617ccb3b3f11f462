package anfgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with anfgo-specific context.
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

// WithManager adds the manager identity to the logger.
func (l *Logger) WithManager(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("manager", id),
	}
}

// WithGraph adds a graph field to the logger.
func (l *Logger) WithGraph(g Graph) *Logger {
	return &Logger{
		Logger: l.Logger.With("graph", g.String()),
	}
}

// WithNode adds a node field to the logger.
func (l *Logger) WithNode(n Node) *Logger {
	return &Logger{
		Logger: l.Logger.With("node", n.String()),
	}
}

// LogNewGraph logs a graph allocation.
func (l *Logger) LogNewGraph(g Graph) {
	l.Debug("graph allocated",
		"graph", g.String(),
	)
}

// LogNewNode logs a node allocation.
func (l *Logger) LogNewNode(kind NodeKind, n Node, err error) {
	if err != nil {
		l.Error("node allocation failed",
			"kind", kind.String(),
			"error", err,
		)
	} else {
		l.Debug("node allocated",
			"kind", kind.String(),
			"node", n.String(),
		)
	}
}

// LogSetOutput logs a graph output change.
func (l *Logger) LogSetOutput(g Graph, n Node, err error) {
	if err != nil {
		l.Error("set output failed",
			"graph", g.String(),
			"node", n.String(),
			"error", err,
		)
	} else {
		l.Debug("output set",
			"graph", g.String(),
			"node", n.String(),
		)
	}
}

// LogRootAdd logs a root-set insertion.
func (l *Logger) LogRootAdd(n Node, err error) {
	if err != nil {
		l.Error("root add failed",
			"node", n.String(),
			"error", err,
		)
	} else {
		l.Debug("root added",
			"node", n.String(),
		)
	}
}

// LogRootRemove logs a root-set removal.
func (l *Logger) LogRootRemove(n Node, err error) {
	if err != nil {
		l.Error("root remove failed",
			"node", n.String(),
			"error", err,
		)
	} else {
		l.Debug("root removed",
			"node", n.String(),
		)
	}
}
