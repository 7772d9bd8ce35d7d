// Package notify defines the operator notification capability. Handlers
// receive a Notifier by injection; there is deliberately no package-level
// default, so tests can observe exactly what a flow reported.
package notify

import (
	"context"
	"log/slog"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

// LogNotifier reports notifications through structured logging; in the
// deployed stack the worker turns document events into webhook deliveries,
// so the console itself only needs a local record.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, level Level, message string) {
	if level == LevelError {
		n.logger.ErrorContext(ctx, "operator notification", "level", level, "message", message)
		return
	}
	n.logger.InfoContext(ctx, "operator notification", "level", level, "message", message)
}
