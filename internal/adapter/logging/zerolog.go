package logging

import (
	"context"

	"github.com/rs/zerolog"

	"linenotify/internal/domain/ports"
)

// ZeroLogger is an adapter around zerolog.Logger implementing ports.Logger.
// Args are alternating key/value pairs.
type ZeroLogger struct {
	logger zerolog.Logger
}

var _ ports.Logger = (*ZeroLogger)(nil)

// New creates a new ZeroLogger.
func New(logger zerolog.Logger) *ZeroLogger {
	return &ZeroLogger{logger: logger}
}

// Debug logs a debug message.
func (l *ZeroLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, l.logger.Debug(), msg, args)
}

// Info logs an informational message.
func (l *ZeroLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, l.logger.Info(), msg, args)
}

// Warn logs a warning.
func (l *ZeroLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, l.logger.Warn(), msg, args)
}

// Error logs an error message.
func (l *ZeroLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, l.logger.Error(), msg, args)
}

func (l *ZeroLogger) log(ctx context.Context, event *zerolog.Event, msg string, args []any) {
	if event == nil {
		return
	}
	if len(args)%2 != 0 {
		args = append(args, "(MISSING)")
	}
	event.Ctx(ctx).Fields(args).Msg(msg)
}
