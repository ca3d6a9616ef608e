package outbox

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
)

type slogAdapter struct {
	logger *slog.Logger
	fields watermill.LogFields
}

// NewLoggerAdapter routes watermill's internal logging to slog.
func NewLoggerAdapter(logger *slog.Logger) watermill.LoggerAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogAdapter{
		logger: logger,
		fields: watermill.LogFields{},
	}
}

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	attrs := a.attrs(fields)
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	a.logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, a.attrs(fields)...)
}

func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, a.attrs(fields)...)
}

// Trace has no slog counterpart and is logged below debug.
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.LogAttrs(context.Background(), slog.LevelDebug-4, msg, a.attrs(fields)...)
}

func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{
		logger: a.logger,
		fields: a.fields.Add(fields),
	}
}

func (a *slogAdapter) attrs(fields watermill.LogFields) []slog.Attr {
	all := a.fields.Add(fields)
	attrs := make([]slog.Attr, 0, len(all)+1)
	for k, v := range all {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}
