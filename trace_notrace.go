//go:build notrace

package xmltree

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

const TracingEnabled = false

var nullLogger = slog.New(slog.DiscardHandler)

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return ctx
}

func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {}

func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	return nullLogger
}
