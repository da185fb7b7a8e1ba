//go:build !notrace

package xmltree

import (
	"context"
	"log/slog"
	"runtime"
)

type traceLoggerKey struct{}

// TracingEnabled is false when built with -tags notrace.
const TracingEnabled = true

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger returns a context carrying tlog. Parse reports its
// progress to it at debug level.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

// TraceEvent logs msg to the trace logger in ctx, if any.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// TraceError logs err to the trace logger in ctx, if any.
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("error", err.Error()))
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nullLogger
	}

	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok && tlog != nil {
		// Skip this function and its direct caller (TraceEvent,
		// TraceError) to name the function being traced
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			if fn := runtime.FuncForPC(pc); fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}
		return tlog
	}

	return nullLogger
}
