package logger

import (
	"context"

	"github.com/ncobase/blogpost/ctxutil"
	"go.opentelemetry.io/otel/trace"
)

var traceKey = ctxutil.TraceIDKey

// getTraceID prefers the request trace id and falls back to the active span.
func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
		return traceID
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	return ctxutil.EnsureTraceID(ctx)
}
