package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/ctxutil"
	"github.com/ncobase/blogpost/logging/observes"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader carries the trace id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// Trace reuses the incoming request id or generates one, stores it on the
// request context and echoes it in the response.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if id := c.GetHeader(RequestIDHeader); id != "" {
			ctx = ctxutil.SetTraceID(ctx, id)
		}
		ctx, traceID := ctxutil.EnsureTraceID(ctx)

		c.Request = c.Request.WithContext(ctx)
		c.Set(ctxutil.TraceIDKey, traceID)
		c.Header(RequestIDHeader, traceID)

		c.Next()
	}
}

// Span opens a server span per request, continuing any propagated parent.
func Span() gin.HandlerFunc {
	tracer := otel.Tracer(observes.TracerName)
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracer.Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				observes.LayerKey.String(observes.LayerHandler.String()),
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String(ctxutil.TraceIDKey, ctxutil.GetTraceID(ctx)),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
		}
	}
}
