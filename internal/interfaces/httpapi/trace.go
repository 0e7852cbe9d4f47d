package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("sports-challenge/internal/interfaces/httpapi")

// startSpan only opens child spans for handlers running under a traced
// request. Everything else gets the parent span back unchanged, so helpers
// can call it unconditionally.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan{parent}
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}

// noopSpan keeps End from closing a span the caller does not own.
type noopSpan struct {
	trace.Span
}

func (noopSpan) End(...trace.SpanEndOption) {}
