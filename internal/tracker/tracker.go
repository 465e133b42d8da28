// Package tracker holds the global tracer used by the span-start helpers.
package tracker

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
)

var global atomic.Pointer[trace.Tracer]

// Set updates the global tracer. Last write wins.
func Set(t trace.Tracer) {
	global.Store(&t)
}

// Start begins a new span using the global tracer.
// If no tracer is configured, it returns the current span from context (no-op).
func Start(ctx context.Context, operation string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t := Tracer()
	if t == nil {
		return ctx, trace.SpanFromContext(ctx)
	}

	return t.Start(ctx, operation, opts...)
}

// Tracer returns the configured global tracer, or nil if not set.
func Tracer() trace.Tracer {
	p := global.Load()
	if p == nil {
		return nil
	}

	return *p
}
