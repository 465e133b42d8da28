package arizeotel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/exiao/arize-otel-go/internal/tracker"
)

// InitTracing sets up the global tracer used by the Start helpers.
// Called once after Register, typically with a tracer from the returned
// provider.
func InitTracing(tracer trace.Tracer) {
	tracker.Set(tracer)
}

// Start begins a new span for an arbitrary operation.
func Start(ctx context.Context, operation string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracker.Start(ctx, operation, opts...)
}

// startKind begins a span tagged with an OpenInference span kind.
func startKind(ctx context.Context, operation, kind string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	opts = append([]trace.SpanStartOption{
		trace.WithAttributes(attribute.String(AttrSpanKind, kind)),
	}, opts...)

	return Start(ctx, operation, opts...)
}

// StartChain begins a chain span (a step in an application pipeline).
func StartChain(ctx context.Context, operation string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return startKind(ctx, operation, SpanKindChain, opts...)
}

// StartLLM begins an LLM span (a call to a completion or chat model).
func StartLLM(ctx context.Context, operation string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return startKind(ctx, operation, SpanKindLLM, opts...)
}

// StartRetriever begins a retriever span (a document or vector lookup).
func StartRetriever(ctx context.Context, operation string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return startKind(ctx, operation, SpanKindRetriever, opts...)
}

// StartEmbedding begins an embedding span.
func StartEmbedding(ctx context.Context, operation string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return startKind(ctx, operation, SpanKindEmbedding, opts...)
}

// StartTool begins a tool span (a function invoked on a model's behalf).
func StartTool(ctx context.Context, operation string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return startKind(ctx, operation, SpanKindTool, opts...)
}

// StartAgent begins an agent span (a reasoning loop driving tool calls).
func StartAgent(ctx context.Context, operation string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return startKind(ctx, operation, SpanKindAgent, opts...)
}

// Span returns the current span from context.
func Span(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// TraceID returns the trace ID from context, or empty string if none.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return ""
}

// SpanID returns the span ID from context, or empty string if none.
func SpanID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if sc.HasSpanID() {
		return sc.SpanID().String()
	}

	return ""
}

// RecordError records an error on the current span and sets status.
// If err is nil, this is a no-op.
func RecordError(ctx context.Context, err error, opts ...trace.EventOption) {
	if err == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	span.RecordError(err, opts...)
	span.SetStatus(codes.Error, err.Error())
}

// SetSuccess marks the current span as successful.
func SetSuccess(ctx context.Context) {
	trace.SpanFromContext(ctx).SetStatus(codes.Ok, "")
}

// AddEvent adds an event to the current span.
func AddEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	trace.SpanFromContext(ctx).AddEvent(name, trace.WithAttributes(attrs...))
}

// SetAttributes sets attributes on the current span.
func SetAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	trace.SpanFromContext(ctx).SetAttributes(attrs...)
}

// SetModelName records which model served the current span.
func SetModelName(ctx context.Context, model string) {
	SetAttributes(ctx, attribute.String(AttrLLMModelName, model))
}
