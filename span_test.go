package arizeotel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// newRecordingTracer installs a provider backed by an in-memory exporter and
// returns the exporter for assertions.
func newRecordingTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider()
	tp.RegisterSpanProcessor(sdktrace.NewSimpleSpanProcessor(exp))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	InitTracing(tp.Tracer("test"))

	return exp
}

func TestStartKindHelpers(t *testing.T) {
	exp := newRecordingTracer(t)

	ctx := context.Background()

	_, span := StartLLM(ctx, "Complete")
	span.End()
	_, span = StartRetriever(ctx, "Lookup")
	span.End()
	_, span = StartChain(ctx, "Pipeline")
	span.End()
	_, span = StartTool(ctx, "SearchFlights")
	span.End()
	_, span = StartAgent(ctx, "Plan")
	span.End()
	_, span = StartEmbedding(ctx, "Embed")
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 6)

	wantKinds := []string{
		SpanKindLLM, SpanKindRetriever, SpanKindChain,
		SpanKindTool, SpanKindAgent, SpanKindEmbedding,
	}
	for i, snap := range spans {
		assert.Contains(t, snap.Attributes, attribute.String(AttrSpanKind, wantKinds[i]))
	}
}

func TestSpanHelpers(t *testing.T) {
	exp := newRecordingTracer(t)

	ctx, span := Start(context.Background(), "op")
	assert.True(t, span.IsRecording())
	assert.NotEmpty(t, TraceID(ctx))
	assert.NotEmpty(t, SpanID(ctx))

	SetAttributes(ctx, attribute.String("key", "value"))
	AddEvent(ctx, "checkpoint")
	SetModelName(ctx, "gpt-4o")
	SetSuccess(ctx)
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes, attribute.String("key", "value"))
	assert.Contains(t, spans[0].Attributes, attribute.String(AttrLLMModelName, "gpt-4o"))
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "checkpoint", spans[0].Events[0].Name)
}

func TestRecordError(t *testing.T) {
	exp := newRecordingTracer(t)

	ctx, span := Start(context.Background(), "op")

	// nil error is a no-op
	RecordError(ctx, nil)

	RecordError(ctx, errors.New("model request timed out"))
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "model request timed out", spans[0].Status.Description)
}

func TestStart_NoTracerConfigured(t *testing.T) {
	InitTracing(nil)

	// Without a tracer, Start returns the context unchanged and a no-op span
	ctx := context.Background()
	ctx2, span := Start(ctx, "op")
	assert.NotNil(t, span)
	assert.Equal(t, ctx, ctx2)
}
