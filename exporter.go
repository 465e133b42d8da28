package arizeotel

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/exiao/arize-otel-go/internal/credstore"
)

// buildSpanExporter creates an OTLP exporter bound to the endpoint's literal
// resolved URL. Credentials are read from the side channel at construction
// time, so Register must populate it first. Network connections are
// established lazily by the transport on first flush, not here.
func buildSpanExporter(ctx context.Context, ep Endpoint) (sdktrace.SpanExporter, error) {
	url, transport := ep.Resolve()
	headers := credstore.HeaderMap()

	if transport == TransportHTTP {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(url)}
		if len(headers) > 0 {
			opts = append(opts, otlptracehttp.WithHeaders(headers))
		}

		return otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpointURL(url)}
	if len(headers) > 0 {
		opts = append(opts, otlptracegrpc.WithHeaders(headers))
	}

	return otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
}

// buildConsoleExporter writes spans to stdout for local debugging.
func buildConsoleExporter() (sdktrace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

// newSpanProcessor wraps an exporter in the processor kind selected for the
// current Register call: batched (timer/size-threshold flush) or simple
// (synchronous dispatch on span end).
func newSpanProcessor(batch bool, exp sdktrace.SpanExporter) sdktrace.SpanProcessor {
	if batch {
		return sdktrace.NewBatchSpanProcessor(exp)
	}

	return sdktrace.NewSimpleSpanProcessor(exp)
}
