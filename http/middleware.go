package http

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Handler wraps an http.Handler with tracing under the given operation name.
//
// It uses the globally registered TracerProvider and TextMapPropagator, so
// arizeotel.Register must have run first. For explicit provider injection use
// [HandlerWithProviders].
func Handler(handler http.Handler, operation string, opts ...otelhttp.Option) http.Handler {
	return otelhttp.NewHandler(handler, operation, opts...)
}

// HandlerWithProviders wraps an http.Handler with tracing bound to explicit
// providers. Any nil provider falls back to the corresponding global.
func HandlerWithProviders(
	handler http.Handler,
	operation string,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	prop propagation.TextMapPropagator,
	opts ...otelhttp.Option,
) http.Handler {
	allOpts := append(buildProviderOptions(tp, mp, prop), opts...)

	return otelhttp.NewHandler(handler, operation, allOpts...)
}

// Middleware returns middleware that traces inbound HTTP requests using the
// globally registered providers.
func Middleware(opts ...otelhttp.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewMiddleware("http.request", opts...)(next)
	}
}

// MiddlewareWithProviders returns middleware bound to explicit providers.
// Any nil provider falls back to the corresponding global.
func MiddlewareWithProviders(
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	prop propagation.TextMapPropagator,
	opts ...otelhttp.Option,
) func(http.Handler) http.Handler {
	allOpts := buildProviderOptions(tp, mp, prop)
	allOpts = append(allOpts, opts...)

	return func(next http.Handler) http.Handler {
		return otelhttp.NewMiddleware("http.request", allOpts...)(next)
	}
}

// buildProviderOptions resolves explicit providers, falling back to the
// globals for any nil one.
func buildProviderOptions(
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	prop propagation.TextMapPropagator,
) []otelhttp.Option {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if prop == nil {
		prop = otel.GetTextMapPropagator()
	}

	return []otelhttp.Option{
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithMeterProvider(mp),
		otelhttp.WithPropagators(prop),
	}
}
