package grpc

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/stats"
)

// ServerHandler returns a gRPC stats.Handler for server-side tracing, using
// the globally registered providers. arizeotel.Register must have run first.
func ServerHandler(opts ...otelgrpc.Option) stats.Handler {
	return otelgrpc.NewServerHandler(opts...)
}

// ServerHandlerWithProviders returns a server-side stats.Handler bound to
// explicit providers. Any nil provider falls back to the corresponding
// global.
func ServerHandlerWithProviders(
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	prop propagation.TextMapPropagator,
	opts ...otelgrpc.Option,
) stats.Handler {
	allOpts := append(buildProviderOptions(tp, mp, prop), opts...)

	return otelgrpc.NewServerHandler(allOpts...)
}

// ClientHandler returns a gRPC stats.Handler for client-side tracing, using
// the globally registered providers.
func ClientHandler(opts ...otelgrpc.Option) stats.Handler {
	return otelgrpc.NewClientHandler(opts...)
}

// ClientHandlerWithProviders returns a client-side stats.Handler bound to
// explicit providers. Any nil provider falls back to the corresponding
// global.
func ClientHandlerWithProviders(
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	prop propagation.TextMapPropagator,
	opts ...otelgrpc.Option,
) stats.Handler {
	allOpts := append(buildProviderOptions(tp, mp, prop), opts...)

	return otelgrpc.NewClientHandler(allOpts...)
}

// buildProviderOptions resolves explicit providers, falling back to the
// globals for any nil one.
func buildProviderOptions(
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	prop propagation.TextMapPropagator,
) []otelgrpc.Option {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if prop == nil {
		prop = otel.GetTextMapPropagator()
	}

	return []otelgrpc.Option{
		otelgrpc.WithTracerProvider(tp),
		otelgrpc.WithMeterProvider(mp),
		otelgrpc.WithPropagators(prop),
	}
}
