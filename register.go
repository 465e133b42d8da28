package arizeotel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/exiao/arize-otel-go/internal/credstore"
)

// TracerRegistry installs a tracer provider as the ambient default consumed
// by downstream instrumentation. Register overwrites whatever provider is
// currently installed; last write wins, no merging.
type TracerRegistry interface {
	SetTracerProvider(tp trace.TracerProvider)
}

// otelRegistry backs the default registry with the process-wide
// OpenTelemetry global.
type otelRegistry struct{}

func (otelRegistry) SetTracerProvider(tp trace.TracerProvider) {
	otel.SetTracerProvider(tp)
}

// Register assembles a tracing pipeline from cfg and installs it as the
// process-wide default tracer provider.
//
// The steps run in a fixed order: validation, credential propagation to the
// side channel, resource construction, one exporter and processor per
// endpoint in caller order (duplicates preserved), the optional console
// mirror, then registration. Validation runs before any pipeline object is
// built, so a failed Register is all-or-nothing and leaves no side effects.
//
// Register mutates two process-wide singletons, the tracer-provider registry
// and the credential side channel, and provides no internal locking.
// Call it once at process start; serialize externally if you must call it
// concurrently. Shutdown the returned provider when the process exits.
//
// Unreachable endpoints do not fail Register; transports connect lazily and
// surface errors at flush time.
func Register(ctx context.Context, cfg *Config) (*sdktrace.TracerProvider, error) {
	if cfg == nil || len(cfg.Endpoints) == 0 {
		return nil, ErrNoEndpoints
	}
	if err := validateCredentials(cfg); err != nil {
		return nil, err
	}

	// Exporter construction reads the side channel, so it is set first.
	if cfg.SpaceKey != "" || cfg.APIKey != "" {
		credstore.Set(cfg.SpaceKey, cfg.APIKey)
	}

	procs, err := assembleProcessors(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithResource(buildResource(cfg)))
	for _, sp := range procs {
		tp.RegisterSpanProcessor(sp)
	}

	registry := cfg.Registry
	if registry == nil {
		registry = otelRegistry{}
	}
	registry.SetTracerProvider(tp)
	otel.SetTextMapPropagator(defaultPropagator())

	return tp, nil
}

// assembleProcessors builds one processor per destination plus the optional
// console mirror. Every processor in one call is of the same kind, selected
// by cfg.UseBatchProcessor; kinds are never mixed within a call.
func assembleProcessors(ctx context.Context, cfg *Config) ([]sdktrace.SpanProcessor, error) {
	procs := make([]sdktrace.SpanProcessor, 0, len(cfg.Endpoints)+1)
	for _, ep := range cfg.Endpoints {
		exp, err := buildSpanExporter(ctx, ep)
		if err != nil {
			url, _ := ep.Resolve()
			return nil, fmt.Errorf("build span exporter for %s: %w", url, err)
		}
		procs = append(procs, newSpanProcessor(cfg.UseBatchProcessor, exp))
	}

	if cfg.LogToConsole {
		exp, err := buildConsoleExporter()
		if err != nil {
			return nil, fmt.Errorf("build console exporter: %w", err)
		}
		procs = append(procs, newSpanProcessor(cfg.UseBatchProcessor, exp))
	}

	return procs, nil
}

// validateCredentials enforces the credential requirements of the two
// authenticated hosted destinations. Arbitrary URLs pass without checks.
func validateCredentials(cfg *Config) error {
	for _, ep := range cfg.Endpoints {
		switch ep {
		case EndpointArize:
			if cfg.SpaceKey == "" {
				return &ConfigError{Field: "spaceKey", Target: "Arize"}
			}
			if cfg.APIKey == "" {
				return &ConfigError{Field: "apiKey", Target: "Arize"}
			}
			if cfg.ModelID == "" {
				return &ConfigError{Field: "modelId", Target: "Arize"}
			}
		case EndpointHostedPhoenix:
			if cfg.APIKey == "" {
				return &ConfigError{Field: "apiKey", Target: "Hosted Phoenix"}
			}
		}
	}

	return nil
}
