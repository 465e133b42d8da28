// Package engine generates LLM-application traces from scenarios and ships
// them through the arizeotel pipeline.
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	arizeotel "github.com/exiao/arize-otel-go"
	"github.com/exiao/arize-otel-go/cmd/llm-sim/scenario"
)

// Engine generates traces from scenarios.
type Engine struct {
	provider  *sdktrace.TracerProvider
	tracer    trace.Tracer
	jitterPct int
}

// Config holds engine configuration.
type Config struct {
	Endpoints    []string
	SpaceKey     string
	APIKey       string
	ModelID      string
	ModelVersion string
	ProjectName  string
	LogToConsole bool
	UseBatch     bool
	JitterPct    int
}

// New registers the tracing pipeline for the given destinations and returns
// an engine that emits through it.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	endpoints := make(arizeotel.EndpointList, 0, len(cfg.Endpoints))
	for _, ep := range cfg.Endpoints {
		endpoints = append(endpoints, arizeotel.ParseEndpoint(ep))
	}

	tp, err := arizeotel.Register(ctx, &arizeotel.Config{
		Endpoints:         endpoints,
		SpaceKey:          cfg.SpaceKey,
		APIKey:            cfg.APIKey,
		ModelID:           cfg.ModelID,
		ModelVersion:      cfg.ModelVersion,
		ProjectName:       cfg.ProjectName,
		LogToConsole:      cfg.LogToConsole,
		UseBatchProcessor: cfg.UseBatch,
	})
	if err != nil {
		return nil, fmt.Errorf("register tracing pipeline: %w", err)
	}

	return &Engine{
		provider:  tp,
		tracer:    tp.Tracer("llm-sim"),
		jitterPct: cfg.JitterPct,
	}, nil
}

// Shutdown flushes and closes the provider.
func (e *Engine) Shutdown(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}

// GenerateTrace generates a complete trace from a scenario.
func (e *Engine) GenerateTrace(ctx context.Context, s *scenario.Scenario) error {
	return e.generateSpan(ctx, s.RootSpan)
}

// generateSpan recursively generates a span and its children.
func (e *Engine) generateSpan(ctx context.Context, tmpl scenario.SpanTemplate) error {
	attrs := parseAttributes(tmpl.Attributes)
	if tmpl.Kind != "" {
		attrs = append(attrs, attribute.String(arizeotel.AttrSpanKind, tmpl.Kind))
	}

	spanCtx, span := e.tracer.Start(ctx, tmpl.Name, trace.WithAttributes(attrs...))

	if tmpl.ErrorRate > 0 && rand.Float64() < tmpl.ErrorRate { //nolint:gosec // weak rand is fine for simulation
		span.SetStatus(codes.Error, tmpl.ErrorStatus)
		span.RecordError(fmt.Errorf("%s", tmpl.ErrorStatus))
	}

	for _, child := range tmpl.Children {
		if err := e.generateSpan(spanCtx, child); err != nil {
			span.End()
			return err
		}
	}

	// Simulate duration by sleeping
	time.Sleep(e.applyJitter(tmpl.Duration.AsDuration()))
	span.End()

	return nil
}

// applyJitter adds random timing variation to a duration.
func (e *Engine) applyJitter(d time.Duration) time.Duration {
	if e.jitterPct <= 0 {
		return d
	}
	jitter := float64(d) * float64(e.jitterPct) / 100.0
	offset := (rand.Float64() * 2 * jitter) - jitter //nolint:gosec // weak rand is fine for jitter

	return d + time.Duration(offset)
}

// parseAttributes converts the string map to OTel attributes with type inference.
func parseAttributes(attrs map[string]string) []attribute.KeyValue {
	result := make([]attribute.KeyValue, 0, len(attrs)+1)
	for k, v := range attrs {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			result = append(result, attribute.Int64(k, i))
			continue
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			result = append(result, attribute.Float64(k, f))
			continue
		}
		if b, err := strconv.ParseBool(v); err == nil {
			result = append(result, attribute.Bool(k, b))
			continue
		}
		result = append(result, attribute.String(k, v))
	}

	return result
}
