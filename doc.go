// Package arizeotel wires a complete OpenTelemetry tracing pipeline for
// applications that report traces to Arize, Phoenix, or any OTLP collector.
//
// # Overview
//
// The package assembles and installs a process-wide tracer provider from a
// declarative [Config]:
//   - Endpoint resolution for the well-known hosted destinations
//     ([EndpointArize], [EndpointPhoenixLocal], [EndpointHostedPhoenix]) and
//     arbitrary collector URLs
//   - Credential validation for the authenticated destinations, before any
//     pipeline object is built
//   - Per-endpoint OTLP exporter selection (gRPC or HTTP), one span
//     processor per destination
//   - Optional console mirror for local development
//
// # Quick Start
//
// Register the pipeline once at process start:
//
//	tp, err := arizeotel.Register(ctx, &arizeotel.Config{
//	    Endpoints: arizeotel.Endpoints(arizeotel.EndpointArize),
//	    SpaceKey:  os.Getenv("ARIZE_SPACE_KEY"),
//	    APIKey:    os.Getenv("ARIZE_API_KEY"),
//	    ModelID:   "chat-assistant",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tp.Shutdown(ctx)
//	arizeotel.InitTracing(tp.Tracer("chat-assistant"))
//
// Use span helpers in application code:
//
//	func Answer(ctx context.Context, prompt string) (string, error) {
//	    ctx, span := arizeotel.StartLLM(ctx, "Answer")
//	    defer span.End()
//
//	    reply, err := complete(ctx, prompt)
//	    if err != nil {
//	        arizeotel.RecordError(ctx, err)
//	        return "", err
//	    }
//
//	    arizeotel.SetSuccess(ctx)
//	    return reply, nil
//	}
//
// # Configuration
//
// Configure programmatically, or load from YAML with environment overrides:
//
//	endpoints:
//	  - phoenix-local
//	  - hosted-phoenix
//	apiKey: "..."          # ARIZE_API_KEY
//	projectName: "my-app"  # PHOENIX_PROJECT_NAME
//	useBatchProcessor: true
//
// The endpoints field accepts a single value or a list; well-known names or
// literal URLs. Registration order follows the list order.
//
// # Sessions
//
// Use the session helpers to group spans from one conversation across
// services:
//
//	ctx = arizeotel.MustSetSession(ctx, sessionID)
//	// ... later, in a downstream service
//	sessionID := arizeotel.SessionID(ctx)
//
// # Middleware
//
// The http and grpc sub-packages provide client and server instrumentation
// bound to the registered provider.
package arizeotel
