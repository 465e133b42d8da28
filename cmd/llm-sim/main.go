// Package main provides the llm-sim CLI tool for simulating LLM-application
// traces against Arize, Phoenix, or any OTLP collector.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exiao/arize-otel-go/cmd/llm-sim/engine"
	"github.com/exiao/arize-otel-go/cmd/llm-sim/scenario"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	mode := os.Args[1]
	switch mode {
	case "quick":
		runQuickMode(os.Args[2:])
	case "run":
		runContinuousMode(os.Args[2:])
	case "list":
		listScenarios()
	case "-h", "--help", "help":
		printUsage()
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", mode)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`llm-sim - LLM application trace simulator

Usage:
  llm-sim <mode> [flags]

Modes:
  quick   Send traces immediately for quick visualization
  run     Simulate real-world timing continuously
  list    List available scenarios

Common Flags:
  --endpoints      Comma-separated destinations: arize, phoenix-local,
                   hosted-phoenix, or any collector URL (default: phoenix-local)
  --space-key      Arize space key (required for arize)
  --api-key        API key (required for arize and hosted-phoenix)
  --model-id       Arize model ID (required for arize)
  --model-version  Arize model version
  --project-name   Phoenix project name
  --console        Mirror spans to stdout
  --batch          Use the batch span processor
  --scenario       Scenario name (default: chat)
  --scenario-file  Custom YAML scenario file

Quick Mode Flags:
  --count          Number of traces to send (default: 10)

Continuous Mode Flags:
  --duration       Total simulation time (default: 1m)
  --rate           Traces per second (default: 1)
  --jitter         Timing variation percentage (default: 20)

Environment Variables:
  ARIZE_OTEL_ENDPOINTS   Destinations (comma-separated)
  ARIZE_SPACE_KEY        Arize space key
  ARIZE_API_KEY          API key
  ARIZE_MODEL_ID         Arize model ID
  PHOENIX_PROJECT_NAME   Phoenix project name

Examples:
  llm-sim quick --scenario rag --count 5
  llm-sim run --endpoints hosted-phoenix --api-key $ARIZE_API_KEY --duration 5m --rate 2
  llm-sim list`)
}

func runQuickMode(args []string) {
	cfg := newConfig()
	fs := flag.NewFlagSet("quick", flag.ExitOnError)
	cfg.bindCommonFlags(fs)
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of traces to send")

	if err := fs.Parse(args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return
	}

	cfg.applyEnvOverrides()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := executeQuick(ctx, cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func runContinuousMode(args []string) {
	cfg := newConfig()
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfg.bindCommonFlags(fs)

	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Total simulation time")
	fs.Float64Var(&cfg.Rate, "rate", cfg.Rate, "Traces per second")
	fs.IntVar(&cfg.Jitter, "jitter", cfg.Jitter, "Timing variation percentage")

	if err := fs.Parse(args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return
	}

	cfg.applyEnvOverrides()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := executeContinuous(ctx, cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func listScenarios() {
	fmt.Println(`Available scenarios:

  chat    Chat completion flow
          - Moderation check, model call, post-processing
          - Occasional simulated model timeouts

  rag     Retrieval-augmented generation
          - Query embedding, retrieval, rerank, synthesis
          - Vector store and reranker spans

  agent   Agent reasoning loop
          - Plan, two tool calls, final answer
          - Simulated tool API failures`)
}

func newEngine(ctx context.Context, cfg *Config, jitter int) (*engine.Engine, error) {
	return engine.New(ctx, engine.Config{
		Endpoints:    cfg.EndpointNames(),
		SpaceKey:     cfg.SpaceKey,
		APIKey:       cfg.APIKey,
		ModelID:      cfg.ModelID,
		ModelVersion: cfg.ModelVersion,
		ProjectName:  cfg.ProjectName,
		LogToConsole: cfg.LogToConsole,
		UseBatch:     cfg.UseBatch,
		JitterPct:    jitter,
	})
}

// executeQuick sends traces immediately.
func executeQuick(ctx context.Context, cfg *Config) error {
	s, err := loadScenario(cfg)
	if err != nil {
		return err
	}

	eng, err := newEngine(ctx, cfg, 0) // No jitter in quick mode
	if err != nil {
		return err
	}

	fmt.Printf("Sending %d traces to %s (scenario: %s)\n", cfg.Count, cfg.Endpoints, s.Name)

	for i := range cfg.Count {
		select {
		case <-ctx.Done():
			fmt.Printf("\nInterrupted after %d traces\n", i)
			return nil
		default:
		}

		if err := eng.GenerateTrace(ctx, s); err != nil {
			return fmt.Errorf("failed to generate trace %d: %w", i+1, err)
		}
		fmt.Printf("Trace %d/%d sent\n", i+1, cfg.Count)
	}

	// Allow time for export
	time.Sleep(500 * time.Millisecond)
	fmt.Println("Done!")

	return eng.Shutdown(ctx)
}

// executeContinuous runs traces at a steady rate for a duration.
func executeContinuous(ctx context.Context, cfg *Config) error {
	s, err := loadScenario(cfg)
	if err != nil {
		return err
	}

	eng, err := newEngine(ctx, cfg, cfg.Jitter)
	if err != nil {
		return err
	}

	fmt.Printf("Running %s scenario for %v at %.1f traces/sec\n", s.Name, cfg.Duration, cfg.Rate)

	interval := time.Duration(float64(time.Second) / cfg.Rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	deadline := time.Now().Add(cfg.Duration)
	traceCount := 0

	for {
		select {
		case <-ctx.Done():
			fmt.Printf("\nInterrupted after %d traces\n", traceCount)
			return eng.Shutdown(context.WithoutCancel(ctx))
		case <-ticker.C:
			if time.Now().After(deadline) {
				fmt.Printf("\nCompleted: sent %d traces\n", traceCount)
				return eng.Shutdown(ctx)
			}

			if err := eng.GenerateTrace(ctx, s); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to generate trace: %v\n", err)
				continue
			}
			traceCount++
		}
	}
}

func loadScenario(cfg *Config) (*scenario.Scenario, error) {
	// Try custom YAML file first
	if cfg.ScenarioFile != "" {
		return scenario.LoadFromFile(cfg.ScenarioFile)
	}

	// Look up embedded scenario
	s, ok := scenario.Get(cfg.Scenario)
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s (use 'llm-sim list' to see available scenarios)", cfg.Scenario)
	}

	return s, nil
}
