package main

import (
	"flag"
	"strings"
	"time"

	"github.com/arloliu/fuda"
)

// Config holds all CLI configuration.
// Uses fuda struct tags for defaults and env var binding.
type Config struct {
	// Destination settings
	Endpoints    string `yaml:"endpoints" default:"phoenix-local" env:"ARIZE_OTEL_ENDPOINTS"`
	SpaceKey     string `yaml:"spaceKey" env:"ARIZE_SPACE_KEY"`
	APIKey       string `yaml:"apiKey" env:"ARIZE_API_KEY"`
	ModelID      string `yaml:"modelId" env:"ARIZE_MODEL_ID"`
	ModelVersion string `yaml:"modelVersion" env:"ARIZE_MODEL_VERSION"`
	ProjectName  string `yaml:"projectName" env:"PHOENIX_PROJECT_NAME"`

	// Pipeline settings
	LogToConsole bool `yaml:"console" default:"false"`
	UseBatch     bool `yaml:"batch" default:"false"`

	// Scenario settings
	Scenario     string `yaml:"scenario" default:"chat"`
	ScenarioFile string `yaml:"scenarioFile"`

	// Quick mode
	Count int `yaml:"count" default:"10"`

	// Continuous mode
	Duration time.Duration `yaml:"duration" default:"1m"`
	Rate     float64       `yaml:"rate" default:"1"`
	Jitter   int           `yaml:"jitter" default:"20"`
}

// EndpointNames splits the comma-separated endpoints flag, preserving order.
func (c *Config) EndpointNames() []string {
	var names []string
	for part := range strings.SplitSeq(c.Endpoints, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}

	return names
}

func newConfig() *Config {
	cfg := &Config{}
	// Apply defaults from struct tags (fuda handles time.Duration parsing)
	_ = fuda.SetDefaults(cfg)

	return cfg
}

func (c *Config) bindCommonFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Endpoints, "endpoints", c.Endpoints, "Comma-separated destinations: arize, phoenix-local, hosted-phoenix, or a collector URL")
	fs.StringVar(&c.SpaceKey, "space-key", c.SpaceKey, "Arize space key")
	fs.StringVar(&c.APIKey, "api-key", c.APIKey, "API key for Arize or Hosted Phoenix")
	fs.StringVar(&c.ModelID, "model-id", c.ModelID, "Arize model ID")
	fs.StringVar(&c.ModelVersion, "model-version", c.ModelVersion, "Arize model version")
	fs.StringVar(&c.ProjectName, "project-name", c.ProjectName, "Phoenix project name")
	fs.BoolVar(&c.LogToConsole, "console", c.LogToConsole, "Mirror spans to stdout")
	fs.BoolVar(&c.UseBatch, "batch", c.UseBatch, "Use the batch span processor")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "Scenario name")
	fs.StringVar(&c.ScenarioFile, "scenario-file", c.ScenarioFile, "Custom YAML scenario file")
}

func (c *Config) applyEnvOverrides() {
	// fuda.LoadEnv reads env vars based on struct tags
	_ = fuda.LoadEnv(c)
}
