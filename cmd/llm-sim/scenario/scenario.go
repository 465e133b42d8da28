// Package scenario defines embedded LLM-application trace scenarios for the
// simulator.
package scenario

import (
	"time"
)

// Scenario defines a complete simulated trace shape.
type Scenario struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	RootSpan    SpanTemplate `yaml:"rootSpan"`
}

// SpanTemplate defines a span and its children.
type SpanTemplate struct {
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind"` // OpenInference kind: CHAIN, LLM, RETRIEVER, EMBEDDING, TOOL, AGENT
	Duration   Duration          `yaml:"duration"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Children   []SpanTemplate    `yaml:"children,omitempty"`

	// Error simulation
	ErrorRate   float64 `yaml:"errorRate,omitempty"`   // 0.0-1.0
	ErrorStatus string  `yaml:"errorStatus,omitempty"` // Error message when triggered
}

// Duration is a wrapper for time.Duration that supports YAML parsing.
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)

	return nil
}

// AsDuration converts Duration to time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// Registry holds all available scenarios.
var Registry = map[string]*Scenario{}

func init() {
	Register(ChatScenario())
	Register(RAGScenario())
	Register(AgentScenario())
}

// Register adds a scenario to the registry.
func Register(s *Scenario) {
	Registry[s.Name] = s
}

// Get retrieves a scenario by name.
func Get(name string) (*Scenario, bool) {
	s, ok := Registry[name]
	return s, ok
}

// List returns all available scenario names.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}

	return names
}
