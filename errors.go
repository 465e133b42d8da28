package arizeotel

import (
	"errors"
	"fmt"
)

// ErrNoEndpoints is returned when Register is called without any destination.
var ErrNoEndpoints = errors.New("arizeotel: at least one endpoint is required")

// ConfigError reports a configuration field that a recognized authenticated
// destination requires but that is missing or empty. It is raised before any
// pipeline object is built, so a failed Register leaves no side effects.
type ConfigError struct {
	// Field is the configuration field that is missing, e.g. "apiKey".
	Field string

	// Target is the destination that requires it, e.g. "Arize".
	Target string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("arizeotel: missing %q, required to send traces to %s", e.Field, e.Target)
}
