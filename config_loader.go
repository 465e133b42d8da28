package arizeotel

import (
	"github.com/arloliu/fuda"
)

// LoadConfig loads a Config from a file path.
// It supports YAML and JSON formats.
// Environment variables are also parsed and override file values.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	// fuda.LoadFile handles reading, parsing, env vars, and defaults
	if err := fuda.LoadFile(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseConfig parses a Config from a byte slice.
// It supports YAML and JSON formats (auto-detected).
// Environment variables are also parsed and override file values.
// A value of the wrong type, such as a non-boolean useBatchProcessor, fails
// here, before any endpoint validation runs.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	// fuda.LoadBytes handles parsing, env vars, and defaults
	if err := fuda.LoadBytes(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
