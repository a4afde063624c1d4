package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load decodes, defaults, and validates a runtime configuration. Unknown
// YAML keys are an error: a misspelled budget or cost key must never fall
// back to a default silently.
func Load(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.ApplyDefaults()
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %v", errs[0])
	}
	return cfg, nil
}
