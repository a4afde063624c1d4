// Package config holds the runtime configuration an evaluator uses to set
// up validator executions: the resource budget, the cost model, and
// whether the debug trace channel is active.
//
// Configuration is decoded strictly: unknown YAML keys are rejected so a
// typo can never silently change metering behavior.
package config

import (
	"github.com/covenantnet/prelude/pkg/meter"
)

// Config is the evaluator-facing runtime configuration.
type Config struct {
	// TraceEnabled activates the debug sink. Off in production
	// evaluation; tracing never influences verdicts either way.
	TraceEnabled bool `yaml:"trace_enabled"`

	// BudgetUnits is the resource allowance per validator invocation.
	BudgetUnits uint64 `yaml:"budget_units"`

	// CostModel overrides the built-in per-operation costs. Nil keeps
	// the defaults.
	CostModel *meter.CostModel `yaml:"cost_model"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TraceEnabled: false,
		BudgetUnits:  10_000_000,
		CostModel:    nil,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() []error {
	var errs []error

	if c.BudgetUnits == 0 {
		errs = append(errs, &meter.ConfigError{Field: "BudgetUnits", Message: "must be positive"})
	}
	if c.CostModel != nil {
		errs = append(errs, c.CostModel.Validate()...)
	}

	return errs
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if c.BudgetUnits == 0 {
		c.BudgetUnits = defaults.BudgetUnits
	}
}
