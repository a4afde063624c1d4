package meter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/covenantnet/prelude/pkg/contracts"
)

// CostModel maps each primitive operation to its cost in budget units.
// The model is fixed per chain deployment: every conforming evaluator must
// charge identical costs or metering itself becomes a consensus hazard.
type CostModel struct {
	// Costs overrides the per-operation unit cost.
	Costs map[contracts.Op]uint64 `yaml:"costs"`

	// DefaultCost applies to operations absent from Costs. Zero-cost
	// primitives are not allowed; Validate rejects a zero default.
	DefaultCost uint64 `yaml:"default_cost"`
}

// DefaultCostModel returns the built-in model: cheap structural
// primitives, moderately priced text scans, expensive cryptography.
func DefaultCostModel() *CostModel {
	return &CostModel{
		DefaultCost: 1,
		Costs: map[contracts.Op]uint64{
			OpInvoke:          10,
			OpTextContains:    2,
			OpTextSplit:       2,
			OpTextCase:        2,
			OpPow:             4,
			OpSqrt:            4,
			OpHash:            30,
			OpVerifySignature: 100,
		},
	}
}

// CostOf returns the unit cost of one invocation of op.
func (m *CostModel) CostOf(op contracts.Op) uint64 {
	if c, ok := m.Costs[op]; ok {
		return c
	}
	return m.DefaultCost
}

// Validate checks the model for errors.
func (m *CostModel) Validate() []error {
	var errs []error
	if m.DefaultCost == 0 {
		errs = append(errs, &ConfigError{Field: "DefaultCost", Message: "must be positive"})
	}
	for op, cost := range m.Costs {
		if cost == 0 {
			errs = append(errs, &ConfigError{Field: fmt.Sprintf("Costs[%s]", op), Message: "must be positive"})
		}
	}
	return errs
}

// DecodeCostModel decodes a cost model from YAML, rejecting unknown
// fields so a typo in an op name cannot silently fall back to the default
// cost at the top level.
func DecodeCostModel(r io.Reader) (*CostModel, error) {
	model := &CostModel{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(model); err != nil {
		return nil, fmt.Errorf("invalid cost model: %w", err)
	}
	if errs := model.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid cost model: %v", errs[0])
	}
	return model, nil
}

// ConfigError represents a cost model or budget configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
}
