package meter

import (
	"errors"
	"fmt"

	"github.com/covenantnet/prelude/pkg/contracts"
)

// ErrBudgetExhausted is returned when an execution runs out of budget.
// It is fatal: the enclosing execution aborts with no partial effects,
// and no validation chain can catch or recover from it.
var ErrBudgetExhausted = errors.New("budget exhausted")

// ExhaustionError reports which operation tripped the budget.
type ExhaustionError struct {
	Op    contracts.Op
	Limit uint64
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("budget exhausted: op '%s' exceeds limit %d", e.Op, e.Limit)
}

func (e *ExhaustionError) Unwrap() error { return ErrBudgetExhausted }

// Ensure Budget implements the metering contract.
var _ contracts.Meter = (*Budget)(nil)

// Budget is the reference meter: a fixed unit allowance drawn down by a
// cost model. Not safe for concurrent use; execution is single-threaded
// per invocation by contract.
type Budget struct {
	model     *CostModel
	limit     uint64
	remaining uint64
}

// NewBudget creates a meter with the given unit limit. A nil model uses
// the built-in default cost model.
func NewBudget(limit uint64, model *CostModel) *Budget {
	if model == nil {
		model = DefaultCostModel()
	}
	return &Budget{model: model, limit: limit, remaining: limit}
}

// Charge implements contracts.Meter. Charging zero units is a no-op so
// per-element operations can run over empty sequences for free.
func (b *Budget) Charge(op contracts.Op, units uint64) error {
	if units == 0 {
		return nil
	}
	cost := b.model.CostOf(op)
	total := cost * units
	if cost != 0 && total/cost != units {
		// Multiplication overflow can only mean the budget is blown.
		return &ExhaustionError{Op: op, Limit: b.limit}
	}
	if total > b.remaining {
		b.remaining = 0
		return &ExhaustionError{Op: op, Limit: b.limit}
	}
	b.remaining -= total
	return nil
}

// Remaining implements contracts.Meter.
func (b *Budget) Remaining() uint64 { return b.remaining }

// Spent implements contracts.Meter.
func (b *Budget) Spent() uint64 { return b.limit - b.remaining }

// IsExhausted checks if an error is the fatal budget-exhaustion condition.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrBudgetExhausted)
}
