// Package runtime ties the prelude to its evaluator: a Session owns the
// meter and the trace sink for one validator invocation and runs the
// validator to a terminal verdict.
//
// A session is single-threaded and synchronous; validator invocations are
// independent and share no mutable state. The only termination paths are
// a normal verdict (Ok or Err) and fatal budget exhaustion, which Run
// reports as an error distinct from any verdict.
package runtime

import (
	"github.com/google/uuid"

	"github.com/covenantnet/prelude/pkg/config"
	"github.com/covenantnet/prelude/pkg/contracts"
	"github.com/covenantnet/prelude/pkg/errors"
	"github.com/covenantnet/prelude/pkg/meter"
	"github.com/covenantnet/prelude/pkg/result"
	"github.com/covenantnet/prelude/pkg/trace"
)

// Verdict is the terminal value of a validation chain: Ok accepts the
// action, Err rejects it with the first failing condition's payload.
type Verdict = result.Result[result.Unit, *errors.Kind]

// Validator is a pure function whose verdict gates acceptance of an
// on-chain action. The session gives it access to metering and tracing;
// a non-nil error is fatal (budget exhaustion), never a rejection.
type Validator func(s *Session) (Verdict, error)

// Session is the per-invocation execution context.
type Session struct {
	id    uuid.UUID
	meter contracts.Meter
	sink  contracts.Sink
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithMeter replaces the budget meter built from the configuration.
func WithMeter(m contracts.Meter) SessionOption {
	return func(s *Session) {
		s.meter = m
	}
}

// WithSink installs a trace sink. The sink only receives events when the
// configuration enables tracing; with trace_enabled off the session keeps
// the discarding sink, so a wired sink in production costs nothing.
func WithSink(sink contracts.Sink) SessionOption {
	return func(s *Session) {
		s.sink = sink
	}
}

// NewSession creates an execution context for one validator invocation.
// A nil config uses defaults. The invocation id exists only for trace
// records; it never feeds into metering or verdicts.
func NewSession(cfg *config.Config, opts ...SessionOption) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.ApplyDefaults()

	s := &Session{
		id:    uuid.New(),
		meter: meter.NewBudget(cfg.BudgetUnits, cfg.CostModel),
		sink:  trace.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !cfg.TraceEnabled {
		s.sink = trace.Nop()
	}
	return s
}

// ID returns the invocation identifier used in trace records.
func (s *Session) ID() string {
	return s.id.String()
}

// Meter returns the session's meter, for evaluators that inspect spend.
func (s *Session) Meter() contracts.Meter {
	return s.meter
}

// Charge draws down the budget for one primitive call; units multiplies
// the cost for per-element operations. A non-nil error is the fatal
// exhaustion condition and must abort the whole execution.
func (s *Session) Charge(op contracts.Op, units uint64) error {
	return s.meter.Charge(op, units)
}

// Trace emits a debug event. Tracing is observational only: it neither
// charges the meter nor influences the verdict, and the production sink
// discards everything. Evaluators that price tracing charge OpTraceLog at
// the call site.
func (s *Session) Trace(label, message string) {
	s.sink.Log(contracts.Event{
		InvocationID: s.id.String(),
		Label:        label,
		Message:      message,
	})
}

// Run executes the validator to its terminal verdict. The invocation
// itself is charged before the validator body runs; exhaustion anywhere
// surfaces as a non-nil error with no verdict, and the caller must treat
// it as aborting the entire enclosing execution.
func (s *Session) Run(v Validator) (Verdict, error) {
	if err := s.Charge(meter.OpInvoke, 1); err != nil {
		return Verdict{}, err
	}
	s.Trace("session", "invocation started")

	verdict, err := v(s)
	if err != nil {
		s.Trace("session", "invocation aborted")
		return Verdict{}, err
	}

	if verdict.IsOk() {
		s.Trace("session", "verdict: accept")
	} else {
		s.Trace("session", "verdict: reject")
	}
	return verdict, nil
}
