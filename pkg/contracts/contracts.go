package contracts

// Op identifies a metered primitive operation. The full enumeration and
// the built-in cost model live with the budget meter implementation.
type Op string

// Meter accounts for the resources consumed by primitive calls.
// Implementations charge a bounded, predictable amount per operation and
// abort the whole execution once the budget is exhausted.
type Meter interface {
	// Charge records one invocation of the given primitive, multiplied by
	// units for per-element operations. A non-nil error means the budget
	// is exhausted; the condition is fatal and non-recoverable, distinct
	// from a normal Err verdict.
	Charge(op Op, units uint64) error

	// Remaining returns the budget units left.
	Remaining() uint64

	// Spent returns the budget units consumed so far.
	Spent() uint64
}

// Event is a single debug trace emission. Events are observational only:
// they must never influence control flow or the terminal verdict.
type Event struct {
	// InvocationID ties the event to a single validator invocation.
	InvocationID string

	// Label names the traced site.
	Label string

	// Message is the traced payload, already rendered to text.
	Message string
}

// Sink receives debug trace events. The production default is a no-op;
// simulation and testing modes install a recording or logging sink.
type Sink interface {
	// Log emits one trace event. Implementations must not fail and must
	// not feed anything back into the validation chain.
	Log(event Event)
}
