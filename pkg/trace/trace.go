// Package trace implements the debug sink: an injectable observation
// channel that is a no-op in production evaluation and active only in
// simulation or testing.
//
// Sinks never influence control flow or the Result chain. The sink is
// passed in explicitly rather than held in ambient global state, so
// enabling tracing cannot perturb the determinism of the validation core.
package trace

import "github.com/covenantnet/prelude/pkg/contracts"

// NopSink discards every event. This is the production default.
type NopSink struct{}

// Log implements contracts.Sink by doing nothing.
func (NopSink) Log(contracts.Event) {}

// Nop returns the discarding sink.
func Nop() contracts.Sink {
	return NopSink{}
}

// Recorder collects events in memory for simulation and tests. It is not
// safe for concurrent use; execution is single-threaded per invocation by
// contract.
type Recorder struct {
	events []contracts.Event
}

// NewRecorder returns an empty recording sink.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Log implements contracts.Sink by appending the event.
func (r *Recorder) Log(event contracts.Event) {
	r.events = append(r.events, event)
}

// Events returns the recorded events in emission order as a fresh slice.
func (r *Recorder) Events() []contracts.Event {
	out := make([]contracts.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Messages returns just the recorded messages in emission order.
func (r *Recorder) Messages() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Message
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.events = nil
}
