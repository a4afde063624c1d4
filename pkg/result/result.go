// Package result implements the fail-fast validation combinator engine.
//
// A Result is a tagged union holding exactly one of a success payload (Ok)
// or an error payload (Err). Chains built from CheckCondition, AndThen and
// Map evaluate strictly left to right: the first failing step determines
// the terminal error and every later step is skipped without being invoked.
// The short-circuit is contractual, not an optimization: metering charges
// for work performed, and a continuation may rely on preconditions that an
// earlier failed check was supposed to establish.
package result

// Unit is the empty success payload of a bare condition check.
type Unit struct{}

// Result holds exactly one of Ok(T) or Err(E). The zero value is
// Err(zero E); construct values through Ok and Err.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok wraps a success payload.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: true, value: value}
}

// Err wraps an error payload. The payload is relayed verbatim by every
// combinator that touches the result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the result holds a success payload.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether the result holds an error payload.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// UnwrapOr returns the success payload, or def when the result is Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// Get returns the success payload and whether the result is Ok.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// GetErr returns the error payload and whether the result is Err.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

// CheckCondition returns Ok(Unit) iff condition holds, else Err carrying
// the given payload. O(1), total, and the entry point of most chains.
func CheckCondition[E any](condition bool, err E) Result[Unit, E] {
	if condition {
		return Ok[Unit, E](Unit{})
	}
	return Err[Unit, E](err)
}

// AndThen sequences a dependent check. When r is Err the continuation is
// never invoked and the error payload passes through unchanged; when r is
// Ok the continuation receives the success payload and its result becomes
// the chain's result.
func AndThen[T, U, E any](r Result[T, E], next func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return next(r.value)
}

// Map transforms the success payload and leaves Err untouched. The
// transform is never invoked on a failed result.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr transforms the error payload and leaves Ok untouched. This is the
// only sanctioned way to change an error's type; the transform must not be
// used to discard or weaken a verdict.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}
