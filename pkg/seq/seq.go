// Package seq implements the deterministic collection primitives over
// ordered sequences.
//
// Every operation is pure: inputs are never mutated and every result is a
// freshly allocated slice, so callers can treat sequences as immutable
// values. Traversal is strictly left to right, one callback invocation per
// element, and the short-circuiting operations (Find, All, Any) stop at the
// first deciding element. That stop is a metering contract, not an
// optimization.
package seq

import (
	"github.com/covenantnet/prelude/pkg/errors"
	"github.com/covenantnet/prelude/pkg/option"
	"github.com/covenantnet/prelude/pkg/result"
)

// Reduce performs a left fold: f is applied in sequence order, once per
// element, threading the accumulator through. Reduce of an empty sequence
// is the initial accumulator.
func Reduce[T, A any](s []T, initial A, f func(A, T) A) A {
	acc := initial
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Find returns the first element, in order, for which the predicate holds.
// The predicate is not evaluated beyond the first match.
func Find[T any](s []T, predicate func(T) bool) option.Option[T] {
	for _, v := range s {
		if predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// All reports whether the predicate holds for every element, stopping at
// the first counterexample. All of an empty sequence is true.
func All[T any](s []T, predicate func(T) bool) bool {
	for _, v := range s {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Any reports whether the predicate holds for at least one element,
// stopping at the first witness. Any of an empty sequence is false.
func Any[T any](s []T, predicate func(T) bool) bool {
	for _, v := range s {
		if predicate(v) {
			return true
		}
	}
	return false
}

// Reverse returns a new sequence with the elements in opposite order.
// Reverse is its own inverse: Reverse(Reverse(s)) equals s.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Repeat returns a sequence of length max(count, 0) with value at every
// position. A negative count yields an empty sequence; this is explicit
// edge-case policy, not an error.
func Repeat[T any](value T, count int) []T {
	if count < 0 {
		count = 0
	}
	out := make([]T, count)
	for i := range out {
		out[i] = value
	}
	return out
}

// Map transforms every element in order into a fresh sequence.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter returns the elements for which the predicate holds, preserving
// order, as a fresh sequence.
func Filter[T any](s []T, predicate func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}

// Concat returns a fresh sequence holding the elements of a followed by
// the elements of b.
func Concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// At returns the element at the given index, or an out-of-range failure
// when the index is negative or beyond the last element.
func At[T any](s []T, index int) result.Result[T, *errors.Kind] {
	if index < 0 || index >= len(s) {
		return result.Err[T](errors.OutOfRange(index, len(s)))
	}
	return result.Ok[T, *errors.Kind](s[index])
}

// Head returns the first element, or None for an empty sequence.
func Head[T any](s []T) option.Option[T] {
	if len(s) == 0 {
		return option.None[T]()
	}
	return option.Some(s[0])
}

// Tail returns a fresh sequence of everything after the first element, or
// None for an empty sequence.
func Tail[T any](s []T) option.Option[[]T] {
	if len(s) == 0 {
		return option.None[[]T]()
	}
	out := make([]T, len(s)-1)
	copy(out, s[1:])
	return option.Some(out)
}

// Length returns the number of elements.
func Length[T any](s []T) int {
	return len(s)
}

// Equal reports structural, order-sensitive equality.
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
