// Package option implements the possibly-absent value used by search and
// parse operations. An Option is pure data: Some wraps a present value,
// None marks absence, and neither can fail.
package option

import "github.com/covenantnet/prelude/pkg/result"

// Option holds either a present value (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	some  bool
	value T
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{some: true, value: value}
}

// None marks an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// UnwrapOr returns the wrapped value when present, else def. Never fails.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Map transforms the wrapped value when present; None passes through and
// the transform is never invoked for it.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// AndThen sequences a dependent optional computation. None short-circuits
// without invoking the continuation.
func AndThen[T, U any](o Option[T], next func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return next(o.value)
}

// ToResult lifts an option into a result: Some becomes Ok, None becomes
// Err carrying the given payload.
func ToResult[T, E any](o Option[T], err E) result.Result[T, E] {
	if o.some {
		return result.Ok[T, E](o.value)
	}
	return result.Err[T, E](err)
}
