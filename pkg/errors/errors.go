// Package errors defines the error payloads carried by failed validation
// chains.
//
// A Kind is pure data: once constructed it is never altered, and combinator
// functions relay it verbatim to the terminal Result. Kinds deliberately do
// not capture stack traces or timestamps; the same failing input must
// produce a bit-identical payload on every evaluator implementation.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for quick checks with errors.Is.
var (
	// ErrValidationFailure is the base of all named-precondition failures.
	ErrValidationFailure = errors.New("validation failure")

	// ErrTypeMismatch is the base of evaluator-level type errors.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrArithmeticOverflow is the base of overflow failures.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrOutOfRangeIndex is the base of index-out-of-bounds failures.
	ErrOutOfRangeIndex = errors.New("index out of range")

	// ErrUnsupportedEncoding is the base of malformed-text failures.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// Kind is the error payload carried by an Err verdict: a stable code, a
// human-readable message, and an optional detail string for diagnostics.
// Kind implements error so it composes with the standard errors package,
// but it carries no mutable or environment-dependent state.
type Kind struct {
	code    string
	message string
	detail  string
}

// Error implements the error interface.
func (k *Kind) Error() string {
	if k == nil {
		return ""
	}
	if k.detail != "" {
		return fmt.Sprintf("%s: %s: %s", k.code, k.message, k.detail)
	}
	return fmt.Sprintf("%s: %s", k.code, k.message)
}

// Code returns the stable error code.
func (k *Kind) Code() string { return k.code }

// Message returns the human-readable error message.
func (k *Kind) Message() string { return k.message }

// Detail returns the optional diagnostic detail.
func (k *Kind) Detail() string { return k.detail }

// Category returns the coarse category for this kind.
func (k *Kind) Category() Category { return GetCategory(k.code) }

// Unwrap maps the code back to its sentinel so errors.Is works across the
// library boundary.
func (k *Kind) Unwrap() error {
	switch k.code {
	case CodeValidationFailure:
		return ErrValidationFailure
	case CodeTypeMismatch:
		return ErrTypeMismatch
	case CodeArithmeticOverflow:
		return ErrArithmeticOverflow
	case CodeOutOfRangeIndex:
		return ErrOutOfRangeIndex
	case CodeUnsupportedEncoding:
		return ErrUnsupportedEncoding
	default:
		return nil
	}
}

// WithDetail returns a copy of the kind with the detail attached. The
// receiver is left untouched; payloads already inside an Err are never
// modified in place.
func (k *Kind) WithDetail(detail string) *Kind {
	return &Kind{code: k.code, message: k.message, detail: detail}
}

// New creates a kind with an explicit code. Prefer the typed constructors
// below for the standard taxonomy.
func New(code, message string) *Kind {
	return &Kind{code: code, message: message}
}

// Validation creates a named-precondition failure.
func Validation(message string) *Kind {
	return &Kind{code: CodeValidationFailure, message: message}
}

// TypeMismatch creates an evaluator-level type error payload.
func TypeMismatch(message string) *Kind {
	return &Kind{code: CodeTypeMismatch, message: message}
}

// Overflow creates an arithmetic overflow failure.
func Overflow(message string) *Kind {
	return &Kind{code: CodeArithmeticOverflow, message: message}
}

// OutOfRange creates an index-out-of-bounds failure for the given index and
// length.
func OutOfRange(index, length int) *Kind {
	return &Kind{
		code:    CodeOutOfRangeIndex,
		message: fmt.Sprintf("index %d out of range for length %d", index, length),
	}
}

// Encoding creates a malformed-text failure.
func Encoding(message string) *Kind {
	return &Kind{code: CodeUnsupportedEncoding, message: message}
}
