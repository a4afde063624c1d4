package errors

import "errors"

// IsValidationFailure checks if an error is a named-precondition failure.
func IsValidationFailure(err error) bool {
	return errors.Is(err, ErrValidationFailure)
}

// IsTypeMismatch checks if an error is an evaluator-level type error.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsArithmeticOverflow checks if an error is an overflow failure.
func IsArithmeticOverflow(err error) bool {
	return errors.Is(err, ErrArithmeticOverflow)
}

// IsOutOfRangeIndex checks if an error is an index-out-of-bounds failure.
func IsOutOfRangeIndex(err error) bool {
	return errors.Is(err, ErrOutOfRangeIndex)
}

// IsUnsupportedEncoding checks if an error is a malformed-text failure.
func IsUnsupportedEncoding(err error) bool {
	return errors.Is(err, ErrUnsupportedEncoding)
}
