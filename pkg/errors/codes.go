package errors

// Error codes for categorizing validation failures.
// Codes are part of the deterministic surface: a conforming evaluator must
// produce the same code for the same failing input on every implementation.
const (
	// CodeValidationFailure indicates a named precondition failed.
	CodeValidationFailure = "VALIDATION_FAILURE"

	// CodeTypeMismatch indicates the evaluator dispatched a value of the
	// wrong shape. Produced by the evaluator, but representable here so it
	// propagates through combinator chains unchanged.
	CodeTypeMismatch = "TYPE_MISMATCH"

	// CodeArithmeticOverflow indicates a math operation exceeded the
	// representable integer range.
	CodeArithmeticOverflow = "ARITHMETIC_OVERFLOW"

	// CodeOutOfRangeIndex indicates index-based access beyond bounds.
	CodeOutOfRangeIndex = "OUT_OF_RANGE_INDEX"

	// CodeUnsupportedEncoding indicates a string operation on malformed text.
	CodeUnsupportedEncoding = "UNSUPPORTED_ENCODING"

	// CodeBudgetExhausted indicates the resource budget was exhausted.
	// This class is fatal: it aborts the whole execution and is reported by
	// the evaluator, never carried inside an Err verdict.
	CodeBudgetExhausted = "BUDGET_EXHAUSTED"
)

// Category represents a high-level error category.
type Category string

const (
	// CategoryVerdict groups codes that surface as a normal Err verdict,
	// rejecting the transaction without aborting the evaluator.
	CategoryVerdict Category = "VERDICT"

	// CategoryFatal groups codes that abort the entire execution with no
	// partial effects. Fatal conditions are never recoverable by a chain.
	CategoryFatal Category = "FATAL"
)

// GetCategory returns the category for an error code.
// Unknown codes are treated as verdict errors so an evaluator bug never
// silently escalates into an abort.
func GetCategory(code string) Category {
	switch code {
	case CodeBudgetExhausted:
		return CategoryFatal
	default:
		return CategoryVerdict
	}
}

// IsFatal reports whether the code aborts the whole execution.
func IsFatal(code string) bool {
	return GetCategory(code) == CategoryFatal
}
