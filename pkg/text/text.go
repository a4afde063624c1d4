// Package text implements the string utilities over UTF-8 encoded text.
//
// All operations work on code points, not bytes, and assume validly
// encoded input; decoding is the evaluator's responsibility. CheckEncoding
// is provided for callers that need to assert validity explicitly.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/covenantnet/prelude/pkg/errors"
	"github.com/covenantnet/prelude/pkg/result"
)

// Contains reports whether substring occurs as a contiguous code-point run
// in text. The empty substring is contained in every text.
func Contains(text, substring string) bool {
	return strings.Contains(text, substring)
}

// Split returns the ordered fragments between non-overlapping occurrences
// of the delimiter, scanned left to right.
//
// An empty delimiter splits the text into its individual code points. This
// resolves the underspecified edge case in favor of the conventional
// per-code-point split rather than an error.
func Split(text, delimiter string) []string {
	if delimiter == "" {
		runes := []rune(text)
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out
	}
	return strings.Split(text, delimiter)
}

// ToLower maps every code point to its lowercase form under the
// language-neutral Unicode case mapping. Total: unmappable code points
// pass through unchanged.
func ToLower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// ToUpper maps every code point to its uppercase form under the
// language-neutral Unicode case mapping. Total: unmappable code points
// pass through unchanged.
func ToUpper(text string) string {
	return cases.Upper(language.Und).String(text)
}

// Length returns the number of code points, not the byte length.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// Concat returns the concatenation of a and b.
func Concat(a, b string) string {
	return a + b
}

// Join concatenates the fragments with the separator between them.
// Join(Split(t, sep), sep) reproduces t for any valid sep.
func Join(fragments []string, separator string) string {
	return strings.Join(fragments, separator)
}

// StartsWith reports whether text begins with prefix.
func StartsWith(text, prefix string) bool {
	return strings.HasPrefix(text, prefix)
}

// EndsWith reports whether text ends with suffix.
func EndsWith(text, suffix string) bool {
	return strings.HasSuffix(text, suffix)
}

// Slice returns the code points in [from, to), addressed by code-point
// index. Bounds outside the text fail with an out-of-range index error;
// from > to fails the same way.
func Slice(text string, from, to int) result.Result[string, *errors.Kind] {
	runes := []rune(text)
	if from < 0 || from > len(runes) {
		return result.Err[string](errors.OutOfRange(from, len(runes)))
	}
	if to < from || to > len(runes) {
		return result.Err[string](errors.OutOfRange(to, len(runes)))
	}
	return result.Ok[string, *errors.Kind](string(runes[from:to]))
}

// CheckEncoding returns Ok(Unit) iff the text is valid UTF-8, else an
// unsupported-encoding failure. Use this to lift the module's validity
// assumption into an explicit check.
func CheckEncoding(text string) result.Result[result.Unit, *errors.Kind] {
	if !utf8.ValidString(text) {
		return result.Err[result.Unit](errors.Encoding("text is not valid UTF-8"))
	}
	return result.Ok[result.Unit, *errors.Kind](result.Unit{})
}
