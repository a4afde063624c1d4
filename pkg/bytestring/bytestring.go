// Package bytestring implements the opaque immutable byte buffers
// exchanged with the cryptographic boundary.
//
// Buffers are plain byte slices treated as values: every operation returns
// a fresh slice and never aliases or mutates its inputs. Equality is
// bytewise. Literals enter the system as canonical hex.
package bytestring

import (
	"bytes"
	"encoding/hex"

	"github.com/covenantnet/prelude/pkg/errors"
	"github.com/covenantnet/prelude/pkg/result"
)

// FromHex decodes a canonical hex literal into a byte buffer. Malformed
// hex fails with an unsupported-encoding error.
func FromHex(s string) result.Result[[]byte, *errors.Kind] {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return result.Err[[]byte](errors.Encoding("invalid hex literal"))
	}
	return result.Ok[[]byte, *errors.Kind](decoded)
}

// ToHex encodes a buffer as lowercase hex.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// Equal reports bytewise equality.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Concat returns a fresh buffer holding a followed by b.
func Concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Slice returns a fresh copy of the bytes in [from, to). Bounds outside
// the buffer fail with an out-of-range index error; from > to fails the
// same way.
func Slice(b []byte, from, to int) result.Result[[]byte, *errors.Kind] {
	if from < 0 || from > len(b) {
		return result.Err[[]byte](errors.OutOfRange(from, len(b)))
	}
	if to < from || to > len(b) {
		return result.Err[[]byte](errors.OutOfRange(to, len(b)))
	}
	out := make([]byte, to-from)
	copy(out, b[from:to])
	return result.Ok[[]byte, *errors.Kind](out)
}

// At returns the byte at the given index, or an out-of-range failure.
func At(b []byte, index int) result.Result[byte, *errors.Kind] {
	if index < 0 || index >= len(b) {
		return result.Err[byte](errors.OutOfRange(index, len(b)))
	}
	return result.Ok[byte, *errors.Kind](b[index])
}

// Length returns the number of bytes.
func Length(b []byte) int {
	return len(b)
}

// HasPrefix reports whether b begins with prefix.
func HasPrefix(b, prefix []byte) bool {
	return bytes.HasPrefix(b, prefix)
}
