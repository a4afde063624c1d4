package bytestring

import (
	"testing"

	"github.com/covenantnet/prelude/pkg/errors"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		ok       bool
	}{
		{"canonical", "deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, true},
		{"uppercase accepted", "DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}, true},
		{"empty", "", []byte{}, true},
		{"odd length", "abc", nil, false},
		{"non-hex characters", "zz", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromHex(tt.input)
			if tt.ok {
				v, isOk := r.Get()
				if !isOk || !Equal(v, tt.expected) {
					t.Errorf("FromHex(%q) = %x, expected %x", tt.input, v, tt.expected)
				}
				return
			}
			err, isErr := r.GetErr()
			if !isErr {
				t.Fatalf("expected failure for %q", tt.input)
			}
			if !errors.IsUnsupportedEncoding(err) {
				t.Errorf("expected unsupported-encoding kind, got %v", err)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	original := "00ff10a5"
	decoded, _ := FromHex(original).Get()
	if got := ToHex(decoded); got != original {
		t.Errorf("round trip broke: %q", got)
	}
}

func TestEqual(t *testing.T) {
	if !Equal([]byte{1, 2}, []byte{1, 2}) {
		t.Error("expected equal")
	}
	if Equal([]byte{1, 2}, []byte{2, 1}) {
		t.Error("equality must be bytewise")
	}
	if !Equal(nil, []byte{}) {
		t.Error("nil and empty compare equal bytewise")
	}
}

func TestConcatFresh(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3}
	out := Concat(a, b)

	if !Equal(out, []byte{1, 2, 3}) {
		t.Errorf("unexpected concat: %v", out)
	}
	out[0] = 99
	if a[0] != 1 {
		t.Error("concat aliased its input")
	}
}

func TestSlice(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4}

	v, ok := Slice(b, 1, 4).Get()
	if !ok || !Equal(v, []byte{1, 2, 3}) {
		t.Errorf("unexpected slice: %v", v)
	}

	// The result is a fresh copy, not a view.
	v[0] = 99
	if b[1] != 1 {
		t.Error("slice aliased its input")
	}

	for _, bounds := range [][2]int{{-1, 2}, {0, 6}, {4, 2}} {
		r := Slice(b, bounds[0], bounds[1])
		err, isErr := r.GetErr()
		if !isErr {
			t.Fatalf("expected Err for bounds %v", bounds)
		}
		if !errors.IsOutOfRangeIndex(err) {
			t.Errorf("expected out-of-range kind, got %v", err)
		}
	}
}

func TestAt(t *testing.T) {
	b := []byte{10, 20, 30}

	if v, ok := At(b, 2).Get(); !ok || v != 30 {
		t.Errorf("expected 30, got %d", v)
	}
	if _, isErr := At(b, 3).GetErr(); !isErr {
		t.Error("expected failure past the end")
	}
	if _, isErr := At(b, -1).GetErr(); !isErr {
		t.Error("expected failure for negative index")
	}
}

func TestLengthHasPrefix(t *testing.T) {
	if Length([]byte{1, 2, 3}) != 3 {
		t.Error("unexpected length")
	}
	if !HasPrefix([]byte{1, 2, 3}, []byte{1, 2}) {
		t.Error("expected prefix match")
	}
	if HasPrefix([]byte{1, 2}, []byte{2}) {
		t.Error("unexpected prefix match")
	}
}
