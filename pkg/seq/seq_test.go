package seq

import (
	"testing"

	"github.com/covenantnet/prelude/pkg/errors"
)

func TestReduce(t *testing.T) {
	add := func(acc, v int) int { return acc + v }

	tests := []struct {
		name     string
		input    []int
		initial  int
		expected int
	}{
		{"sum of 1..5", []int{1, 2, 3, 4, 5}, 0, 15},
		{"empty sequence yields initial", []int{}, 0, 0},
		{"nonzero initial", []int{1, 2}, 10, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(tt.input, tt.initial, add); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestReduceOrder(t *testing.T) {
	// Left fold over a non-commutative operation proves sequence order.
	got := Reduce([]string{"a", "b", "c"}, "", func(acc, v string) string { return acc + v })
	if got != "abc" {
		t.Errorf("expected left-to-right fold, got %q", got)
	}
}

func TestFind(t *testing.T) {
	r := Find([]int{1, 2, 3, 4}, func(x int) bool { return x > 2 })
	if v, ok := r.Get(); !ok || v != 3 {
		t.Errorf("expected Some(3), got %v (present=%v)", v, ok)
	}

	if Find([]int{1, 2}, func(x int) bool { return x > 5 }).IsSome() {
		t.Error("expected None when no element matches")
	}
}

func TestFindShortCircuits(t *testing.T) {
	calls := 0
	Find([]int{1, 2, 3, 4}, func(x int) bool {
		calls++
		return x >= 2
	})
	if calls != 2 {
		t.Errorf("predicate evaluated %d times, expected 2", calls)
	}
}

func TestAllAny(t *testing.T) {
	positive := func(x int) bool { return x > 0 }

	if !All([]int{}, positive) {
		t.Error("All of empty sequence must be true")
	}
	if Any([]int{}, positive) {
		t.Error("Any of empty sequence must be false")
	}
	if !All([]int{1, 2, 3}, positive) {
		t.Error("expected All true")
	}
	if All([]int{1, -2, 3}, positive) {
		t.Error("expected All false")
	}
	if !Any([]int{-1, -2, 3}, positive) {
		t.Error("expected Any true")
	}
}

func TestAllAnyShortCircuit(t *testing.T) {
	calls := 0
	All([]int{-1, 2, 3}, func(x int) bool {
		calls++
		return x > 0
	})
	if calls != 1 {
		t.Errorf("All evaluated %d predicates, expected 1", calls)
	}

	calls = 0
	Any([]int{1, -2, -3}, func(x int) bool {
		calls++
		return x > 0
	})
	if calls != 1 {
		t.Errorf("Any evaluated %d predicates, expected 1", calls)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"empty", []int{}},
		{"single", []int{1}},
		{"even length", []int{1, 2, 3, 4}},
		{"odd length", []int{5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reverse(Reverse(tt.input)); !Equal(got, tt.input) {
				t.Errorf("reverse involution broken: %v", got)
			}
		})
	}

	if got := Reverse([]int{1, 2, 3}); !Equal(got, []int{3, 2, 1}) {
		t.Errorf("expected [3 2 1], got %v", got)
	}
}

func TestReverseDoesNotMutate(t *testing.T) {
	in := []int{1, 2, 3}
	Reverse(in)
	if !Equal(in, []int{1, 2, 3}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestRepeat(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected []int
	}{
		{"three", 3, []int{42, 42, 42}},
		{"zero", 0, []int{}},
		{"negative yields empty", -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Repeat(42, tt.count); !Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMapFilterConcat(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(x int) int { return x * 2 })
	if !Equal(doubled, []int{2, 4, 6}) {
		t.Errorf("unexpected map result: %v", doubled)
	}

	evens := Filter([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 })
	if !Equal(evens, []int{2, 4}) {
		t.Errorf("unexpected filter result: %v", evens)
	}

	joined := Concat([]int{1}, []int{2, 3})
	if !Equal(joined, []int{1, 2, 3}) {
		t.Errorf("unexpected concat result: %v", joined)
	}
}

func TestConcatFresh(t *testing.T) {
	a := []int{1, 2}
	b := []int{3}
	out := Concat(a, b)
	out[0] = 99
	if a[0] != 1 {
		t.Error("concat aliased its input")
	}
}

func TestAt(t *testing.T) {
	s := []string{"a", "b", "c"}

	if v, ok := At(s, 1).Get(); !ok || v != "b" {
		t.Errorf("expected Ok(b), got %q", v)
	}

	for _, idx := range []int{-1, 3} {
		r := At(s, idx)
		err, isErr := r.GetErr()
		if !isErr {
			t.Fatalf("expected Err for index %d", idx)
		}
		if !errors.IsOutOfRangeIndex(err) {
			t.Errorf("expected out-of-range kind, got %v", err)
		}
	}
}

func TestHeadTail(t *testing.T) {
	if v, ok := Head([]int{7, 8}).Get(); !ok || v != 7 {
		t.Errorf("expected Some(7), got %v", v)
	}
	if Head([]int{}).IsSome() {
		t.Error("expected None head of empty sequence")
	}

	rest, ok := Tail([]int{7, 8, 9}).Get()
	if !ok || !Equal(rest, []int{8, 9}) {
		t.Errorf("expected [8 9], got %v", rest)
	}
	if Tail([]int{}).IsSome() {
		t.Error("expected None tail of empty sequence")
	}
}

func TestLengthEqual(t *testing.T) {
	if Length([]int{1, 2, 3}) != 3 {
		t.Error("unexpected length")
	}
	if !Equal([]int{1, 2}, []int{1, 2}) {
		t.Error("expected equal")
	}
	if Equal([]int{1, 2}, []int{2, 1}) {
		t.Error("equality must be order-sensitive")
	}
	if Equal([]int{1}, []int{1, 1}) {
		t.Error("length mismatch must not be equal")
	}
}
