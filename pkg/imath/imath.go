// Package imath implements the integer math utilities with explicit
// overflow policy.
//
// The domain is int64. Operations that can leave the representable range
// fail with an arithmetic-overflow error rather than saturating or
// wrapping: a validator must never observe a silently wrong number.
package imath

import (
	"math"

	"github.com/covenantnet/prelude/pkg/errors"
	"github.com/covenantnet/prelude/pkg/option"
	"github.com/covenantnet/prelude/pkg/result"
)

// Abs returns the absolute value of x. Abs(MinInt64) is not representable
// and fails with an arithmetic-overflow error; this is the explicit fail
// policy, not saturation.
func Abs(x int64) result.Result[int64, *errors.Kind] {
	if x == math.MinInt64 {
		return result.Err[int64](errors.Overflow("abs of minimum representable value"))
	}
	if x < 0 {
		return result.Ok[int64, *errors.Kind](-x)
	}
	return result.Ok[int64, *errors.Kind](x)
}

// Pow returns base raised to exponent using exponentiation by squaring.
// A negative exponent fails with a validation error (integer exponentiation
// is undefined below zero), and any intermediate overflow fails with an
// arithmetic-overflow error rather than wrapping.
func Pow(base, exponent int64) result.Result[int64, *errors.Kind] {
	if exponent < 0 {
		return result.Err[int64](errors.Validation("negative exponent"))
	}

	acc := int64(1)
	factor := base
	exp := exponent
	for exp > 0 {
		if exp&1 == 1 {
			product, ok := checkedMul(acc, factor)
			if !ok {
				return result.Err[int64](errors.Overflow("pow exceeds representable range"))
			}
			acc = product
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		square, ok := checkedMul(factor, factor)
		if !ok {
			return result.Err[int64](errors.Overflow("pow exceeds representable range"))
		}
		factor = square
	}
	return result.Ok[int64, *errors.Kind](acc)
}

// Sqrt returns Some(root) only when x is a non-negative perfect square.
// Negative input yields None, never a failure.
func Sqrt(x int64) option.Option[int64] {
	if x < 0 {
		return option.None[int64]()
	}
	root := isqrt(uint64(x))
	if root*root != uint64(x) {
		return option.None[int64]()
	}
	return option.Some(int64(root))
}

// Min returns the smaller of a and b.
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Clamp bounds x into [low, high]. Callers must pass low <= high.
func Clamp(x, low, high int64) int64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// Gcd returns the greatest common divisor of |a| and |b|; Gcd(0, 0) is 0.
// The computation runs on magnitudes, so the only unrepresentable outcome
// is a gcd of 2^63 (both inputs MinInt64 or one MinInt64 and the other 0),
// which fails with an arithmetic-overflow error.
func Gcd(a, b int64) result.Result[int64, *errors.Kind] {
	x := magnitude(a)
	y := magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}
	if x > math.MaxInt64 {
		return result.Err[int64](errors.Overflow("gcd of minimum representable value"))
	}
	return result.Ok[int64, *errors.Kind](int64(x))
}

func magnitude(x int64) uint64 {
	if x < 0 {
		// Two's complement negation in uint64 space handles MinInt64.
		return -uint64(x)
	}
	return uint64(x)
}

// checkedMul multiplies and reports whether the product stayed in range.
func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		// MinInt64 times anything but 1 leaves the range.
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

// isqrt returns the integer square root of n.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := uint64(math.Sqrt(float64(n)))
	// Correct the float estimate; it can be off by one in either direction.
	for x > 0 && x*x > n {
		x--
	}
	for x < math.MaxUint32 && (x+1)*(x+1) <= n {
		x++
	}
	return x
}
