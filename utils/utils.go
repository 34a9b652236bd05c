// Package utils implements various helper functions shared by the packages of the module.
package utils

import (
	"math"
)

// Sign returns -1, 0 or 1 depending on the sign of x.
// NaN is mapped to 0.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// AlmostEqual returns true if |a-b| <= tol, or if the relative
// error |a-b|/max(|a|, |b|) is at most tol.
func AlmostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= tol {
		return true
	}
	return diff <= tol*math.Max(math.Abs(a), math.Abs(b))
}

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// PowUint returns x^e for an unsigned integer exponent by repeated squaring.
// PowUint(x, 0) = 1 for every x, including 0.
func PowUint(x float64, e uint) (y float64) {
	y = 1
	for e > 0 {
		if e&1 == 1 {
			y *= x
		}
		x *= x
		e >>= 1
	}
	return
}
