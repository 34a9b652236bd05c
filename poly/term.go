package poly

import (
	"fmt"
	"math"

	"github.com/tuneinsight/realpoly/utils"
)

// MaxExponent is the largest exponent of a term: beyond 2^53 consecutive
// integers are no longer representable as float64. Constructors and
// operations producing a larger exponent panic with an error wrapping
// ErrInvalidExponent.
const MaxExponent = 1 << 53

// Term is the monomial Coeff * x^Exponent.
// Term is a value type: its methods return new Terms.
type Term struct {
	Coeff    float64
	Exponent uint
}

// IsZero returns true if the coefficient of the term is zero.
func (t Term) IsZero() bool {
	return t.Coeff == 0
}

// Neg returns -t.
func (t Term) Neg() Term {
	return Term{Coeff: -t.Coeff, Exponent: t.Exponent}
}

// Mul returns t * other.
// It panics if the resulting exponent exceeds MaxExponent.
func (t Term) Mul(other Term) Term {
	return Term{Coeff: t.Coeff * other.Coeff, Exponent: addExponents(t.Exponent, other.Exponent)}
}

// ValueAt returns Coeff * x^Exponent, with 0^0 = 1.
func (t Term) ValueAt(x float64) float64 {
	return t.Coeff * utils.PowUint(x, t.Exponent)
}

// Derivative returns d/dx t. The derivative of a constant is the zero term.
func (t Term) Derivative() Term {
	if t.Exponent == 0 {
		return Term{}
	}
	return Term{Coeff: t.Coeff * float64(t.Exponent), Exponent: t.Exponent - 1}
}

// Integral returns the primitive of t with a zero constant.
// It panics if the resulting exponent exceeds MaxExponent.
func (t Term) Integral() Term {
	e := addExponents(t.Exponent, 1)
	return Term{Coeff: t.Coeff / float64(e), Exponent: e}
}

// addExponents returns a + b, panicking if either operand or the sum
// exceeds MaxExponent. The operands are checked first so that the sum
// cannot wrap around.
func addExponents(a, b uint) uint {
	checkExponent(a)
	checkExponent(b)
	if a > MaxExponent-b {
		panic(fmt.Errorf("%w: %d + %d exceeds 2^53", ErrInvalidExponent, a, b))
	}
	return a + b
}

// checkExponent panics if e exceeds MaxExponent.
func checkExponent(e uint) {
	if e > MaxExponent {
		panic(fmt.Errorf("%w: %d exceeds 2^53", ErrInvalidExponent, e))
	}
}

// toExponent converts e to an exponent, failing if e is negative,
// non-integral, not finite or too large to be exact.
func toExponent(e float64) (uint, error) {
	switch {
	case !utils.IsFinite(e):
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidExponent, e)
	case e < 0:
		return 0, fmt.Errorf("%w: %v is negative", ErrInvalidExponent, e)
	case e != math.Trunc(e):
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidExponent, e)
	case e > MaxExponent:
		return 0, fmt.Errorf("%w: %v exceeds 2^53", ErrInvalidExponent, e)
	}
	return uint(e), nil
}
