package poly

import (
	"github.com/tuneinsight/realpoly/utils"
)

// Derivative returns dp/dx.
func (p Polynomial) Derivative() Polynomial {
	terms := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		if t.Exponent > 0 {
			terms = append(terms, t.Derivative())
		}
	}
	return Polynomial{terms: canonicalize(terms)}
}

// Integral returns the primitive of p whose constant term is zero.
// It panics if p has a term of exponent MaxExponent.
func (p Polynomial) Integral() Polynomial {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = t.Integral()
	}
	return Polynomial{terms: canonicalize(terms)}
}

// IntegralWithConstant returns the primitive of p whose constant term is c.
func (p Polynomial) IntegralWithConstant(c float64) Polynomial {
	return p.Integral().Add(Constant(c))
}

// ReflectAboutYAxis returns p(-x).
func (p Polynomial) ReflectAboutYAxis() Polynomial {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		if t.Exponent&1 == 1 {
			terms[i] = t.Neg()
		} else {
			terms[i] = t
		}
	}
	return Polynomial{terms: canonicalize(terms)}
}

// ValueAt evaluates p at x with Horner's scheme, skipping the missing
// exponents with integer powers. 0^0 is taken as 1, so the constant
// term is returned as is at x = 0.
func (p Polynomial) ValueAt(x float64) (y float64) {
	for i, t := range p.terms {
		y += t.Coeff
		var next uint
		if i+1 < len(p.terms) {
			next = p.terms[i+1].Exponent
		}
		y *= utils.PowUint(x, t.Exponent-next)
	}
	return
}
