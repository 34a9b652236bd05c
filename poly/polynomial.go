package poly

import (
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tuneinsight/realpoly/utils"
)

// Pair is a raw (coefficient, exponent) input to New.
// The exponent is a float64 so that non-integral inputs can be rejected explicitly.
type Pair struct {
	Coeff    float64
	Exponent float64
}

// Polynomial is a single-variable polynomial with float64 coefficients.
//
// The terms are kept in canonical form: sorted by strictly descending exponent,
// with unique exponents and non-zero coefficients. The zero value is the zero
// polynomial. A Polynomial is never modified after construction, every operation
// returns a new value, so it can be shared freely between goroutines.
type Polynomial struct {
	terms []Term
}

// New creates a new polynomial from the given pairs.
// Duplicate exponents are summed and zero coefficients are dropped.
// Returns an error wrapping ErrInvalidExponent if an exponent is not a
// non-negative integer.
func New(pairs ...Pair) (Polynomial, error) {
	terms := make([]Term, len(pairs))
	for i, pair := range pairs {
		e, err := toExponent(pair.Exponent)
		if err != nil {
			return Polynomial{}, fmt.Errorf("cannot New: pair %d: %w", i, err)
		}
		terms[i] = Term{Coeff: pair.Coeff, Exponent: e}
	}
	return Polynomial{terms: canonicalize(terms)}, nil
}

// MustNew is like New but panics on error. It is meant for literals.
func MustNew(pairs ...Pair) Polynomial {
	p, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return p
}

// FromTerms creates a new polynomial from terms given in any order.
// It panics with an error wrapping ErrInvalidExponent if an exponent
// exceeds MaxExponent.
func FromTerms(terms ...Term) Polynomial {
	return Polynomial{terms: canonicalize(terms)}
}

// FromMap creates a new polynomial from a map exponent -> coefficient.
// Like FromTerms, it panics if an exponent exceeds MaxExponent.
func FromMap(m map[uint]float64) Polynomial {
	acc := make(map[uint]float64, len(m))
	for e, c := range m {
		acc[e] = c
	}
	return Polynomial{terms: normalize(acc)}
}

// FromCoefficients creates a new polynomial from its dense coefficients
// in ascending degree order: coeffs[i] is the coefficient of x^i.
//
// For example, FromCoefficients(1, -2, 3) represents 3x^2 - 2x + 1.
func FromCoefficients(coeffs ...float64) Polynomial {
	terms := make([]Term, len(coeffs))
	for i, c := range coeffs {
		terms[i] = Term{Coeff: c, Exponent: uint(i)}
	}
	return Polynomial{terms: canonicalize(terms)}
}

// Monomial returns c * x^e. It panics if e exceeds MaxExponent.
func Monomial(c float64, e uint) Polynomial {
	return FromTerms(Term{Coeff: c, Exponent: e})
}

// Constant returns the constant polynomial c.
func Constant(c float64) Polynomial {
	return Monomial(c, 0)
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// canonicalize merges the terms by exponent, drops the zero coefficients
// and sorts the result by descending exponent. Every constructor and
// operation producing a Polynomial goes through it (or through normalize
// when it already accumulates into a map).
func canonicalize(terms []Term) []Term {
	acc := make(map[uint]float64, len(terms))
	for _, t := range terms {
		acc[t.Exponent] += t.Coeff
	}
	return normalize(acc)
}

// normalize turns an exponent -> coefficient accumulator into canonical terms.
// It returns nil for the zero polynomial and panics on an exponent above
// MaxExponent, zero coefficient or not.
func normalize(acc map[uint]float64) []Term {
	var terms []Term
	for _, e := range utils.GetReverseSortedKeys(acc) {
		checkExponent(e)
		if c := acc[e]; c != 0 {
			terms = append(terms, Term{Coeff: c, Exponent: e})
		}
	}
	return terms
}

// IsZero returns true for the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Len returns the number of non-zero terms.
func (p Polynomial) Len() int {
	return len(p.terms)
}

// Degree returns the degree of the polynomial.
// ok is false for the zero polynomial, whose degree is undefined.
func (p Polynomial) Degree() (degree uint, ok bool) {
	if p.IsZero() {
		return 0, false
	}
	return p.terms[0].Exponent, true
}

// LeadingTerm returns the term of highest exponent.
// ok is false for the zero polynomial.
func (p Polynomial) LeadingTerm() (t Term, ok bool) {
	if p.IsZero() {
		return Term{}, false
	}
	return p.terms[0], true
}

// Terms returns a copy of the terms in descending exponent order.
func (p Polynomial) Terms() []Term {
	terms := make([]Term, len(p.terms))
	copy(terms, p.terms)
	return terms
}

// Coefficient returns the coefficient of x^e, zero if absent.
func (p Polynomial) Coefficient(e uint) float64 {
	i := sort.Search(len(p.terms), func(i int) bool {
		return p.terms[i].Exponent <= e
	})
	if i < len(p.terms) && p.terms[i].Exponent == e {
		return p.terms[i].Coeff
	}
	return 0
}

// Equal returns true if p and other have exactly the same terms.
func (p Polynomial) Equal(other Polynomial) bool {
	return cmp.Equal(p.terms, other.terms, cmpopts.EquateEmpty())
}

// EqualApprox returns true if, for every exponent, the coefficients of
// p and other are equal up to tol (see utils.AlmostEqual).
func (p Polynomial) EqualApprox(other Polynomial, tol float64) bool {
	i, j := 0, 0
	for i < len(p.terms) || j < len(other.terms) {
		var a, b float64
		switch {
		case j == len(other.terms) || (i < len(p.terms) && p.terms[i].Exponent > other.terms[j].Exponent):
			a = p.terms[i].Coeff
			i++
		case i == len(p.terms) || other.terms[j].Exponent > p.terms[i].Exponent:
			b = other.terms[j].Coeff
			j++
		default:
			a, b = p.terms[i].Coeff, other.terms[j].Coeff
			i++
			j++
		}
		if !utils.AlmostEqual(a, b, tol) {
			return false
		}
	}
	return true
}
