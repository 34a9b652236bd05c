package poly

import (
	"fmt"
)

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return Polynomial{terms: merge(p.terms, q.terms, 1)}
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return Polynomial{terms: merge(p.terms, q.terms, -1)}
}

// merge returns the canonical form of a + sign*b, where a and b
// are both sorted by descending exponent.
func merge(a, b []Term, sign float64) []Term {

	out := make([]Term, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Exponent > b[j].Exponent:
			out = append(out, a[i])
			i++
		case a[i].Exponent < b[j].Exponent:
			out = append(out, Term{Coeff: sign * b[j].Coeff, Exponent: b[j].Exponent})
			j++
		default:
			out = append(out, Term{Coeff: a[i].Coeff + sign*b[j].Coeff, Exponent: a[i].Exponent})
			i++
			j++
		}
	}

	out = append(out, a[i:]...)

	for ; j < len(b); j++ {
		out = append(out, Term{Coeff: sign * b[j].Coeff, Exponent: b[j].Exponent})
	}

	return canonicalize(out)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.Scale(-1)
}

// Scale returns c * p.
func (p Polynomial) Scale(c float64) Polynomial {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coeff: c * t.Coeff, Exponent: t.Exponent}
	}
	return Polynomial{terms: canonicalize(terms)}
}

// Mul returns p * q.
// Each of the n*m pairwise term products is accumulated by exponent.
// It panics if the degree of the product exceeds MaxExponent.
func (p Polynomial) Mul(q Polynomial) Polynomial {

	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}

	acc := make(map[uint]float64, len(p.terms)+len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			t := a.Mul(b)
			acc[t.Exponent] += t.Coeff
		}
	}

	return Polynomial{terms: normalize(acc)}
}

// Pow returns p^n. Pow(0) returns the constant 1, including for the zero polynomial.
// It panics if the degree of the result exceeds MaxExponent.
func (p Polynomial) Pow(n uint) Polynomial {
	if d, ok := p.Degree(); ok && d > 0 && n > MaxExponent/d {
		panic(fmt.Errorf("cannot Pow: %w: degree %d * %d exceeds 2^53", ErrInvalidExponent, d, n))
	}

	res := Constant(1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return res
}

// QuoRem returns the quotient and the remainder of the long division of p by q,
// such that p = quo*q + rem with degree(rem) < degree(q).
// Returns an error wrapping ErrDivisionByZero if q is the zero polynomial.
func (p Polynomial) QuoRem(q Polynomial) (quo, rem Polynomial, err error) {

	if q.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("cannot QuoRem: %w", ErrDivisionByZero)
	}

	lead := q.terms[0]
	tail := q.terms[1:]

	var quoTerms []Term
	r := p.terms

	// Each step removes the leading term of r exactly and only adds
	// terms of lower exponent, so the degree of r strictly decreases.
	for len(r) > 0 && r[0].Exponent >= lead.Exponent {

		t := Term{Coeff: r[0].Coeff / lead.Coeff, Exponent: r[0].Exponent - lead.Exponent}
		quoTerms = append(quoTerms, t)

		sub := make([]Term, len(tail))
		for i, u := range tail {
			sub[i] = t.Mul(u)
		}

		r = merge(r[1:], sub, -1)
	}

	return Polynomial{terms: canonicalize(quoTerms)}, Polynomial{terms: canonicalize(r)}, nil
}

// Quo returns the quotient of the long division of p by q.
func (p Polynomial) Quo(q Polynomial) (Polynomial, error) {
	quo, _, err := p.QuoRem(q)
	if err != nil {
		return Polynomial{}, fmt.Errorf("cannot Quo: %w", err)
	}
	return quo, nil
}

// Rem returns the remainder of the long division of p by q.
func (p Polynomial) Rem(q Polynomial) (Polynomial, error) {
	_, rem, err := p.QuoRem(q)
	if err != nil {
		return Polynomial{}, fmt.Errorf("cannot Rem: %w", err)
	}
	return rem, nil
}
