package poly

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/realpoly/utils/sampling"
)

var testKey = []byte{0x70, 0x6f, 0x6c, 0x79, 0x6e, 0x6f, 0x6d, 0x69, 0x61, 0x6c}

// newTestPRNG returns a deterministic PRNG so that the randomized tests are reproducible.
func newTestPRNG(t testing.TB) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)
	return prng
}

// randomPolynomial samples a polynomial of degree at most maxDegree whose
// coefficients have a magnitude in [0.5, 2) and a random sign. The leading
// coefficient is always present.
func randomPolynomial(t testing.TB, prng sampling.PRNG, maxDegree int) Polynomial {

	degree, err := sampling.RandIntn(prng, maxDegree+1)
	require.NoError(t, err)

	terms := make([]Term, 0, degree+1)
	for e := 0; e <= degree; e++ {

		skip, err := sampling.RandIntn(prng, 3)
		require.NoError(t, err)

		if e != degree && skip == 0 {
			continue
		}

		c, err := sampling.RandFloat64(prng, 0.5, 2)
		require.NoError(t, err)

		neg, err := sampling.RandIntn(prng, 2)
		require.NoError(t, err)

		if neg == 1 {
			c = -c
		}

		terms = append(terms, Term{Coeff: c, Exponent: uint(e)})
	}

	p := FromTerms(terms...)
	requireCanonical(t, p)
	return p
}

// requireCanonical checks the canonical form invariant on p.
func requireCanonical(t testing.TB, p Polynomial) {
	for i, term := range p.terms {
		require.NotZero(t, term.Coeff, "zero coefficient at index %d of %v", i, p.terms)
		if i > 0 {
			require.Greater(t, p.terms[i-1].Exponent, term.Exponent, "exponents not strictly descending in %v", p.terms)
		}
	}
}

// mustParse parses a literal in tests.
func mustParse(t testing.TB, s string) Polynomial {
	p, err := Parse(s)
	require.NoError(t, err)
	requireCanonical(t, p)
	return p
}

// requirePanicsWithErrorIs checks that f panics with an error matching target.
func requirePanicsWithErrorIs(t testing.TB, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "function did not panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	f()
}
