package poly

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {

	testCases := []struct {
		p    Polynomial
		want string
	}{
		{Zero(), "0"},
		{Constant(-1), "-1"},
		{Constant(0.5), "0.5"},
		{Monomial(1, 1), "x"},
		{Monomial(-1, 1), "-x"},
		{FromCoefficients(1, 3, 2), "2*x^2 + 3*x + 1"},
		{MustNew(Pair{-1, 3}, Pair{0.5, 0}), "-x^3 + 0.5"},
		{MustNew(Pair{1, 4}, Pair{-1, 2}, Pair{-2.25, 1}), "x^4 - x^2 - 2.25*x"},
		{Monomial(1.5e21, 1), "1.5e+21*x"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, tc.p.String())
		})
	}
}

func TestLaTeX(t *testing.T) {

	testCases := []struct {
		p    Polynomial
		want string
	}{
		{Zero(), "0"},
		{FromCoefficients(1, -1, 3), "3x^{2} - x + 1"},
		{Monomial(-1, 12), "-x^{12}"},
		{Monomial(1.5e21, 1), `1.5 \times 10^{21}x`},
		{Constant(1e-7), `1 \times 10^{-7}`},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, tc.p.LaTeX())
		})
	}
}

func TestParse(t *testing.T) {

	t.Run("Valid", func(t *testing.T) {

		testCases := []struct {
			input string
			want  Polynomial
		}{
			{"2*x^2 + 3*x + 1", FromCoefficients(1, 3, 2)},
			{"3x^2+1", FromCoefficients(1, 0, 3)},
			{"-x^{4} + 1e-3x", MustNew(Pair{-1, 4}, Pair{1e-3, 1})},
			{"x", Monomial(1, 1)},
			{"-x", Monomial(-1, 1)},
			{"+ 5", Constant(5)},
			{"  7 ", Constant(7)},
			{".5x", Monomial(0.5, 1)},
			{"0", Zero()},
			{"x^2 + x^2", Monomial(2, 2)},
			{"x - x", Zero()},
			{"2 * x ^ 3 - 4", MustNew(Pair{2, 3}, Pair{-4, 0})},
			{"x^0 + 1", Constant(2)},
			{"1.25E2x^{ 3 }", Monomial(125, 3)},
			{"x^+2", Monomial(1, 2)},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				p := mustParse(t, tc.input)
				require.True(t, p.Equal(tc.want), "got %s want %s", p, tc.want)
			})
		}
	})

	t.Run("Invalid", func(t *testing.T) {

		testCases := []struct {
			input    string
			exponent bool
		}{
			{"", false},
			{"   ", false},
			{"+", false},
			{"2 +", false},
			{"x^", false},
			{"2**x", false},
			{"y", false},
			{"1e", false},
			{"x^{2", false},
			{"3 4", false},
			{"2x x", false},
			{"x^-1", true},
			{"x^2.5", true},
			{"x^{-3}", true},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				_, err := Parse(tc.input)
				require.Error(t, err)
				require.ErrorIs(t, err, ErrParse)
				require.Equal(t, tc.exponent, errors.Is(err, ErrInvalidExponent), err.Error())

				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				require.Equal(t, tc.input, perr.Input)
				require.LessOrEqual(t, perr.Offset, len(tc.input))
			})
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		prng := newTestPRNG(t)
		for i := 0; i < 64; i++ {
			p := randomPolynomial(t, prng, 20)
			q, err := Parse(p.String())
			require.NoError(t, err)
			require.True(t, q.Equal(p), "%s != %s", q, p)
		}
	})
}
