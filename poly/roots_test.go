package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireRoots(t *testing.T, want, have []float64, delta float64) {
	require.Len(t, have, len(want), "have %v want %v", have, want)
	for i := range want {
		require.InDelta(t, want[i], have[i], delta, "have %v want %v", have, want)
	}
}

func TestRealRoots(t *testing.T) {

	t.Run("Quadratic", func(t *testing.T) {
		p := mustParse(t, "x^2 - 1")
		roots, err := p.RealRoots(-10, 10, 0.01)
		require.NoError(t, err)
		requireRoots(t, []float64{-1, 1}, roots, 1e-9)
		for _, r := range roots {
			require.Less(t, math.Abs(p.ValueAt(r)), 1e-8)
		}
	})

	t.Run("Linear", func(t *testing.T) {
		roots, err := Monomial(1, 1).RealRoots(-1, 1, DefaultResolution)
		require.NoError(t, err)
		requireRoots(t, []float64{0}, roots, 1e-9)
	})

	t.Run("Cubic", func(t *testing.T) {
		roots, err := mustParse(t, "x^3 - x").RealRoots(-2, 2, 0.01)
		require.NoError(t, err)
		requireRoots(t, []float64{-1, 0, 1}, roots, 1e-9)
	})

	t.Run("Quartic", func(t *testing.T) {
		p := mustParse(t, "x^4 - 22x^3 + 152x^2 - 362x + 231")
		roots, err := p.RealRoots(0, 12, 0.01)
		require.NoError(t, err)
		requireRoots(t, []float64{1, 3, 7, 11}, roots, 1e-8)
	})

	t.Run("Irrational", func(t *testing.T) {
		roots, err := mustParse(t, "x^2 - 2").RealRoots(-3, 3, 0.1)
		require.NoError(t, err)
		requireRoots(t, []float64{-math.Sqrt2, math.Sqrt2}, roots, 1e-9)
	})

	t.Run("NoRoots", func(t *testing.T) {
		for _, p := range []Polynomial{Zero(), Constant(3), mustParse(t, "x^2 + 1")} {
			roots, err := p.RealRoots(-10, 10, 0.01)
			require.NoError(t, err)
			require.NotNil(t, roots)
			require.Empty(t, roots)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		roots, err := mustParse(t, "x^2 - 1").RealRoots(2, 5, 0.01)
		require.NoError(t, err)
		require.Empty(t, roots)
	})

	t.Run("SinglePoint", func(t *testing.T) {
		roots, err := mustParse(t, "x - 1").RealRoots(1, 1, 0.01)
		require.NoError(t, err)
		require.Equal(t, []float64{1}, roots)
	})

	// Tangent roots are only found when they lie on the grid.
	t.Run("Tangent", func(t *testing.T) {
		p := mustParse(t, "x^2 - 4x + 4")

		roots, err := p.RealRoots(0.05, 5, 0.1)
		require.NoError(t, err)
		require.Empty(t, roots)

		roots, err = p.RealRoots(0, 4, 0.5)
		require.NoError(t, err)
		require.Equal(t, []float64{2}, roots)
	})

	t.Run("Invalid", func(t *testing.T) {
		p := mustParse(t, "x^2 - 1")

		_, err := p.RealRoots(1, -1, 0.01)
		require.ErrorIs(t, err, ErrInvalidSearch)

		_, err = p.RealRoots(math.Inf(-1), 1, 0.01)
		require.ErrorIs(t, err, ErrInvalidSearch)

		_, err = p.RealRoots(math.NaN(), 1, 0.01)
		require.ErrorIs(t, err, ErrInvalidSearch)

		_, err = p.RealRoots(-1e12, 1e12, 1e-3)
		require.ErrorIs(t, err, ErrInvalidSearch)

		_, err = p.RealRoots(-1, 1, 0)
		require.ErrorIs(t, err, ErrInvalidParameters)

		_, err = p.RealRoots(-1, 1, -0.1)
		require.ErrorIs(t, err, ErrInvalidParameters)
	})
}

func TestRootFinder(t *testing.T) {

	t.Run("Parameters", func(t *testing.T) {
		require.NoError(t, DefaultRootFinderParameters().Validate())

		for _, params := range []RootFinderParameters{
			{Resolution: math.NaN(), Tolerance: 1, MaxIterations: 1, MaxGridPoints: 2},
			{Resolution: 1, Tolerance: 0, MaxIterations: 1, MaxGridPoints: 2},
			{Resolution: 1, Tolerance: 1, MaxIterations: 0, MaxGridPoints: 2},
			{Resolution: 1, Tolerance: 1, MaxIterations: 1, MaxGridPoints: 1},
		} {
			_, err := NewRootFinder(params)
			require.ErrorIs(t, err, ErrInvalidParameters, "%+v", params)
		}
	})

	t.Run("AllRealRoots", func(t *testing.T) {
		params := DefaultRootFinderParameters()
		params.Resolution = 0.1
		rf, err := NewRootFinder(params)
		require.NoError(t, err)

		roots, err := rf.AllRealRoots(mustParse(t, "x^2 - 1100x + 100000"))
		require.NoError(t, err)
		requireRoots(t, []float64{100, 1000}, roots, 1e-6)

		roots, err = rf.AllRealRoots(Zero())
		require.NoError(t, err)
		require.Empty(t, roots)
	})

	t.Run("Residual", func(t *testing.T) {
		rf, err := NewRootFinder(DefaultRootFinderParameters())
		require.NoError(t, err)

		// (x + 1.5)(x - 0.25)(x - 0.8)
		p := mustParse(t, "x + 1.5").Mul(mustParse(t, "x - 0.25")).Mul(mustParse(t, "x - 0.8"))
		roots, err := rf.AllRealRoots(p)
		require.NoError(t, err)
		requireRoots(t, []float64{-1.5, 0.25, 0.8}, roots, 1e-8)
		for _, r := range roots {
			require.Less(t, math.Abs(p.ValueAt(r)), 1e-8)
		}
	})

	t.Run("MaxIterations", func(t *testing.T) {
		params := DefaultRootFinderParameters()
		params.Resolution = 1
		params.MaxIterations = 1
		rf, err := NewRootFinder(params)
		require.NoError(t, err)

		// A single bisection step of [1, 2] returns the midpoint of [1, 1.5].
		roots, err := rf.RealRoots(mustParse(t, "x^2 - 2"), 0, 2)
		require.NoError(t, err)
		require.Equal(t, []float64{1.25}, roots)
	})
}

func TestRootFinderPhases(t *testing.T) {

	params := DefaultRootFinderParameters()
	params.Resolution = 0.5
	rf, err := NewRootFinder(params)
	require.NoError(t, err)

	t.Run("Scan/Exact", func(t *testing.T) {
		exact, brackets := rf.scan(mustParse(t, "x^2 - 1"), -2, 2)
		require.Equal(t, []float64{-1, 1}, exact)
		require.Empty(t, brackets)
	})

	t.Run("Scan/Brackets", func(t *testing.T) {
		exact, brackets := rf.scan(mustParse(t, "x^2 - 2"), -2, 2)
		require.Empty(t, exact)
		require.Equal(t, []bracket{{a: -1.5, b: -1, fa: 0.25}, {a: 1, b: 1.5, fa: -1}}, brackets)
	})

	t.Run("Scan/LastPoint", func(t *testing.T) {
		// 0.3 is not a multiple of the resolution but is still scanned.
		exact, brackets := rf.scan(mustParse(t, "x - 0.3"), -1, 0.3)
		require.Equal(t, []float64{0.3}, exact)
		require.Empty(t, brackets)
	})

	t.Run("Refine", func(t *testing.T) {
		p := mustParse(t, "x^2 - 2")
		r := rf.refine(p, bracket{a: 1, b: 1.5, fa: -1})
		require.InDelta(t, math.Sqrt2, r, rf.Tolerance)
	})

	t.Run("Deduplicate", func(t *testing.T) {
		require.Equal(t, []float64{1, 2}, rf.deduplicate([]float64{2, 1, 1 + 1e-12}))
		require.Empty(t, rf.deduplicate([]float64{}))
	})
}

func TestCauchyBound(t *testing.T) {
	require.Equal(t, 0.0, Zero().CauchyBound())
	require.Equal(t, 1.0, Constant(5).CauchyBound())
	require.Equal(t, 100001.0, mustParse(t, "x^2 - 1100x + 100000").CauchyBound())
	require.Equal(t, 4.0, mustParse(t, "2x^3 - 6x + 1").CauchyBound())
}

func BenchmarkRealRoots(b *testing.B) {
	p := mustParse(b, "x^4 - 22x^3 + 152x^2 - 362x + 231")
	rf, err := NewRootFinder(DefaultRootFinderParameters())
	require.NoError(b, err)
	for i := 0; i < b.N; i++ {
		_, _ = rf.RealRoots(p, 0, 12)
	}
}
