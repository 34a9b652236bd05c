package poly

import (
	"fmt"
	"math"
	"sort"

	"github.com/tuneinsight/realpoly/utils"
)

const (
	// DefaultResolution is the default width of the scan subintervals.
	DefaultResolution = 1e-3
	// DefaultTolerance is the default bracket width at which bisection stops.
	DefaultTolerance = 1e-10
	// DefaultMaxIterations is the default bound on bisection steps per bracket.
	DefaultMaxIterations = 200
	// DefaultMaxGridPoints is the default bound on the number of scanned points.
	DefaultMaxGridPoints = 1 << 24
)

// RootFinderParameters is a struct storing the parameters of the real root search.
type RootFinderParameters struct {
	// Resolution is the spacing of the coarse scan grid.
	// Roots closer to each other than Resolution may be missed.
	Resolution float64 `json:"resolution" toml:"resolution"`

	// Tolerance is the bracket width below which the bisection stops.
	// Roots within Tolerance of each other are reported once.
	Tolerance float64 `json:"tolerance" toml:"tolerance"`

	// MaxIterations bounds the number of bisection steps per bracket.
	MaxIterations int `json:"max_iterations" toml:"max_iterations"`

	// MaxGridPoints bounds the number of points of the scan grid,
	// i.e. (max - min) / Resolution + 1.
	MaxGridPoints int `json:"max_grid_points" toml:"max_grid_points"`
}

// DefaultRootFinderParameters returns the default parameters of the root search.
func DefaultRootFinderParameters() RootFinderParameters {
	return RootFinderParameters{
		Resolution:    DefaultResolution,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		MaxGridPoints: DefaultMaxGridPoints,
	}
}

// Validate checks that the parameters are usable.
func (params RootFinderParameters) Validate() error {
	switch {
	case !utils.IsFinite(params.Resolution) || params.Resolution <= 0:
		return fmt.Errorf("%w: Resolution=%v must be positive", ErrInvalidParameters, params.Resolution)
	case !utils.IsFinite(params.Tolerance) || params.Tolerance <= 0:
		return fmt.Errorf("%w: Tolerance=%v must be positive", ErrInvalidParameters, params.Tolerance)
	case params.MaxIterations <= 0:
		return fmt.Errorf("%w: MaxIterations=%d must be positive", ErrInvalidParameters, params.MaxIterations)
	case params.MaxGridPoints < 2:
		return fmt.Errorf("%w: MaxGridPoints=%d must be at least 2", ErrInvalidParameters, params.MaxGridPoints)
	}
	return nil
}

// RootFinder locates the real roots of a polynomial in two separate phases:
// a scan of a uniform grid of spacing Resolution that records exact zeros and
// sign-change brackets, then a bisection of each bracket down to Tolerance.
//
// The search has known limitations: roots of even multiplicity, where the
// polynomial touches zero without crossing it (e.g. x^2 - 4x + 4 at 2), are only
// found if they fall exactly on a grid point; pairs of roots closer than
// Resolution may cancel out within one subinterval; only [min, max] is searched.
type RootFinder struct {
	RootFinderParameters
}

// NewRootFinder instantiates a new RootFinder from the provided parameters.
func NewRootFinder(params RootFinderParameters) (*RootFinder, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("cannot NewRootFinder: %w", err)
	}
	return &RootFinder{RootFinderParameters: params}, nil
}

// bracket is an interval [a, b] across which the polynomial changes sign.
type bracket struct {
	a, b float64
	fa   float64
}

// RealRoots returns the approximate real roots of p in [min, max], in ascending order.
// The zero polynomial and the non-zero constants have no roots.
func (rf *RootFinder) RealRoots(p Polynomial, min, max float64) (roots []float64, err error) {

	if err = rf.checkRange(min, max); err != nil {
		return nil, fmt.Errorf("cannot RealRoots: %w", err)
	}

	roots = []float64{}

	if degree, ok := p.Degree(); !ok || degree == 0 {
		return
	}

	exact, brackets := rf.scan(p, min, max)

	roots = append(roots, exact...)
	for _, b := range brackets {
		roots = append(roots, rf.refine(p, b))
	}

	roots = rf.deduplicate(roots)

	utils.Logger().Debug("real roots",
		"min", min, "max", max,
		"resolution", rf.Resolution,
		"exact", len(exact),
		"brackets", len(brackets),
		"roots", len(roots))

	return
}

// AllRealRoots returns the approximate real roots of p in [-B, B] where
// B is the Cauchy bound of p, i.e. every real root p can have.
func (rf *RootFinder) AllRealRoots(p Polynomial) ([]float64, error) {
	bound := p.CauchyBound()
	return rf.RealRoots(p, -bound, bound)
}

func (rf *RootFinder) checkRange(min, max float64) error {
	switch {
	case !utils.IsFinite(min) || !utils.IsFinite(max):
		return fmt.Errorf("%w: bounds [%v, %v] must be finite", ErrInvalidSearch, min, max)
	case min > max:
		return fmt.Errorf("%w: min=%v > max=%v", ErrInvalidSearch, min, max)
	case (max-min)/rf.Resolution+1 > float64(rf.MaxGridPoints):
		return fmt.Errorf("%w: [%v, %v] with resolution %v exceeds %d grid points", ErrInvalidSearch, min, max, rf.Resolution, rf.MaxGridPoints)
	}
	return nil
}

// scan evaluates p on the grid min + i*Resolution, the last point being max.
// It returns the grid points where p is exactly zero and the subintervals
// whose end points have opposite non-zero signs.
func (rf *RootFinder) scan(p Polynomial, min, max float64) (exact []float64, brackets []bracket) {

	n := int(math.Ceil((max - min) / rf.Resolution))

	x0 := min
	y0 := p.ValueAt(x0)
	if y0 == 0 {
		exact = append(exact, x0)
	}

	for i := 1; i <= n; i++ {

		x1 := min + float64(i)*rf.Resolution
		if i == n || x1 > max {
			x1 = max
		}

		y1 := p.ValueAt(x1)

		switch s0, s1 := utils.Sign(y0), utils.Sign(y1); {
		case s1 == 0:
			if y1 == 0 {
				exact = append(exact, x1)
			}
		case s0 != 0 && s0 != s1:
			brackets = append(brackets, bracket{a: x0, b: x1, fa: y0})
		}

		x0, y0 = x1, y1
	}

	return
}

// refine bisects b until its width is below Tolerance and returns its midpoint.
func (rf *RootFinder) refine(p Polynomial, b bracket) float64 {

	a, fa, c := b.a, b.fa, b.b

	for i := 0; i < rf.MaxIterations && c-a >= rf.Tolerance; i++ {

		m := a + (c-a)/2

		// No float64 left strictly inside the bracket.
		if m <= a || m >= c {
			break
		}

		fm := p.ValueAt(m)

		if fm == 0 {
			return m
		}

		if utils.Sign(fm) == utils.Sign(fa) {
			a, fa = m, fm
		} else {
			c = m
		}
	}

	return a + (c-a)/2
}

// deduplicate sorts the roots and merges those within Tolerance of their predecessor.
func (rf *RootFinder) deduplicate(roots []float64) []float64 {

	sort.Float64s(roots)

	out := roots[:0]
	for _, r := range roots {
		if len(out) == 0 || r-out[len(out)-1] > rf.Tolerance {
			out = append(out, r)
		}
	}

	return out
}

// RealRoots returns the approximate real roots of p in [min, max] scanned with
// the given resolution and the default tolerance. See RootFinder for the
// limitations of the search.
func (p Polynomial) RealRoots(min, max, resolution float64) ([]float64, error) {
	params := DefaultRootFinderParameters()
	params.Resolution = resolution
	rf, err := NewRootFinder(params)
	if err != nil {
		return nil, fmt.Errorf("cannot RealRoots: %w", err)
	}
	return rf.RealRoots(p, min, max)
}

// CauchyBound returns B = 1 + max_i |a_i / a_n|, where a_n is the leading
// coefficient. All the real roots of p lie in [-B, B].
// Returns 0 for the zero polynomial.
func (p Polynomial) CauchyBound() (bound float64) {

	if p.IsZero() {
		return 0
	}

	lead := math.Abs(p.terms[0].Coeff)
	for _, t := range p.terms[1:] {
		bound = math.Max(bound, math.Abs(t.Coeff)/lead)
	}

	return 1 + bound
}
