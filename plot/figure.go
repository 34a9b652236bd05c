package plot

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/realpoly/poly"
	"github.com/tuneinsight/realpoly/utils"
)

var (
	// ErrEmptyFigure is returned when a figure has nothing to display.
	ErrEmptyFigure = errors.New("empty figure")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid plot configuration")
)

// Series is a labelled sequence of samples.
type Series struct {
	Label  string
	Points []poly.Point
}

// Marker is a labelled point drawn on top of the series.
type Marker struct {
	Label string
	X, Y  float64
}

// Figure collects the series and markers of a plot.
type Figure struct {
	Title   string
	Sampler poly.Sampler

	// YMin and YMax optionally clamp the vertical range of the viewport.
	YMin, YMax *float64

	Series  []Series
	Markers []Marker
}

// NewFigure creates an empty figure whose polynomials are sampled with sampler.
func NewFigure(title string, sampler poly.Sampler) *Figure {
	return &Figure{Title: title, Sampler: sampler}
}

// AddSeries collects seq into a new series.
func (f *Figure) AddSeries(label string, seq iter.Seq2[float64, float64]) {
	f.Series = append(f.Series, Series{Label: label, Points: poly.Collect(seq)})
}

// AddPolynomial samples p with the sampler of the figure.
func (f *Figure) AddPolynomial(label string, p poly.Polynomial) {
	f.AddSeries(label, f.Sampler.Seq(p))
}

// AddRoots marks the real roots of p in the sampled range.
func (f *Figure) AddRoots(label string, p poly.Polynomial, rf *poly.RootFinder) error {
	roots, err := rf.RealRoots(p, f.Sampler.Min, f.Sampler.Max)
	if err != nil {
		return fmt.Errorf("cannot AddRoots: %w", err)
	}
	for _, r := range roots {
		f.Markers = append(f.Markers, Marker{Label: label, X: r, Y: 0})
	}
	return nil
}

// Viewport is the displayed rectangle of a figure.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax - XMin.
func (v Viewport) Width() float64 {
	return v.XMax - v.XMin
}

// Height returns YMax - YMin.
func (v Viewport) Height() float64 {
	return v.YMax - v.YMin
}

// Contains returns true if (x, y) lies in the viewport.
func (v Viewport) Contains(x, y float64) bool {
	return v.XMin <= x && x <= v.XMax && v.YMin <= y && y <= v.YMax
}

// Viewport returns the smallest rectangle holding every finite sample and
// marker, with the vertical range overridden by YMin and YMax when set.
// A flat range is widened by one unit on each side.
func (f *Figure) Viewport() (vp Viewport, err error) {

	var xs, ys []float64
	for _, s := range f.Series {
		for _, pt := range s.Points {
			if utils.IsFinite(pt.X) && utils.IsFinite(pt.Y) {
				xs = append(xs, pt.X)
				ys = append(ys, pt.Y)
			}
		}
	}
	for _, m := range f.Markers {
		xs = append(xs, m.X)
		ys = append(ys, m.Y)
	}

	if len(xs) == 0 {
		return vp, fmt.Errorf("cannot Viewport: %w", ErrEmptyFigure)
	}

	if vp.XMin, err = stats.Min(xs); err != nil {
		return vp, fmt.Errorf("cannot Viewport: %w", err)
	}
	if vp.XMax, err = stats.Max(xs); err != nil {
		return vp, fmt.Errorf("cannot Viewport: %w", err)
	}
	if vp.YMin, err = stats.Min(ys); err != nil {
		return vp, fmt.Errorf("cannot Viewport: %w", err)
	}
	if vp.YMax, err = stats.Max(ys); err != nil {
		return vp, fmt.Errorf("cannot Viewport: %w", err)
	}

	if f.YMin != nil {
		vp.YMin = *f.YMin
	}
	if f.YMax != nil {
		vp.YMax = *f.YMax
	}

	if vp.XMin == vp.XMax {
		vp.XMin, vp.XMax = vp.XMin-1, vp.XMax+1
	}

	if !(vp.YMin < vp.YMax) {
		lo, hi := math.Min(vp.YMin, vp.YMax), math.Max(vp.YMin, vp.YMax)
		vp.YMin, vp.YMax = lo-1, hi+1
	}

	return
}

// Summary holds descriptive statistics of the values of a series.
type Summary struct {
	Label  string
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Summary computes the statistics of the finite values of s.
func (s Series) Summary() (sum Summary, err error) {

	ys := make([]float64, 0, len(s.Points))
	for _, pt := range s.Points {
		if utils.IsFinite(pt.Y) {
			ys = append(ys, pt.Y)
		}
	}

	sum.Label = s.Label

	if len(ys) == 0 {
		return sum, fmt.Errorf("cannot Summary: %w", ErrEmptyFigure)
	}

	if sum.Min, err = stats.Min(ys); err != nil {
		return sum, fmt.Errorf("cannot Summary: %w", err)
	}
	if sum.Max, err = stats.Max(ys); err != nil {
		return sum, fmt.Errorf("cannot Summary: %w", err)
	}
	if sum.Mean, err = stats.Mean(ys); err != nil {
		return sum, fmt.Errorf("cannot Summary: %w", err)
	}
	if sum.Median, err = stats.Median(ys); err != nil {
		return sum, fmt.Errorf("cannot Summary: %w", err)
	}
	if sum.StdDev, err = stats.StandardDeviation(ys); err != nil {
		return sum, fmt.Errorf("cannot Summary: %w", err)
	}

	return
}

// Summaries returns the summary of every series of f.
func (f *Figure) Summaries() ([]Summary, error) {
	sums := make([]Summary, len(f.Series))
	for i, s := range f.Series {
		sum, err := s.Summary()
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		sums[i] = sum
	}
	return sums, nil
}
