package poly

import (
	"fmt"
	"iter"
	"math"

	"github.com/tuneinsight/realpoly/utils"
)

// maxSteps bounds the length of a sampled sequence so that the
// step count stays an exact integer.
const maxSteps = 1 << 53

// Point is a sample (x, p(x)).
type Point struct {
	X, Y float64
}

// Sample returns the lazy sequence of (x, p(x)) for x = min + i*step, i = 0, 1, ...
// while x <= max. The sequence is finite, can be ranged over several times and
// yields the same values every time.
func (p Polynomial) Sample(min, max, step float64) (iter.Seq2[float64, float64], error) {

	switch {
	case !utils.IsFinite(min) || !utils.IsFinite(max):
		return nil, fmt.Errorf("cannot Sample: %w: bounds [%v, %v] must be finite", ErrInvalidSampling, min, max)
	case min > max:
		return nil, fmt.Errorf("cannot Sample: %w: min=%v > max=%v", ErrInvalidSampling, min, max)
	case !utils.IsFinite(step) || step <= 0:
		return nil, fmt.Errorf("cannot Sample: %w: step=%v must be positive", ErrInvalidSampling, step)
	case (max-min)/step > maxSteps:
		return nil, fmt.Errorf("cannot Sample: %w: too many steps", ErrInvalidSampling)
	}

	n := sampleSteps(min, max, step)

	return func(yield func(x, y float64) bool) {
		for i := 0; i <= n; i++ {
			x := math.Min(min+float64(i)*step, max)
			if !yield(x, p.ValueAt(x)) {
				return
			}
		}
	}, nil
}

// sampleSteps returns the index n of the last abscissa min + n*step of a
// sequence ending at max. The abscissa following floor((max-min)/step) is
// kept when it overshoots max by a few ulps only, so that max is part of the
// sequence when (max-min)/step is an integer up to rounding. The callers clamp
// the last abscissa to max.
func sampleSteps(min, max, step float64) int {
	n := int(math.Floor((max - min) / step))
	slack := 4 * 0x1p-52 * math.Max(math.Abs(min), math.Abs(max))
	if next := min + float64(n+1)*step; next-max <= slack {
		n++
	}
	return n
}

// Sampler describes Samples evenly spaced abscissas from Min to Max, both included.
type Sampler struct {
	Min, Max float64
	Samples  int
}

// NewSampler creates a new Sampler. It requires min < max and at least two samples.
func NewSampler(min, max float64, samples int) (*Sampler, error) {
	switch {
	case samples < 2:
		return nil, fmt.Errorf("cannot NewSampler: %w: requested %d samples, at least 2 are needed", ErrInvalidSampling, samples)
	case !utils.IsFinite(min) || !utils.IsFinite(max) || min >= max:
		return nil, fmt.Errorf("cannot NewSampler: %w: [%v, %v] is not a valid range", ErrInvalidSampling, min, max)
	}
	return &Sampler{Min: min, Max: max, Samples: samples}, nil
}

// X returns the i-th abscissa. X(Samples-1) is exactly Max.
func (s Sampler) X(i int) float64 {
	if i == s.Samples-1 {
		return s.Max
	}
	return s.Min + (s.Max-s.Min)*float64(i)/float64(s.Samples-1)
}

// Seq returns the lazy sequence of (x, p(x)) over the abscissas of s.
func (s Sampler) Seq(p Polynomial) iter.Seq2[float64, float64] {
	return func(yield func(x, y float64) bool) {
		for i := 0; i < s.Samples; i++ {
			x := s.X(i)
			if !yield(x, p.ValueAt(x)) {
				return
			}
		}
	}
}

// Points returns the samples of p over the abscissas of s.
func (s Sampler) Points(p Polynomial) []Point {
	return Collect(s.Seq(p))
}

// Collect gathers a sequence of samples.
func Collect(seq iter.Seq2[float64, float64]) (points []Point) {
	for x, y := range seq {
		points = append(points, Point{X: x, Y: y})
	}
	return
}
