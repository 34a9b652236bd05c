// Package sampling implements the sampling of random bytes, integers and floats
// from deterministic or secure sources.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RandUint64 reads a uniform value in [0, 0xFFFFFFFFFFFFFFFF] from r.
func RandUint64(r io.Reader) (uint64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, fmt.Errorf("cannot RandUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b), nil
}

// RandFloat64 reads a float in [min, max) from r.
func RandFloat64(r io.Reader, min, max float64) (float64, error) {
	u, err := RandUint64(r)
	if err != nil {
		return 0, err
	}
	// 53 random bits give a uniform float in [0, 1).
	f := float64(u>>11) / (1 << 53)
	return min + f*(max-min), nil
}

// RandIntn reads an integer in [0, n) from r. n must be positive.
func RandIntn(r io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("cannot RandIntn: n=%d must be positive", n)
	}
	u, err := RandUint64(r)
	if err != nil {
		return 0, err
	}
	return int(u % uint64(n)), nil
}

// RandFloat64Slice reads n floats in [min, max) from r.
func RandFloat64Slice(r io.Reader, n int, min, max float64) (s []float64, err error) {
	s = make([]float64, n)
	for i := range s {
		if s[i], err = RandFloat64(r, min, max); err != nil {
			return nil, err
		}
	}
	return
}
