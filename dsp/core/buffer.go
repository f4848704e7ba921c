package core

import "math"

// Negate returns -buf as a new slice.
func Negate(buf []float64) []float64 {
	out := make([]float64, len(buf))
	for i, v := range buf {
		out[i] = -v
	}
	return out
}

// MaxAbs returns the largest absolute value in buf, or 0 for an empty slice.
func MaxAbs(buf []float64) float64 {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
