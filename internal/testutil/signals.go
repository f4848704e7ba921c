package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of amplitude·sin(2π·freqHz·n/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude)
// drawn from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ones returns n samples of 1.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Rotate returns x circularly advanced by lag samples: out[i] = x[(i+lag) mod n].
// Negative lags delay.
func Rotate(x []float64, lag int) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	lag %= n
	if lag < 0 {
		lag += n
	}
	copy(out, x[lag:])
	copy(out[n-lag:], x[:lag])
	return out
}
