package testutil

import (
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
)

// BandEnergyFraction returns the share of x's one-sided spectral energy
// (DC excluded) that falls in [lowHz, highHz).
func BandEnergyFraction(x []float64, sampleRate, lowHz, highHz float64) float64 {
	if len(x) < 2 || sampleRate <= 0 {
		return 0
	}
	spec := fft.FFTReal(x)
	binHz := sampleRate / float64(len(x))

	var in, total float64
	for k := 1; k < len(spec)/2; k++ {
		m := cmplx.Abs(spec[k])
		e := m * m
		total += e
		if hz := float64(k) * binHz; hz >= lowHz && hz < highHz {
			in += e
		}
	}
	if total == 0 {
		return 0
	}
	return in / total
}

// RequireConjugateSymmetric fails t unless bins[0] is zero and
// bins[n-k] == conj(bins[k]) for every k in 1..n/2-1.
func RequireConjugateSymmetric(t *testing.T, bins []complex128) {
	t.Helper()
	n := len(bins)
	if n == 0 {
		t.Fatal("empty spectrum")
	}
	if bins[0] != 0 {
		t.Fatalf("bin 0 = %v, want 0", bins[0])
	}
	for k := 1; k < n/2; k++ {
		if bins[n-k] != cmplx.Conj(bins[k]) {
			t.Fatalf("bin %d = %v, want conj(bin %d) = %v", n-k, bins[n-k], k, cmplx.Conj(bins[k]))
		}
	}
}
