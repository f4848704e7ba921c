package window

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// RaisedCosine returns the offset envelope of a raised-cosine window of
// the given length: unity for i < a1, a cosine taper from 1 to 0 over
// [a1, a2) and zero from a2 on, where a1 = floor((1-beta)*length/2) and
// a2 = floor((1+beta)*length/2). beta = 0 collapses the taper into a step.
func RaisedCosine(beta float64, length int) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if err := validateBeta(beta); err != nil {
		return nil, err
	}

	a1, a2 := raisedCosineEdges(beta, length)

	h := make([]float64, length)
	for i := range a1 {
		h[i] = 1
	}
	for i := a1; i < a2; i++ {
		h[i] = 0.5 * (1 + math.Cos(math.Pi/(beta*float64(length))*float64(i-a1)))
	}

	return h, nil
}

func raisedCosineEdges(beta float64, length int) (int, int) {
	n := float64(length)
	return int(math.Floor((1 - beta) * n / 2)), int(math.Floor((1 + beta) * n / 2))
}

// CosineRamp returns the onset envelope (1 - cos(pi*i/length)) / 2.
func CosineRamp(length int) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	c := make([]float64, length)
	for i := range c {
		c[i] = (1 - math.Cos(math.Pi*float64(i)/float64(length))) / 2
	}

	return c, nil
}

// ApplyRaisedCosine returns buf with a raised-cosine onset and offset of
// lengthMs milliseconds.
func ApplyRaisedCosine(buf []float64, sampleRate int, beta, lengthMs float64) ([]float64, error) {
	h, err := RaisedCosine(beta, msToSamples(sampleRate, lengthMs))
	if err != nil {
		return nil, err
	}

	onset := slices.Clone(h)
	slices.Reverse(onset)

	return ApplyEdges(buf, onset)
}

// ApplyCosineRamp returns buf with cosine ramps of lengthMs milliseconds
// at head and tail.
func ApplyCosineRamp(buf []float64, sampleRate int, lengthMs float64) ([]float64, error) {
	c, err := CosineRamp(msToSamples(sampleRate, lengthMs))
	if err != nil {
		return nil, err
	}

	return ApplyEdges(buf, c)
}

// ApplyEdges returns a copy of buf whose first len(onset) samples are
// multiplied by onset and whose last len(onset) samples are multiplied by
// onset reversed. The envelope must fit twice into buf.
func ApplyEdges(buf, onset []float64) ([]float64, error) {
	n := len(onset)
	if err := validateLength(n); err != nil {
		return nil, err
	}
	if err := validateFit(n, len(buf)); err != nil {
		return nil, err
	}

	out := slices.Clone(buf)
	vecmath.MulBlockInPlace(out[:n], onset)

	offset := slices.Clone(onset)
	slices.Reverse(offset)
	vecmath.MulBlockInPlace(out[len(out)-n:], offset)

	return out, nil
}

func msToSamples(sampleRate int, ms float64) int {
	if sampleRate <= 0 || !(ms > 0) {
		return 0
	}
	return int(float64(sampleRate) * ms / 1000)
}
