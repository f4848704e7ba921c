package loudness

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrSilentSignal reports a buffer whose loudness is undefined.
	ErrSilentSignal = errors.New("loudness: silent signal")
	// ErrInvalidSampleRate reports a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("loudness: invalid sample rate")
)

// Gain returns the linear gain that moves measured to target.
func Gain(measured, target float64) (float64, error) {
	if !core.IsFinite(measured) {
		return 0, fmt.Errorf("%w: measured %v LUFS", ErrSilentSignal, measured)
	}
	if !core.IsFinite(target) {
		return 0, fmt.Errorf("loudness: non-finite target %v LUFS", target)
	}

	return core.DBToLinear(target - measured), nil
}

// Normalize returns buf scaled by 10^((target-measured)/20). buf is not
// modified.
func Normalize(buf []float64, sampleRate, measured, target float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	g, err := Gain(measured, target)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(buf))
	vecmath.ScaleBlock(out, buf, g)

	return out, nil
}

// Normalizer measures a buffer and scales it to Target.
type Normalizer struct {
	Meter  Measurer
	Target float64
}

// NewNormalizer returns a Normalizer using the BS.1770 meter.
func NewNormalizer(target float64) *Normalizer {
	return &Normalizer{Meter: BS1770, Target: target}
}

// Normalize measures buf and returns the normalized copy together with
// the measured loudness.
func (n *Normalizer) Normalize(buf []float64, sampleRate float64) ([]float64, float64, error) {
	meter := n.Meter
	if meter == nil {
		meter = BS1770
	}

	measured := meter.Integrated(buf, sampleRate)

	out, err := Normalize(buf, sampleRate, measured, n.Target)
	if err != nil {
		return nil, measured, err
	}

	return out, measured, nil
}
