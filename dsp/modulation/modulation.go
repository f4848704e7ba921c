package modulation

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidParameter reports an out-of-range modulation parameter.
var ErrInvalidParameter = errors.New("modulation: invalid parameter")

// startPhase puts the modulator at its minimum on sample 0.
const startPhase = 3 * math.Pi / 2

func validate(n, sampleRate int, freq float64) error {
	if n < 0 {
		return fmt.Errorf("%w: length must be >= 0: %d", ErrInvalidParameter, n)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidParameter, sampleRate)
	}
	if !(freq > 0) || math.IsInf(freq, 0) || freq > float64(sampleRate)/2 {
		return fmt.Errorf("%w: frequency must be in (0, %d]: %f", ErrInvalidParameter, sampleRate/2, freq)
	}
	return nil
}

func validateDepth(depth float64) error {
	if !(depth >= 0 && depth <= 1) {
		return fmt.Errorf("%w: depth must be in [0, 1]: %f", ErrInvalidParameter, depth)
	}
	return nil
}

// SinusoidalEnvelope returns (1 + depth*sin(2*pi*freq/sampleRate*i + 3*pi/2)) / (1 + depth)
// for i in [0, n). The envelope peaks at 1.
func SinusoidalEnvelope(n, sampleRate int, freq, depth float64) ([]float64, error) {
	if err := validate(n, sampleRate, freq); err != nil {
		return nil, err
	}
	if err := validateDepth(depth); err != nil {
		return nil, err
	}

	step := 2 * math.Pi * freq / float64(sampleRate)
	env := make([]float64, n)
	for i := range env {
		env[i] = (1 + depth*math.Sin(step*float64(i)+startPhase)) / (1 + depth)
	}

	return env, nil
}

// HalfSineEnvelope is SinusoidalEnvelope with every odd modulation period
// held at the modulator minimum, so only the first half of each
// two-period cycle follows the sine.
func HalfSineEnvelope(n, sampleRate int, freq, depth float64) ([]float64, error) {
	env, err := SinusoidalEnvelope(n, sampleRate, freq, depth)
	if err != nil {
		return nil, err
	}

	low := (1 - depth) / (1 + depth)
	for i := range env {
		if int(math.Floor(float64(i)*freq/float64(sampleRate)))%2 == 1 {
			env[i] = low
		}
	}

	return env, nil
}

// Sinusoidal returns buf multiplied by SinusoidalEnvelope.
func Sinusoidal(buf []float64, sampleRate int, freq, depth float64) ([]float64, error) {
	env, err := SinusoidalEnvelope(len(buf), sampleRate, freq, depth)
	if err != nil {
		return nil, err
	}
	return Apply(buf, env)
}

// HalfSine returns buf multiplied by HalfSineEnvelope.
func HalfSine(buf []float64, sampleRate int, freq, depth float64) ([]float64, error) {
	env, err := HalfSineEnvelope(len(buf), sampleRate, freq, depth)
	if err != nil {
		return nil, err
	}
	return Apply(buf, env)
}

// Apply returns buf multiplied sample by sample with env.
func Apply(buf, env []float64) ([]float64, error) {
	if len(buf) != len(env) {
		return nil, fmt.Errorf("%w: buffer length %d, envelope length %d", ErrInvalidParameter, len(buf), len(env))
	}

	out := make([]float64, len(buf))
	vecmath.MulBlock(out, buf, env)

	return out, nil
}

// Quadrature returns sin and cos carriers at freq, both starting at phase
// zero of the sine.
func Quadrature(n, sampleRate int, freq float64) (sin, cos []float64, err error) {
	if err := validate(n, sampleRate, freq); err != nil {
		return nil, nil, err
	}

	step := 2 * math.Pi * freq / float64(sampleRate)
	sin = make([]float64, n)
	cos = make([]float64, n)
	for i := range n {
		sin[i], cos[i] = math.Sincos(step * float64(i))
	}

	return sin, cos, nil
}

// CosinePan returns complementary level envelopes (1+cos)/2 for the left
// channel and the same curve shifted by pi for the right. Their sum is 1.
func CosinePan(n, sampleRate int, freq float64) (left, right []float64, err error) {
	_, cos, err := Quadrature(n, sampleRate, freq)
	if err != nil {
		return nil, nil, err
	}

	left = make([]float64, n)
	right = make([]float64, n)
	for i, c := range cos {
		left[i] = (1 + c) / 2
		right[i] = (1 - c) / 2
	}

	return left, right, nil
}
