package loudness

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-stimulus/internal/testutil"
)

func TestNormalizeGain(t *testing.T) {
	out, err := Normalize([]float64{1, -2, 0.5}, 48000, -20, -14)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	g := math.Pow(10, 6.0/20)
	testutil.RequireSliceNearlyEqual(t, out, []float64{g, -2 * g, 0.5 * g}, 1e-12)
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	in := []float64{0.1, 0.2}
	if _, err := Normalize(in, 48000, -30, -14); err != nil {
		t.Fatal(err)
	}

	if in[0] != 0.1 || in[1] != 0.2 {
		t.Fatalf("input modified: %v", in)
	}
}

func TestNormalizeSilentSignal(t *testing.T) {
	zeros := make([]float64, 8000)
	measured := Integrated(zeros, 8000)

	out, err := Normalize(zeros, 8000, measured, -14)
	if !errors.Is(err, ErrSilentSignal) {
		t.Fatalf("Normalize() error = %v, want ErrSilentSignal", err)
	}

	if out != nil {
		t.Fatalf("Normalize() returned %d samples on error", len(out))
	}

	for _, m := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Normalize([]float64{1}, 8000, m, -14); !errors.Is(err, ErrSilentSignal) {
			t.Errorf("measured %v: error = %v, want ErrSilentSignal", m, err)
		}
	}
}

func TestNormalizeInvalidSampleRate(t *testing.T) {
	if _, err := Normalize([]float64{1}, 0, -20, -14); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestNormalizerIdempotent(t *testing.T) {
	const sampleRate = 16000.0

	sig := testutil.DeterministicNoise(5, 0.8, int(sampleRate*2))
	n := NewNormalizer(-14)

	once, _, err := n.Normalize(sig, sampleRate)
	if err != nil {
		t.Fatalf("first Normalize() error = %v", err)
	}

	if got := Integrated(once, sampleRate); math.Abs(got+14) > 1e-6 {
		t.Fatalf("loudness after normalize = %v, want -14", got)
	}

	twice, measured, err := n.Normalize(once, sampleRate)
	if err != nil {
		t.Fatalf("second Normalize() error = %v", err)
	}

	if math.Abs(measured+14) > 1e-6 {
		t.Fatalf("measured = %v, want -14", measured)
	}

	testutil.RequireSliceNearlyEqual(t, twice, once, 1e-9)
}

func TestNormalizerCustomMeter(t *testing.T) {
	n := &Normalizer{
		Meter:  MeasurerFunc(func([]float64, float64) float64 { return -34 }),
		Target: -14,
	}

	out, measured, err := n.Normalize([]float64{0.5}, 48000)
	if err != nil {
		t.Fatal(err)
	}

	if measured != -34 {
		t.Fatalf("measured = %v", measured)
	}

	if math.Abs(out[0]-5) > 1e-12 {
		t.Fatalf("out = %v, want 5", out[0])
	}
}
