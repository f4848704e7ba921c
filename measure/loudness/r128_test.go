package loudness

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-stimulus/internal/testutil"
)

func TestLoudness_Sine(t *testing.T) {
	sampleRate := 48000.0
	meter := NewMeter(WithSampleRate(sampleRate), WithChannels(1))

	// A full-scale sine has mean square 0.5 (-3.01 dB). The K-weighting
	// shelf adds about +0.67 dB at 1 kHz, so the meter should read
	// -0.691 - 3.01 + 0.67 = -3.03 LUFS.
	sig := testutil.DeterministicSine(1000, sampleRate, 1.0, int(sampleRate*4))
	meter.ProcessBlock(sig)

	const expected, tolerance = -3.031, 0.2

	if got := meter.Momentary(); math.Abs(got-expected) > tolerance {
		t.Errorf("Momentary = %v, want %v", got, expected)
	}

	if got := meter.Integrated(); math.Abs(got-expected) > tolerance {
		t.Errorf("Integrated = %v, want %v", got, expected)
	}
}

func TestLoudness_StereoSine(t *testing.T) {
	fs := 48000.0
	meter := NewMeter(WithSampleRate(fs), WithChannels(2))

	sig := testutil.DeterministicSine(1000, fs, 1.0, int(fs*4))
	for _, s := range sig {
		meter.ProcessSample([]float64{s, s})
	}

	// Channel powers add, so stereo reads 3.01 dB above mono.
	mono := Integrated(sig, fs)
	if got := meter.Integrated(); math.Abs(got-(mono+3.0103)) > 1e-6 {
		t.Errorf("stereo = %v, want mono %v + 3.01", got, mono)
	}
}

func TestLoudness_Silence(t *testing.T) {
	m := NewMeter()
	m.ProcessBlock(make([]float64, 48000))

	if mom := m.Momentary(); mom > -100 {
		t.Errorf("Momentary for silence = %v", mom)
	}

	if got := m.Integrated(); !math.IsInf(got, -1) {
		t.Errorf("Integrated for silence = %v, want -Inf", got)
	}
}

func TestLoudness_ShortBuffer(t *testing.T) {
	// Shorter than one 400 ms block.
	sig := testutil.DeterministicSine(1000, 48000, 1.0, 1000)

	m := NewMeter()
	m.ProcessBlock(sig)

	if m.Blocks() != 0 {
		t.Fatalf("Blocks = %d, want 0", m.Blocks())
	}

	if got := m.Integrated(); !math.IsInf(got, -1) {
		t.Errorf("Integrated = %v, want -Inf", got)
	}
}

func TestLoudness_BlockHop(t *testing.T) {
	m := NewMeter(WithSampleRate(8000))
	m.ProcessBlock(testutil.DeterministicNoise(3, 0.5, 8000))

	// 400 ms window, 100 ms hop: the first block completes at 3200
	// samples and one more follows every 800.
	if got, want := m.Blocks(), 7; got != want {
		t.Fatalf("Blocks = %d, want %d", got, want)
	}
}

func TestLoudness_Gating(t *testing.T) {
	sampleRate := 48000.0
	meter := NewMeter(WithSampleRate(sampleRate))

	highSig := testutil.DeterministicSine(1000, sampleRate, 1.0, int(sampleRate*10))
	lowSig := testutil.DeterministicSine(1000, sampleRate, 0.0001, int(sampleRate*10))

	meter.ProcessBlock(highSig)
	high := meter.Integrated()

	meter.ProcessBlock(lowSig)
	total := meter.Integrated()

	if math.Abs(high-total) > 0.1 {
		t.Errorf("gating failed: high %v, total %v", high, total)
	}
}

func TestLoudness_Reset(t *testing.T) {
	sig := testutil.DeterministicNoise(11, 0.3, 48000)

	m := NewMeter()
	m.ProcessBlock(sig)
	first := m.Integrated()

	m.Reset()
	if m.Blocks() != 0 {
		t.Fatalf("Blocks after Reset = %d", m.Blocks())
	}

	m.ProcessBlock(sig)
	if got := m.Integrated(); got != first {
		t.Fatalf("Integrated after Reset = %v, want %v", got, first)
	}
}

func TestLoudness_LowSampleRate(t *testing.T) {
	// The shelf corner sits above Nyquist and is bypassed.
	got := Integrated(testutil.DeterministicSine(200, 2000, 1.0, 4000), 2000)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("Integrated = %v", got)
	}
}
