package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// Generator creates pure tones on a shared timebase.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured tone generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates samples of amplitude*sin(2*pi*freqHz*t) starting at t = 0.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %d", g.cfg.SampleRate)
	}
	if !core.IsFinite(freqHz) || freqHz < 0 || freqHz > float64(g.cfg.SampleRate)/2 {
		return nil, fmt.Errorf("sine frequency must be in [0, %d]: %f", g.cfg.SampleRate/2, freqHz)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / float64(g.cfg.SampleRate)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Tone generates a unit-amplitude sine spanning the configured timebase.
func (g *Generator) Tone(freqHz float64) ([]float64, error) {
	return g.Sine(freqHz, 1, g.cfg.Timebase().TotalBins())
}

// BeatPair returns tones at freqHz and freqHz+beatHz. Played dichotically
// they produce a binaural beat at beatHz.
func (g *Generator) BeatPair(freqHz, beatHz float64) (left, right []float64, err error) {
	if left, err = g.Tone(freqHz); err != nil {
		return nil, nil, fmt.Errorf("left tone: %w", err)
	}
	if right, err = g.Tone(freqHz + beatHz); err != nil {
		return nil, nil, fmt.Errorf("right tone: %w", err)
	}
	return left, right, nil
}
