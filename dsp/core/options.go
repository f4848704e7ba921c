package core

import "math"

const (
	// DefaultSampleRate is the sample rate used when none is configured.
	DefaultSampleRate = 48000
	// DefaultDuration is the stimulus length in seconds.
	DefaultDuration = 1
	// DefaultRenderScale is the fixed gain applied after the inverse
	// transform. It keeps pre-normalization magnitudes in a convenient
	// range and has no perceptual meaning.
	DefaultRenderScale = 100.0
	// DefaultTargetLUFS is the integrated loudness every channel is
	// normalized to.
	DefaultTargetLUFS = -14.0
)

// ProcessorConfig defines the shared settings of a stimulus pipeline.
type ProcessorConfig struct {
	SampleRate  int
	Duration    int
	RenderScale float64
	TargetLUFS  float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the legacy-compatible defaults.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:  DefaultSampleRate,
		Duration:    DefaultDuration,
		RenderScale: DefaultRenderScale,
		TargetLUFS:  DefaultTargetLUFS,
	}
}

// Timebase returns the sample rate and duration as a Timebase.
func (c ProcessorConfig) Timebase() Timebase {
	return Timebase{SampleRate: c.SampleRate, Duration: c.Duration}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the stimulus duration in whole seconds.
func WithDuration(seconds int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds > 0 {
			cfg.Duration = seconds
		}
	}
}

// WithRenderScale sets the post-transform gain.
func WithRenderScale(scale float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if scale > 0 {
			cfg.RenderScale = scale
		}
	}
}

// WithTargetLUFS sets the normalization target.
func WithTargetLUFS(lufs float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if !math.IsNaN(lufs) && !math.IsInf(lufs, 0) {
			cfg.TargetLUFS = lufs
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
