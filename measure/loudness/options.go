package loudness

import (
	"math"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// MeterConfig defines configuration for the loudness meter.
type MeterConfig struct {
	SampleRate float64
	Channels   int
}

// MeterOption mutates a MeterConfig.
type MeterOption func(*MeterConfig)

// DefaultMeterConfig returns a mono meter at the default sample rate.
func DefaultMeterConfig() MeterConfig {
	return MeterConfig{
		SampleRate: core.DefaultSampleRate,
		Channels:   1,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) MeterOption {
	return func(cfg *MeterConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChannels sets the number of channels (1 for mono, 2 for stereo).
func WithChannels(channels int) MeterOption {
	return func(cfg *MeterConfig) {
		if channels == 1 || channels == 2 {
			cfg.Channels = channels
		}
	}
}

// ApplyMeterOptions applies zero or more options to the default config.
func ApplyMeterOptions(opts ...MeterOption) MeterConfig {
	cfg := DefaultMeterConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
