package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTimebase reports a non-positive sample rate or duration.
var ErrInvalidTimebase = errors.New("invalid timebase")

// Timebase fixes the sample rate and whole-second duration of an offline
// buffer. One spectrum bin spans 1/Duration Hz, so a full spectrum has
// exactly as many bins as the rendered buffer has samples.
type Timebase struct {
	SampleRate int // Hz
	Duration   int // seconds
}

// Validate reports whether both fields are positive.
func (tb Timebase) Validate() error {
	if tb.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidTimebase, tb.SampleRate)
	}

	if tb.Duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0: %d", ErrInvalidTimebase, tb.Duration)
	}

	return nil
}

// TotalBins returns SampleRate*Duration, the length of a full spectrum and
// of the rendered buffer.
func (tb Timebase) TotalBins() int {
	return tb.SampleRate * tb.Duration
}

// NyquistBin returns TotalBins/2 (floor).
func (tb Timebase) NyquistBin() int {
	return tb.TotalBins() / 2
}

// HzToBin converts a frequency to the nearest bin index.
func (tb Timebase) HzToBin(hz float64) int {
	return int(math.Round(hz * float64(tb.Duration)))
}

// BinToHz converts a bin index (absolute or relative) to Hz.
func (tb Timebase) BinToHz(bin int) float64 {
	return float64(bin) / float64(tb.Duration)
}

// MsToSamples converts milliseconds to a sample count, truncating.
func (tb Timebase) MsToSamples(ms float64) int {
	return int(float64(tb.SampleRate) * ms / 1000)
}
