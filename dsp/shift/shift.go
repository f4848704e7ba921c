package shift

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
)

var (
	// ErrInvalidDelay reports a negative phase-ramp delay.
	ErrInvalidDelay = errors.New("invalid delay")
	// ErrUnknownStrategy reports an unsupported Strategy.
	ErrUnknownStrategy = errors.New("unknown shift strategy")
)

// Strategy selects the spectral transformation.
type Strategy int

const (
	// Translate re-places the band at [low+Δ, high+Δ).
	Translate Strategy = iota
	// Rotate circularly rotates the in-band samples by Δ positions.
	Rotate
	// PhaseRampDelay multiplies in-band bin k by exp(i·2π·(k/Duration)·delay).
	PhaseRampDelay
)

func (s Strategy) String() string {
	switch s {
	case Translate:
		return "translate"
	case Rotate:
		return "rotate"
	case PhaseRampDelay:
		return "phase-ramp-delay"
	}
	return "unknown"
}

// Direction is the sign of a shift.
type Direction int

const (
	// TowardHigher shifts up in frequency (or delays with a positive ramp).
	TowardHigher Direction = iota
	// TowardLower shifts down in frequency.
	TowardLower
)

// Sign returns +1 or -1.
func (d Direction) Sign() int {
	if d == TowardLower {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == TowardLower {
		return "toward-lower"
	}
	return "toward-higher"
}

// ParseDirection accepts "toward-higher"/"higher"/"right" and
// "toward-lower"/"lower"/"left".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "toward-higher", "higher", "right":
		return TowardHigher, nil
	case "toward-lower", "lower", "left":
		return TowardLower, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Spec parameterizes a shift.
type Spec struct {
	ShiftHz   float64
	Direction Direction
	// DelayMs is used by PhaseRampDelay only.
	DelayMs float64
}

// ShiftBin returns ShiftHz converted to whole bins.
func (s Spec) ShiftBin(tb core.Timebase) int {
	return tb.HzToBin(s.ShiftHz)
}

// SignedShiftBin returns ShiftBin with the direction applied.
func (s Spec) SignedShiftBin(tb core.Timebase) int {
	return s.Direction.Sign() * s.ShiftBin(tb)
}

// Validate checks the parameters used by strategy.
func (s Spec) Validate(strategy Strategy) error {
	switch strategy {
	case Translate, Rotate:
		if !core.IsFinite(s.ShiftHz) || s.ShiftHz < 0 {
			return fmt.Errorf("%w: shift must be >= 0 Hz: %v", spectrum.ErrInvalidRange, s.ShiftHz)
		}
	case PhaseRampDelay:
		if !core.IsFinite(s.DelayMs) || s.DelayMs < 0 {
			return fmt.Errorf("%w: delay must be >= 0 ms: %v", ErrInvalidDelay, s.DelayMs)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}
	return nil
}

// Apply returns a new spectrum derived from src by strategy. passband
// names the band src was built with; src itself is not modified.
func Apply(src spectrum.Spectrum, tb core.Timebase, passband spectrum.Passband, spec Spec, strategy Strategy) (spectrum.Spectrum, error) {
	band, err := passband.Bins(tb)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	out, _, err := ApplyRange(src, tb, band, spec, strategy)
	return out, err
}

// ApplyRange is Apply on an explicit bin range. It also returns the range
// the content occupies afterwards, so strategies can be chained without
// re-rounding edges in Hz.
func ApplyRange(src spectrum.Spectrum, tb core.Timebase, band spectrum.BinRange, spec Spec, strategy Strategy) (spectrum.Spectrum, spectrum.BinRange, error) {
	if err := spec.Validate(strategy); err != nil {
		return spectrum.Spectrum{}, band, err
	}
	if err := tb.Validate(); err != nil {
		return spectrum.Spectrum{}, band, err
	}
	if err := band.Validate(tb.NyquistBin()); err != nil {
		return spectrum.Spectrum{}, band, err
	}

	if src.Len() != tb.TotalBins() {
		return spectrum.Spectrum{}, band, fmt.Errorf("%w: spectrum has %d bins, timebase wants %d",
			spectrum.ErrInvalidRange, src.Len(), tb.TotalBins())
	}

	content := src.Band(band)
	half := make([]complex128, tb.NyquistBin())
	dst := band

	switch strategy {
	case Translate:
		dst = band.Offset(spec.SignedShiftBin(tb))
		if err := dst.Validate(tb.NyquistBin()); err != nil {
			return spectrum.Spectrum{}, band, fmt.Errorf("translated band: %w", err)
		}
		copy(half[dst.Low:dst.High], content)
	case Rotate:
		copy(half[band.Low:band.High], rotate(content, spec.SignedShiftBin(tb)))
	case PhaseRampDelay:
		copy(half[band.Low:band.High], phaseRamp(content, tb, spec.DelayMs, spec.Direction.Sign()))
	}

	out, err := spectrum.FromHalf(half, tb.TotalBins(), src.Basis)
	if err != nil {
		return spectrum.Spectrum{}, band, err
	}
	return out, dst, nil
}

// rotate moves band[i] to position (i+by) mod n.
func rotate(band []complex128, by int) []complex128 {
	n := len(band)
	out := make([]complex128, n)
	if n == 0 {
		return out
	}

	by %= n
	if by < 0 {
		by += n
	}

	copy(out[by:], band[:n-by])
	copy(out[:by], band[n-by:])
	return out
}

func phaseRamp(band []complex128, tb core.Timebase, delayMs float64, sign int) []complex128 {
	out := make([]complex128, len(band))
	for k, v := range band {
		phi := 2 * math.Pi * tb.BinToHz(k) * delayMs * float64(sign) / 1000
		out[k] = v * cmplx.Exp(complex(0, phi))
	}
	return out
}
