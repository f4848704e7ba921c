package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// BinRange is a half-open bin interval [Low, High).
type BinRange struct {
	Low, High int
}

// Width returns High-Low.
func (r BinRange) Width() int {
	return r.High - r.Low
}

// Offset returns the range moved by delta bins.
func (r BinRange) Offset(delta int) BinRange {
	return BinRange{Low: r.Low + delta, High: r.High + delta}
}

// Validate checks 0 <= Low <= High <= nyquist.
func (r BinRange) Validate(nyquist int) error {
	if r.Low < 0 || r.High < 0 || r.Low > r.High || r.High > nyquist {
		return fmt.Errorf("%w: [%d, %d) with nyquist %d", ErrInvalidRange, r.Low, r.High, nyquist)
	}
	return nil
}

// Passband describes a band of noise by center frequency and bandwidth.
type Passband struct {
	CenterHz    float64
	BandwidthHz float64
}

// Bins converts the passband to a bin range for tb. Edges are rounded to
// the nearest bin, so (1000 Hz, 200 Hz) at 1 s gives [900, 1100).
func (p Passband) Bins(tb core.Timebase) (BinRange, error) {
	if err := tb.Validate(); err != nil {
		return BinRange{}, err
	}

	if !core.IsFinite(p.CenterHz) || !core.IsFinite(p.BandwidthHz) || p.BandwidthHz < 0 {
		return BinRange{}, fmt.Errorf("%w: passband %+v", ErrInvalidRange, p)
	}

	r := BinRange{
		Low:  tb.HzToBin(p.LowHz()),
		High: tb.HzToBin(p.HighHz()),
	}
	if err := r.Validate(tb.NyquistBin()); err != nil {
		return BinRange{}, err
	}

	return r, nil
}

// FullBand returns the passband covering [0, NyquistBin) of tb.
func FullBand(tb core.Timebase) Passband {
	nyquistHz := tb.BinToHz(tb.NyquistBin())
	return Passband{CenterHz: nyquistHz / 2, BandwidthHz: nyquistHz}
}

// LowHz returns the lower edge frequency.
func (p Passband) LowHz() float64 {
	return p.CenterHz - p.BandwidthHz/2
}

// HighHz returns the upper edge frequency.
func (p Passband) HighHz() float64 {
	return p.CenterHz + p.BandwidthHz/2
}

func (p Passband) String() string {
	return fmt.Sprintf("%g±%g Hz", p.CenterHz, math.Abs(p.BandwidthHz)/2)
}
