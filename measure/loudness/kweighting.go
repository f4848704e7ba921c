package loudness

import "math"

// The K-weighting coefficients match what the algo-dsp loudness Meter
// builds in reconfigure (measure/loudness/meter.go) via
// design.HighShelf(1500, 4, 1/√2, fs) and design.Highpass(38, 1/√2, fs):
// RBJ cookbook high shelf and high-pass sections, here in plain Go
// without the biquad package's SIMD dispatch.

// K-weighting stage parameters (BS.1770 pre-filter and RLB highpass).
const (
	shelfFreq   = 1500.0
	shelfGainDB = 4.0
	hpfFreq     = 38.0
)

// biquad is a Direct Form II Transposed second-order section with a0
// normalized to 1.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	d0, d1 float64
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.d0
	f.d0 = f.b1*x - f.a1*y + f.d1
	f.d1 = f.b2*x - f.a2*y

	return y
}

func (f *biquad) reset() {
	f.d0, f.d1 = 0, 0
}

// passthrough is used when a corner frequency does not fit below Nyquist.
func passthrough() biquad {
	return biquad{b0: 1}
}

func normalized(b0, b1, b2, a0, a1, a2 float64) biquad {
	return biquad{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

func omega(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

// highShelf is the RBJ high-shelf design.
func highShelf(freq, gainDB, q, sampleRate float64) biquad {
	w0, ok := omega(freq, sampleRate)
	if !ok {
		return passthrough()
	}

	cw, sw := math.Cos(w0), math.Sin(w0)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * sw / (2 * q)

	return normalized(
		a*((a+1)+(a-1)*cw+beta),
		-2*a*((a-1)+(a+1)*cw),
		a*((a+1)+(a-1)*cw-beta),
		(a+1)-(a-1)*cw+beta,
		2*((a-1)-(a+1)*cw),
		(a+1)-(a-1)*cw-beta,
	)
}

// highpass is the RBJ second-order highpass design.
func highpass(freq, q, sampleRate float64) biquad {
	w0, ok := omega(freq, sampleRate)
	if !ok {
		return passthrough()
	}

	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * q)

	return normalized(
		(1+cw)/2,
		-(1 + cw),
		(1+cw)/2,
		1+alpha,
		-2*cw,
		1-alpha,
	)
}

// kFilter is the two-stage K-weighting filter for one channel.
type kFilter struct {
	shelf, hpf biquad
}

func newKFilter(sampleRate float64) kFilter {
	q := 1 / math.Sqrt2

	return kFilter{
		shelf: highShelf(shelfFreq, shelfGainDB, q, sampleRate),
		hpf:   highpass(hpfFreq, q, sampleRate),
	}
}

func (k *kFilter) process(x float64) float64 {
	return k.hpf.process(k.shelf.process(x))
}

func (k *kFilter) reset() {
	k.shelf.reset()
	k.hpf.reset()
}
