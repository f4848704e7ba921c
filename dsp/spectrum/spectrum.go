package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Basis selects how the upper half of a spectrum mirrors the lower half.
type Basis int

const (
	// Cosine mirrors X[N-k] = conj(X[k]); the inverse transform is real.
	Cosine Basis = iota
	// Sine mirrors X[N-k] = -conj(X[k]); the inverse transform is imaginary.
	Sine
)

func (b Basis) String() string {
	switch b {
	case Cosine:
		return "cosine"
	case Sine:
		return "sine"
	}
	return "unknown"
}

func (b Basis) mirror(v complex128) complex128 {
	if b == Sine {
		return -cmplx.Conj(v)
	}
	return cmplx.Conj(v)
}

// Spectrum is a full-length, mirrored frequency-domain buffer.
//
// Values are produced by FromHalf and treated as immutable afterwards;
// transformations return new spectra.
type Spectrum struct {
	Bins  []complex128
	Basis Basis
}

// FromHalf builds a symmetric spectrum of totalBins bins from the
// independent half. half must have exactly totalBins/2 entries. DC and
// the Nyquist region are forced to zero.
func FromHalf(half []complex128, totalBins int, basis Basis) (Spectrum, error) {
	nyquist := totalBins / 2
	if totalBins < 2 || len(half) != nyquist {
		return Spectrum{}, fmt.Errorf("%w: half length %d for %d bins", ErrInvalidRange, len(half), totalBins)
	}

	bins := make([]complex128, totalBins)
	copy(bins[1:nyquist], half[1:])
	for k := 1; k < nyquist; k++ {
		bins[totalBins-k] = basis.mirror(bins[k])
	}

	return Spectrum{Bins: bins, Basis: basis}, nil
}

// Len returns the number of bins.
func (s Spectrum) Len() int {
	return len(s.Bins)
}

// NyquistBin returns Len()/2.
func (s Spectrum) NyquistBin() int {
	return len(s.Bins) / 2
}

// Half returns a copy of the independent half [0, NyquistBin).
func (s Spectrum) Half() []complex128 {
	half := make([]complex128, s.NyquistBin())
	copy(half, s.Bins)
	return half
}

// Band returns a copy of the bins in r.
func (s Spectrum) Band(r BinRange) []complex128 {
	out := make([]complex128, r.Width())
	copy(out, s.Bins[r.Low:r.High])
	return out
}

// Validate checks DC and the mirror relation of the spectrum's basis for
// every pair within tol (absolute). tol 0 demands exact equality.
func (s Spectrum) Validate(tol float64) error {
	n := len(s.Bins)
	if n == 0 {
		return fmt.Errorf("%w: empty spectrum", ErrNotSymmetric)
	}

	if cmplx.Abs(s.Bins[0]) > tol {
		return fmt.Errorf("%w: DC = %v", ErrNotSymmetric, s.Bins[0])
	}

	for k := 1; k < n/2; k++ {
		want := s.Basis.mirror(s.Bins[k])
		if cmplx.Abs(s.Bins[n-k]-want) > tol {
			return fmt.Errorf("%w: bin %d = %v, mirror of %d wants %v", ErrNotSymmetric, n-k, s.Bins[n-k], k, want)
		}
	}

	return nil
}

// Magnitude returns |X[k]| for each bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im := split(in)
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im := split(in)
	vecmath.Power(out, re, im)
	return out
}

// BandEnergy returns the summed power of the bins in r.
func (s Spectrum) BandEnergy(r BinRange) float64 {
	sum := 0.0
	for _, p := range Power(s.Bins[r.Low:r.High]) {
		sum += p
	}
	return sum
}

func split(in []complex128) (re, im []float64) {
	re = make([]float64, len(in))
	im = make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
