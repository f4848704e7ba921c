package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultResidualTolerance bounds max|discarded|/max|kept| in strict mode.
const DefaultResidualTolerance = 1e-6

var (
	// ErrAsymmetric reports a discarded component above tolerance in
	// strict mode.
	ErrAsymmetric = errors.New("render: discarded component exceeds tolerance")
	// ErrEmptySpectrum reports a spectrum with no bins.
	ErrEmptySpectrum = errors.New("render: empty spectrum")
)

// Extraction selects which component of the inverse transform is kept.
type Extraction int

const (
	// Real keeps the real part (cosine-basis spectra).
	Real Extraction = iota
	// Imaginary keeps the imaginary part (sine-basis spectra).
	Imaginary
)

func (e Extraction) String() string {
	if e == Imaginary {
		return "imaginary"
	}
	return "real"
}

// ForBasis returns the extraction that keeps the non-trivial component of
// a spectrum built in basis.
func ForBasis(b spectrum.Basis) Extraction {
	if b == spectrum.Sine {
		return Imaginary
	}
	return Real
}

// Renderer renders spectra to sample buffers.
type Renderer struct {
	extraction Extraction
	scale      float64
	transform  Transform
	strict     bool
	tolerance  float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithExtraction selects the kept component.
func WithExtraction(e Extraction) Option {
	return func(r *Renderer) {
		if e == Real || e == Imaginary {
			r.extraction = e
		}
	}
}

// WithScale sets the post-transform gain.
func WithScale(scale float64) Option {
	return func(r *Renderer) {
		if scale > 0 && !math.IsInf(scale, 0) {
			r.scale = scale
		}
	}
}

// WithTransform sets the inverse DFT provider.
func WithTransform(t Transform) Option {
	return func(r *Renderer) {
		if t != nil {
			r.transform = t
		}
	}
}

// WithStrict makes Render fail with ErrAsymmetric when the discarded
// component exceeds tolerance relative to the kept one.
func WithStrict(tolerance float64) Option {
	return func(r *Renderer) {
		r.strict = true
		if tolerance > 0 {
			r.tolerance = tolerance
		}
	}
}

// NewRenderer returns a Renderer with real extraction, the default scale
// and the Auto transform.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		extraction: Real,
		scale:      core.DefaultRenderScale,
		transform:  Auto(),
		tolerance:  DefaultResidualTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Extraction returns the configured extraction.
func (r *Renderer) Extraction() Extraction {
	return r.extraction
}

// Render inverse-transforms s and returns the scaled kept component.
func (r *Renderer) Render(s spectrum.Spectrum) ([]float64, error) {
	out, _, err := r.RenderWithResidual(s)
	return out, err
}

// RenderWithResidual is Render that also reports the Residual of the
// transform output.
func (r *Renderer) RenderWithResidual(s spectrum.Spectrum) ([]float64, float64, error) {
	n := s.Len()
	if n == 0 {
		return nil, 0, ErrEmptySpectrum
	}

	td := make([]complex128, n)
	if err := r.transform.Inverse(td, s.Bins); err != nil {
		return nil, 0, err
	}

	res := Residual(td, r.extraction)
	if r.strict && res > r.tolerance {
		return nil, res, fmt.Errorf("%w: residual %g > %g (%s extraction, %s basis)",
			ErrAsymmetric, res, r.tolerance, r.extraction, s.Basis)
	}

	out := make([]float64, n)
	for i, v := range td {
		if r.extraction == Imaginary {
			out[i] = imag(v)
		} else {
			out[i] = real(v)
		}
	}

	vecmath.ScaleBlock(out, out, r.scale)
	return out, res, nil
}

// Residual returns max|discarded| / max|kept| for a time-domain buffer.
// It is 0 when both components vanish and +Inf when only the discarded
// one is non-zero.
func Residual(td []complex128, e Extraction) float64 {
	var kept, discarded float64
	for _, v := range td {
		re, im := math.Abs(real(v)), math.Abs(imag(v))
		if e == Imaginary {
			re, im = im, re
		}
		kept = math.Max(kept, re)
		discarded = math.Max(discarded, im)
	}

	switch {
	case discarded == 0:
		return 0
	case kept == 0:
		return math.Inf(1)
	}
	return discarded / kept
}
