package noise

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
)

// ErrUnknownPhaseMode reports an unsupported PhaseMode.
var ErrUnknownPhaseMode = errors.New("unknown phase mode")

// PhaseMode selects how in-band bins are drawn.
type PhaseMode int

const (
	// ComplexGaussian draws real and imaginary parts independently from a
	// standard normal distribution (random amplitude and phase).
	ComplexGaussian PhaseMode = iota
	// UnitPhase places a unit-magnitude sample at a random phase.
	UnitPhase
)

func (m PhaseMode) String() string {
	switch m {
	case ComplexGaussian:
		return "complex-gaussian"
	case UnitPhase:
		return "unit-phase"
	}
	return "unknown"
}

// Builder draws band-limited noise spectra.
type Builder struct {
	rng  *rand.Rand
	seed int64
}

// Option configures a Builder.
type Option func(*Builder)

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) Option {
	return func(b *Builder) {
		b.seed = seed
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// NewBuilder returns a Builder seeded with 1 unless WithSeed is given.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{seed: 1}
	b.rng = rand.New(rand.NewSource(b.seed))
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Seed returns the seed the builder was created with.
func (b *Builder) Seed() int64 {
	return b.seed
}

// Build returns a cosine-basis spectrum with noise in the passband.
func (b *Builder) Build(tb core.Timebase, p spectrum.Passband, mode PhaseMode) (spectrum.Spectrum, error) {
	return b.BuildBasis(tb, p, mode, spectrum.Cosine)
}

// BuildBasis returns a spectrum of tb.TotalBins() bins whose independent
// half holds noise in the passband bins [low, high) and zero elsewhere,
// mirrored according to basis.
func (b *Builder) BuildBasis(tb core.Timebase, p spectrum.Passband, mode PhaseMode, basis spectrum.Basis) (spectrum.Spectrum, error) {
	if mode != ComplexGaussian && mode != UnitPhase {
		return spectrum.Spectrum{}, fmt.Errorf("%w: %d", ErrUnknownPhaseMode, mode)
	}

	r, err := p.Bins(tb)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	half := make([]complex128, tb.NyquistBin())
	b.fill(half[r.Low:r.High], mode)

	return spectrum.FromHalf(half, tb.TotalBins(), basis)
}

func (b *Builder) fill(band []complex128, mode PhaseMode) {
	switch mode {
	case ComplexGaussian:
		for i := range band {
			re := b.rng.NormFloat64()
			im := b.rng.NormFloat64()
			band[i] = complex(re, im)
		}
	case UnitPhase:
		for i := range band {
			band[i] = cmplx.Rect(1, unitPhase(b.rng))
		}
	}
}

// unitPhase draws a phase with standard deviation π around zero. Legacy
// stimuli were generated with this normal draw instead of a uniform one
// and their spectra depend on it.
func unitPhase(rng *rand.Rand) float64 {
	return rng.NormFloat64() * math.Pi
}
