package stimulus

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/shift"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
	"github.com/cwbudde/algo-stimulus/dsp/stereo"
)

// ErrInvalidConfig reports a configuration that cannot be generated.
var ErrInvalidConfig = errors.New("stimulus: invalid config")

// ModulationKind selects the amplitude modulator applied after
// normalization.
type ModulationKind int

const (
	NoModulation ModulationKind = iota
	SinusoidalModulation
	HalfSineModulation
)

func (k ModulationKind) String() string {
	switch k {
	case SinusoidalModulation:
		return "sinusoidal"
	case HalfSineModulation:
		return "half-sine"
	}
	return "none"
}

// ParseModulation maps a modulator name to its kind.
func ParseModulation(s string) (ModulationKind, error) {
	for _, k := range []ModulationKind{NoModulation, SinusoidalModulation, HalfSineModulation} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown modulation %q", ErrInvalidConfig, s)
}

// WindowKind selects the onset/offset envelope.
type WindowKind int

const (
	NoWindow WindowKind = iota
	RaisedCosineWindow
	CosineRampWindow
)

func (k WindowKind) String() string {
	switch k {
	case RaisedCosineWindow:
		return "raised-cosine"
	case CosineRampWindow:
		return "cosine-ramp"
	}
	return "none"
}

// ParseWindow maps a window name to its kind.
func ParseWindow(s string) (WindowKind, error) {
	for _, k := range []WindowKind{NoWindow, RaisedCosineWindow, CosineRampWindow} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown window %q", ErrInvalidConfig, s)
}

// Modulation configures amplitude modulation.
type Modulation struct {
	Kind   ModulationKind
	FreqHz float64
	Depth  float64
}

// Window configures onset/offset shaping.
type Window struct {
	Kind     WindowKind
	Beta     float64
	LengthMs float64
}

// Config holds every parameter of a generation request.
type Config struct {
	Preset Preset

	SampleRate int
	Duration   int

	CenterHz    float64
	BandwidthHz float64

	// ShiftHz is the translation or rotation for shift presets, the carrier
	// rate for Oscar and ILD and the beat frequency for BinauralBeat.
	ShiftHz   float64
	Direction shift.Direction
	DelayMs   float64

	// ToneHz is the left tone of BinauralBeat.
	ToneHz float64

	// Relation is used by Bandpass only.
	Relation stereo.Relation

	Seed        int64
	RenderScale float64
	TargetLUFS  float64

	// StrictRender fails generation when the discarded component of the
	// inverse transform exceeds render.DefaultResidualTolerance.
	StrictRender bool

	Modulation Modulation
	Window     Window
}

// DefaultConfig returns the settings the preset was historically run
// with.
func DefaultConfig(p Preset) Config {
	pc := core.DefaultProcessorConfig()

	cfg := Config{
		Preset:      p,
		SampleRate:  pc.SampleRate,
		Duration:    pc.Duration,
		CenterHz:    1000,
		BandwidthHz: 400,
		Direction:   shift.TowardHigher,
		Relation:    stereo.Independent,
		Seed:        1,
		RenderScale: pc.RenderScale,
		TargetLUFS:  pc.TargetLUFS,
		Modulation:  Modulation{Kind: NoModulation, FreqHz: 4, Depth: 1},
		Window:      Window{Kind: NoWindow, Beta: 0.5, LengthMs: 10},
	}

	switch p {
	case Akeroyd, PhaseWarp:
		cfg.ShiftHz = 50
	case PDShift:
		cfg.ShiftHz = 50
		cfg.DelayMs = 1
	case PhaseDelay:
		cfg.DelayMs = 0.5
	case Oscar:
		cfg.ShiftHz = 2
	case ILD:
		cfg.ShiftHz = 1
	case BinauralBeat:
		cfg.ToneHz = 440
		cfg.ShiftHz = 4
	}

	return cfg
}

// Timebase returns the sample rate and duration as a Timebase.
func (c Config) Timebase() core.Timebase {
	return core.Timebase{SampleRate: c.SampleRate, Duration: c.Duration}
}

// Passband returns the noise band of the preset. PhaseDelay always uses
// the full band.
func (c Config) Passband() spectrum.Passband {
	if c.Preset == PhaseDelay {
		return spectrum.FullBand(c.Timebase())
	}
	return spectrum.Passband{CenterHz: c.CenterHz, BandwidthHz: c.BandwidthHz}
}

// ShiftSpec returns the shift parameters.
func (c Config) ShiftSpec() shift.Spec {
	return shift.Spec{ShiftHz: c.ShiftHz, Direction: c.Direction, DelayMs: c.DelayMs}
}

// Validate checks c before any spectrum is built. Errors wrap the
// sentinel of the package that owns the violated constraint.
func (c Config) Validate() error {
	if !c.Preset.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPreset, int(c.Preset))
	}

	tb := c.Timebase()
	if err := tb.Validate(); err != nil {
		return err
	}

	if !(c.RenderScale > 0) || !core.IsFinite(c.RenderScale) {
		return fmt.Errorf("%w: render scale must be > 0: %v", ErrInvalidConfig, c.RenderScale)
	}
	if !core.IsFinite(c.TargetLUFS) {
		return fmt.Errorf("%w: target loudness must be finite: %v", ErrInvalidConfig, c.TargetLUFS)
	}

	if err := c.validatePreset(tb); err != nil {
		return err
	}

	return c.validatePost(tb)
}

func (c Config) validatePreset(tb core.Timebase) error {
	nyquistHz := float64(tb.SampleRate) / 2

	switch c.Preset {
	case BinauralBeat:
		if !(c.ToneHz > 0) || c.ToneHz+c.ShiftHz > nyquistHz || c.ShiftHz < 0 {
			return fmt.Errorf("%w: tones %v and %v Hz must lie in (0, %v]",
				ErrInvalidConfig, c.ToneHz, c.ToneHz+c.ShiftHz, nyquistHz)
		}
		return nil
	case Oscar, ILD:
		if !(c.ShiftHz > 0) || c.ShiftHz > nyquistHz {
			return fmt.Errorf("%w: carrier must lie in (0, %v] Hz: %v", ErrInvalidConfig, nyquistHz, c.ShiftHz)
		}
	}

	band, err := c.Passband().Bins(tb)
	if err != nil {
		return err
	}

	spec := c.ShiftSpec()
	switch c.Preset {
	case Bandpass:
		if c.Relation != stereo.Independent && c.Relation != stereo.SamePhase && c.Relation != stereo.AntiPhase {
			return fmt.Errorf("%w: %d", stereo.ErrUnknownRelation, int(c.Relation))
		}
	case Akeroyd, PDShift:
		if err := spec.Validate(shift.Translate); err != nil {
			return err
		}
		if err := band.Offset(spec.SignedShiftBin(tb)).Validate(tb.NyquistBin()); err != nil {
			return fmt.Errorf("translated band: %w", err)
		}
		if c.Preset == PDShift {
			return spec.Validate(shift.PhaseRampDelay)
		}
	case PhaseWarp:
		return spec.Validate(shift.Rotate)
	case PhaseDelay:
		return spec.Validate(shift.PhaseRampDelay)
	}

	return nil
}

func (c Config) validatePost(tb core.Timebase) error {
	n := tb.TotalBins()

	switch c.Modulation.Kind {
	case NoModulation:
	case SinusoidalModulation, HalfSineModulation:
		m := c.Modulation
		if !(m.FreqHz > 0) || m.FreqHz > float64(tb.SampleRate)/2 || !(m.Depth >= 0 && m.Depth <= 1) {
			return fmt.Errorf("%w: modulation %+v", ErrInvalidConfig, m)
		}
	default:
		return fmt.Errorf("%w: unknown modulation %d", ErrInvalidConfig, int(c.Modulation.Kind))
	}

	switch c.Window.Kind {
	case NoWindow:
	case RaisedCosineWindow, CosineRampWindow:
		w := c.Window
		length := tb.MsToSamples(w.LengthMs)
		if !(w.LengthMs > 0) || length <= 0 || 2*length > n {
			return fmt.Errorf("%w: window of %v ms does not fit %d samples", ErrInvalidConfig, w.LengthMs, n)
		}
		if w.Kind == RaisedCosineWindow && !(w.Beta >= 0 && w.Beta <= 1) {
			return fmt.Errorf("%w: beta must be in [0,1]: %v", ErrInvalidConfig, w.Beta)
		}
	default:
		return fmt.Errorf("%w: unknown window %d", ErrInvalidConfig, int(c.Window.Kind))
	}

	return nil
}
