package stimulus

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset reports an unrecognized preset name or value.
var ErrUnknownPreset = errors.New("stimulus: unknown preset")

// Preset selects a stimulus type.
type Preset int

const (
	// Bandpass is unit-phase band noise; the right channel is an
	// independent draw or derived from the left by Config.Relation.
	Bandpass Preset = iota
	// Akeroyd translates the left band by the shift for the right channel.
	Akeroyd
	// PhaseWarp rotates the in-band content by the shift.
	PhaseWarp
	// PDShift translates the band and applies a phase-ramp delay.
	PDShift
	// PhaseDelay applies a phase-ramp delay to full-band noise.
	PhaseDelay
	// Oscar modulates two noise draws with quadrature carriers at the
	// shift frequency.
	Oscar
	// ILD pans one noise draw between the ears at the shift frequency.
	ILD
	// BinauralBeat plays tones at ToneHz and ToneHz+ShiftHz.
	BinauralBeat
)

var presetNames = map[Preset]string{
	Bandpass:     "bandpass",
	Akeroyd:      "akeroyd",
	PhaseWarp:    "phasewarp",
	PDShift:      "pd-shift",
	PhaseDelay:   "phase-delay",
	Oscar:        "oscar",
	ILD:          "ild",
	BinauralBeat: "binaural-beat",
}

var presetInfo = map[Preset]string{
	Bandpass:     "band-limited noise, independent, same-phase or anti-phase channels",
	Akeroyd:      "band-limited noise, right channel translated by the shift",
	PhaseWarp:    "band-limited noise, right channel rotated within the band",
	PDShift:      "translated band with an added phase-ramp delay",
	PhaseDelay:   "full-band noise, right channel phase-ramp delayed",
	Oscar:        "two noise draws on quadrature carriers at the shift frequency",
	ILD:          "interaural level panning at the shift frequency",
	BinauralBeat: "pure tones at f and f+shift",
}

// Presets returns all presets in declaration order.
func Presets() []Preset {
	return []Preset{Bandpass, Akeroyd, PhaseWarp, PDShift, PhaseDelay, Oscar, ILD, BinauralBeat}
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}

// Description returns a one-line summary of the preset.
func (p Preset) Description() string {
	return presetInfo[p]
}

// ParsePreset maps a preset name to its value.
func ParsePreset(name string) (Preset, error) {
	for p, n := range presetNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func (p Preset) valid() bool {
	_, ok := presetNames[p]
	return ok
}
