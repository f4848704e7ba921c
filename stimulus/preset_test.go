package stimulus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePresetRoundTrip(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
		require.NotEmpty(t, p.Description())
	}

	_, err := ParsePreset("white")
	require.ErrorIs(t, err, ErrUnknownPreset)
	require.Equal(t, "Preset(42)", Preset(42).String())
}

func TestParseKinds(t *testing.T) {
	for _, k := range []ModulationKind{NoModulation, SinusoidalModulation, HalfSineModulation} {
		got, err := ParseModulation(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	for _, k := range []WindowKind{NoWindow, RaisedCosineWindow, CosineRampWindow} {
		got, err := ParseWindow(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	_, err := ParseModulation("square")
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseWindow("hann")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultConfigsValidate(t *testing.T) {
	for _, p := range Presets() {
		require.NoError(t, DefaultConfig(p).Validate(), p.String())
	}
}
