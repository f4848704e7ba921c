// Package shift derives a transformed twin of a band-limited spectrum.
//
// Three strategies operate on the in-band bins of the independent half:
// Translate moves the band to new bin positions, Rotate circularly
// rotates the content within the original band edges, and PhaseRampDelay
// applies a linear phase ramp that acts as a constant time delay. The
// result is always re-mirrored in the input's basis.
package shift
