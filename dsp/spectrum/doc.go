// Package spectrum defines the conjugate-symmetric frequency-domain buffer
// that every stimulus is synthesized from.
//
// A Spectrum holds TotalBins complex bins. Only the independent half
// [0, NyquistBin) carries information; the upper half is derived by
// mirroring so that an inverse transform is (numerically) real for the
// cosine basis, or purely imaginary for the sine basis.
//
// The package does not implement a transform itself; see dsp/render.
package spectrum
