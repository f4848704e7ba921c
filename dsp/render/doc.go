// Package render turns a symmetric spectrum into a real sample buffer.
//
// The inverse DFT is delegated to a Transform. GoDSP handles every length,
// Plan uses cached algo-fft plans for power-of-two lengths, and Auto picks
// between them. After the transform the renderer keeps either the real or
// the imaginary component and applies a fixed scale.
package render
