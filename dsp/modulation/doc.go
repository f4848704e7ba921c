// Package modulation builds amplitude modulators for stimulus buffers.
//
// Modulators are returned as envelopes so that both channels of a stereo
// stimulus can share one instance.
package modulation
