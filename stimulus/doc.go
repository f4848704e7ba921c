// Package stimulus generates stereo psychoacoustic noise and tone stimuli.
//
// A Generator runs one configurable pipeline: build a band-limited noise
// spectrum, optionally derive a shifted or delayed twin, render both to
// the time domain, normalize each channel to a target loudness, then
// optionally modulate and shape onset and offset. Each historical stimulus
// type is a Preset that fixes the phase mode, shift strategy, extraction
// and channel relation of that pipeline.
package stimulus
