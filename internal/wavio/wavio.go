// Package wavio persists stereo stimuli as PCM WAV files.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-stimulus/dsp/stereo"
)

const pcmFormat = 1

var (
	// ErrBitDepth reports an unsupported PCM bit depth.
	ErrBitDepth = errors.New("wavio: unsupported bit depth")
	// ErrInvalidFile reports input that is not a readable WAV file.
	ErrInvalidFile = errors.New("wavio: invalid wav file")
)

func fullScale(bitDepth int) (int, error) {
	switch bitDepth {
	case 16, 24, 32:
		return 1<<(bitDepth-1) - 1, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
}

// Clipped returns the number of samples outside [-1, 1].
func Clipped(b stereo.Buffer) int {
	n := 0
	for _, ch := range [][]float64{b.Left, b.Right} {
		for _, v := range ch {
			if math.Abs(v) > 1 {
				n++
			}
		}
	}
	return n
}

// Encode writes b as interleaved PCM. Samples outside [-1, 1] are clamped.
func Encode(w io.WriteSeeker, b stereo.Buffer, sampleRate, bitDepth int) error {
	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}
	if sampleRate <= 0 {
		return fmt.Errorf("wavio: invalid sample rate %d", sampleRate)
	}

	frames, err := b.Interleave()
	if err != nil {
		return err
	}

	data := make([]int, len(frames))
	for i, v := range frames {
		v = math.Max(-1, math.Min(1, v))
		data[i] = int(math.Round(v * float64(scale)))
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 2, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 2,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}
	return enc.Close()
}

// WriteStereo creates path and writes b to it.
func WriteStereo(path string, b stereo.Buffer, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, b, sampleRate, bitDepth); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Decode reads a mono or stereo PCM stream. Mono input is duplicated into
// both channels.
func Decode(r io.ReadSeeker) (stereo.Buffer, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return stereo.Buffer{}, 0, ErrInvalidFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return stereo.Buffer{}, 0, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	scale, err := fullScale(int(dec.BitDepth))
	if err != nil {
		return stereo.Buffer{}, 0, err
	}

	samples := make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = float64(v) / float64(scale)
	}

	b, err := stereo.Deinterleave(samples, int(dec.NumChans))
	if err != nil {
		return stereo.Buffer{}, 0, err
	}
	return b, int(dec.SampleRate), nil
}

// Read opens and decodes path.
func Read(path string) (stereo.Buffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return stereo.Buffer{}, 0, err
	}
	defer f.Close()

	return Decode(f)
}
