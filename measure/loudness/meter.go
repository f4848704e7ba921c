package loudness

import (
	"math"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

const (
	// Gating block length and hop, in seconds.
	blockDuration = 0.4
	blockOverlap  = 0.75

	absThreshold = -70.0
	relThreshold = -10.0

	// floorLUFS is reported for a zero mean square.
	floorLUFS = -120.0
)

// Meter measures ITU-R BS.1770 integrated loudness. Frames are K-weighted,
// squared and summed over 400 ms blocks taken every 100 ms; blocks below
// -70 LUFS and then below the gated mean minus 10 LU are discarded.
type Meter struct {
	sampleRate float64
	channels   int
	filters    []kFilter

	window   int
	hop      int
	history  [][]float64
	sums     []float64
	pos      int
	filled   int
	sinceHop int

	blocks []float64
}

// NewMeter creates a loudness meter with the given options.
func NewMeter(opts ...MeterOption) *Meter {
	cfg := ApplyMeterOptions(opts...)

	m := &Meter{
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
		window:     max(int(math.Round(blockDuration*cfg.SampleRate)), 1),
		hop:        max(int(math.Round(blockDuration*(1-blockOverlap)*cfg.SampleRate)), 1),
	}

	m.filters = make([]kFilter, m.channels)
	m.history = make([][]float64, m.channels)
	m.sums = make([]float64, m.channels)

	for i := range m.channels {
		m.filters[i] = newKFilter(m.sampleRate)
		m.history[i] = make([]float64, m.window)
	}

	return m
}

// SampleRate returns the configured sample rate.
func (m *Meter) SampleRate() float64 { return m.sampleRate }

// Channels returns the configured channel count.
func (m *Meter) Channels() int { return m.channels }

// Reset clears filter state and all collected blocks.
func (m *Meter) Reset() {
	for i := range m.channels {
		m.filters[i].reset()
		clear(m.history[i])
		m.sums[i] = 0
	}

	m.pos = 0
	m.filled = 0
	m.sinceHop = 0
	m.blocks = m.blocks[:0]
}

// ProcessSample processes one frame holding a sample per channel. Short
// frames are ignored.
func (m *Meter) ProcessSample(frame []float64) {
	if len(frame) < m.channels {
		return
	}

	for i := range m.channels {
		v := m.filters[i].process(frame[i])
		sq := v * v

		m.sums[i] += sq - m.history[i][m.pos]
		if m.sums[i] < 0 {
			m.sums[i] = 0
		}
		m.history[i][m.pos] = sq
	}

	m.pos = (m.pos + 1) % m.window
	if m.filled < m.window {
		m.filled++
	}

	m.sinceHop++
	if m.filled == m.window && m.sinceHop >= m.hop {
		m.sinceHop = 0
		m.blocks = append(m.blocks, m.blockPower())
	}
}

// ProcessBlock processes interleaved frames. A trailing partial frame is
// ignored.
func (m *Meter) ProcessBlock(interleaved []float64) {
	for i := 0; i+m.channels <= len(interleaved); i += m.channels {
		m.ProcessSample(interleaved[i : i+m.channels])
	}
}

// Momentary returns the loudness of the most recent 400 ms in LUFS.
func (m *Meter) Momentary() float64 {
	return toLUFS(m.blockPower())
}

// Blocks returns the number of gating blocks collected so far.
func (m *Meter) Blocks() int {
	return len(m.blocks)
}

// Integrated returns the gated integrated loudness in LUFS, or -Inf when
// no block survives gating.
func (m *Meter) Integrated() float64 {
	var (
		sum  float64
		kept int
	)

	for _, b := range m.blocks {
		if toLUFS(b) > absThreshold {
			sum += b
			kept++
		}
	}

	if kept == 0 {
		return math.Inf(-1)
	}

	gate := toLUFS(sum/float64(kept)) + relThreshold
	sum, kept = 0, 0

	for _, b := range m.blocks {
		if l := toLUFS(b); l > absThreshold && l > gate {
			sum += b
			kept++
		}
	}

	if kept == 0 {
		return math.Inf(-1)
	}

	return toLUFS(sum / float64(kept))
}

func (m *Meter) blockPower() float64 {
	var p float64
	for i := range m.channels {
		p += m.sums[i] / float64(m.window)
	}

	return p
}

func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return floorLUFS
	}

	return -0.691 + core.PowerToDB(meanSquare)
}
