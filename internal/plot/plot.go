// Package plot renders stimulus waveforms and spectra as HTML charts.
package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
	"github.com/cwbudde/algo-stimulus/dsp/stereo"
)

// DefaultMaxPoints caps the number of points per series.
const DefaultMaxPoints = 2000

const floorDB = -200

// Options configures a page.
type Options struct {
	Title      string
	SampleRate int
	// MaxPoints caps each series; longer channels are decimated by peak
	// picking.
	MaxPoints int
}

func (o Options) maxPoints() int {
	if o.MaxPoints <= 0 {
		return DefaultMaxPoints
	}
	return o.MaxPoints
}

// Waveform returns a line chart of both channels against time in seconds.
func Waveform(b stereo.Buffer, o Options) (*charts.Line, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if o.SampleRate <= 0 {
		return nil, fmt.Errorf("plot: invalid sample rate %d", o.SampleRate)
	}

	idx := decimate(b.Len(), o.maxPoints())

	x := make([]string, len(idx))
	for i, n := range idx {
		x[i] = fmt.Sprintf("%.4f", float64(n)/float64(o.SampleRate))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: "waveform"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "s"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "amplitude"}),
	)
	line.SetXAxis(x).
		AddSeries("left", segmentData(b.Left, idx, largerMagnitude)).
		AddSeries("right", segmentData(b.Right, idx, largerMagnitude))

	return line, nil
}

// Spectrum returns a line chart of both channels' magnitude spectra in dB
// relative to the largest bin.
func Spectrum(b stereo.Buffer, o Options) (*charts.Line, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if o.SampleRate <= 0 || b.Len() < 2 {
		return nil, fmt.Errorf("plot: cannot compute spectrum of %d samples at %d Hz", b.Len(), o.SampleRate)
	}

	left := magnitudeDB(b.Left)
	right := magnitudeDB(b.Right)

	idx := decimate(len(left), o.maxPoints())
	binHz := float64(o.SampleRate) / float64(b.Len())

	x := make([]string, len(idx))
	for i, k := range idx {
		x[i] = fmt.Sprintf("%.1f", float64(k)*binHz)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: "magnitude spectrum"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hz"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "dB"}),
	)
	line.SetXAxis(x).
		AddSeries("left", segmentData(left, idx, larger)).
		AddSeries("right", segmentData(right, idx, larger))

	return line, nil
}

// Render writes a page holding the waveform and spectrum charts to w.
func Render(w io.Writer, b stereo.Buffer, o Options) error {
	wave, err := Waveform(b, o)
	if err != nil {
		return err
	}
	spec, err := Spectrum(b, o)
	if err != nil {
		return err
	}

	page := components.NewPage()
	if o.Title != "" {
		page.PageTitle = o.Title
	}
	page.AddCharts(wave, spec)

	return page.Render(w)
}

// decimate returns the start index of each of at most limit segments of
// an n-sample series.
func decimate(n, limit int) []int {
	if n <= limit {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	idx := make([]int, limit)
	for i := range idx {
		idx[i] = i * n / limit
	}
	return idx
}

// segmentData returns, for each segment starting at idx[i], the sample
// preferred by better up to the start of the next segment.
func segmentData(x []float64, idx []int, better func(cand, cur float64) bool) []opts.LineData {
	data := make([]opts.LineData, len(idx))
	for i, start := range idx {
		end := len(x)
		if i+1 < len(idx) {
			end = idx[i+1]
		}

		pick := x[start]
		for _, v := range x[start:end] {
			if better(v, pick) {
				pick = v
			}
		}
		data[i] = opts.LineData{Value: pick}
	}
	return data
}

func largerMagnitude(cand, cur float64) bool { return math.Abs(cand) > math.Abs(cur) }

func larger(cand, cur float64) bool { return cand > cur }

func magnitudeDB(x []float64) []float64 {
	bins := fft.FFTReal(x)
	mag := spectrum.Magnitude(bins[:len(bins)/2])

	ref := 0.0
	for _, m := range mag {
		ref = math.Max(ref, m)
	}

	out := make([]float64, len(mag))
	for i, m := range mag {
		out[i] = floorDB
		if ref > 0 {
			out[i] = math.Max(floorDB, core.LinearToDB(m/ref))
		}
	}
	return out
}
