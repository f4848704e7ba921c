package render

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/noise"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
)

func BenchmarkRender(b *testing.B) {
	for _, rate := range []int{32768, 44100, 48000} {
		tb := core.Timebase{SampleRate: rate, Duration: 1}
		s, err := noise.NewBuilder().Build(tb, spectrum.Passband{CenterHz: 1000, BandwidthHz: 400}, noise.ComplexGaussian)
		if err != nil {
			b.Fatal(err)
		}
		r := NewRenderer()

		b.Run(strconv.Itoa(rate), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				if _, err := r.Render(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

