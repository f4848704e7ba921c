package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
)

func ExamplePassband_Bins() {
	tb := core.Timebase{SampleRate: 8000, Duration: 1}

	r, err := spectrum.Passband{CenterHz: 1000, BandwidthHz: 200}.Bins(tb)
	if err != nil {
		panic(err)
	}

	fmt.Println(r.Low, r.High, tb.NyquistBin())

	// Output:
	// 900 1100 4000
}

func ExampleFromHalf() {
	s, err := spectrum.FromHalf([]complex128{7, 1 + 1i, 2i, 1 - 3i}, 8, spectrum.Cosine)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Bins)

	// Output:
	// [(0+0i) (1+1i) (0+2i) (1-3i) (0+0i) (1+3i) (0-2i) (1-1i)]
}
