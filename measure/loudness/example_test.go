package loudness_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stimulus/measure/loudness"
)

func ExampleIntegrated() {
	fs := 48000.0

	// 4 seconds of a full-scale 1 kHz sine.
	sig := make([]float64, int(fs*4))
	for i := range sig {
		sig[i] = math.Sin(2 * math.Pi * 1000.0 / fs * float64(i))
	}

	fmt.Printf("%.0f LUFS\n", loudness.Integrated(sig, fs))
	// Output: -3 LUFS
}

func ExampleNormalize() {
	out, err := loudness.Normalize([]float64{0.1, -0.1}, 48000, -20, -14)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f %.4f\n", out[0], out[1])

	_, err = loudness.Normalize(make([]float64, 4), 48000, math.Inf(-1), -14)
	fmt.Println(err)
	// Output:
	// 0.1995 -0.1995
	// loudness: silent signal: measured -Inf LUFS
}
