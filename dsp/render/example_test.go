package render_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stimulus/dsp/render"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
)

func ExampleRenderer_Render() {
	half := make([]complex128, 4)
	half[1] = 4
	s, err := spectrum.FromHalf(half, 8, spectrum.Cosine)
	if err != nil {
		panic(err)
	}

	out, err := render.NewRenderer(render.WithScale(1), render.WithTransform(render.GoDSP{})).Render(s)
	if err != nil {
		panic(err)
	}
	for _, v := range out {
		if math.Abs(v) < 5e-4 {
			v = 0
		}
		fmt.Printf("%.3f ", v)
	}
	fmt.Println()
	// Output: 1.000 0.707 0.000 -0.707 -1.000 -0.707 0.000 0.707
}
