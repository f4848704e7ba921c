package window

import "fmt"

func ExampleRaisedCosine() {
	h, _ := RaisedCosine(0, 8)
	fmt.Println(h)
	// Output:
	// [1 1 1 1 0 0 0 0]
}

func ExampleCosineRamp() {
	c, _ := CosineRamp(4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", c[0], c[1], c[2], c[3])
	// Output:
	// 0.00 0.15 0.50 0.85
}

func ExampleApplyEdges() {
	out, _ := ApplyEdges([]float64{1, 1, 1, 1, 1, 1}, []float64{0, 0.5})
	fmt.Println(out)
	// Output:
	// [0 0.5 1 1 0.5 0]
}
