package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any pair differs by more than eps. The worst index is reported.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	d, i, err := maxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if d > eps {
		t.Fatalf("index %d: got %v, want %v (|diff| %g > %g)", i, got[i], want[i], d, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute element difference of a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	d, _, err := maxAbsDiff(a, b)
	return d, err
}

func maxAbsDiff(a, b []float64) (float64, int, error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	worst, at := 0.0, 0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			return math.Inf(1), i, nil
		}
		if d > worst {
			worst, at = d, i
		}
	}
	return worst, at, nil
}
