package core

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	if !IsFinite(-14) {
		t.Fatal("-14 is finite")
	}
	if IsFinite(math.Inf(-1)) || IsFinite(math.NaN()) {
		t.Fatal("Inf and NaN are not finite")
	}
}

func TestDBConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"round trip", LinearToDB(DBToLinear(-6)), -6},
		{"unity", LinearToDB(1), 0},
		{"power doubles", PowerToDB(2), 10 * math.Log10(2)},
		{"amplitude vs power", LinearToDB(0.5), PowerToDB(0.25)},
		{"+20 dB", DBToLinear(20), 10},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-10 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	for _, f := range []func(float64) float64{LinearToDB, PowerToDB} {
		if !math.IsInf(f(0), -1) {
			t.Fatal("expected -Inf for zero")
		}
		if !math.IsNaN(f(-1)) {
			t.Fatal("expected NaN for a negative ratio")
		}
	}
}
