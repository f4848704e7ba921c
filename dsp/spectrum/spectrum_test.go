package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

func TestPassbandBinsScenario(t *testing.T) {
	tb := core.Timebase{SampleRate: 8000, Duration: 1}

	r, err := Passband{CenterHz: 1000, BandwidthHz: 200}.Bins(tb)
	if err != nil {
		t.Fatalf("Bins() error = %v", err)
	}
	if r.Low != 900 || r.High != 1100 {
		t.Fatalf("range = %+v, want [900, 1100)", r)
	}
	if r.Width() != 200 {
		t.Fatalf("width = %d, want 200", r.Width())
	}
}

func TestPassbandBinsScaleWithDuration(t *testing.T) {
	tb := core.Timebase{SampleRate: 8000, Duration: 3}

	r, err := Passband{CenterHz: 500, BandwidthHz: 100}.Bins(tb)
	if err != nil {
		t.Fatalf("Bins() error = %v", err)
	}
	if r.Low != 1350 || r.High != 1650 {
		t.Fatalf("range = %+v, want [1350, 1650)", r)
	}
}

func TestPassbandBinsInvalid(t *testing.T) {
	tb := core.Timebase{SampleRate: 8000, Duration: 1}
	tests := []struct {
		name string
		p    Passband
	}{
		{name: "below-dc", p: Passband{CenterHz: 50, BandwidthHz: 200}},
		{name: "above-nyquist", p: Passband{CenterHz: 3950, BandwidthHz: 200}},
		{name: "negative-bandwidth", p: Passband{CenterHz: 1000, BandwidthHz: -10}},
		{name: "nan", p: Passband{CenterHz: math.NaN(), BandwidthHz: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.p.Bins(tb); !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("Bins() error = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestPassbandEdgesAreInclusiveOfNyquist(t *testing.T) {
	tb := core.Timebase{SampleRate: 8000, Duration: 1}

	r, err := FullBand(tb).Bins(tb)
	if err != nil {
		t.Fatalf("Bins() error = %v", err)
	}
	if r.Low != 0 || r.High != tb.NyquistBin() {
		t.Fatalf("full band = %+v, want [0, %d)", r, tb.NyquistBin())
	}
}

func TestFromHalfMirrorsCosine(t *testing.T) {
	half := []complex128{5, 1 + 2i, -3 + 0.5i, 4i}

	s, err := FromHalf(half, 8, Cosine)
	if err != nil {
		t.Fatalf("FromHalf() error = %v", err)
	}
	if s.Bins[0] != 0 {
		t.Fatalf("DC = %v, want 0", s.Bins[0])
	}
	if s.Bins[4] != 0 {
		t.Fatalf("Nyquist bin = %v, want 0", s.Bins[4])
	}
	for k := 1; k < 4; k++ {
		if s.Bins[8-k] != cmplx.Conj(s.Bins[k]) {
			t.Fatalf("bin %d = %v, want conj(%v)", 8-k, s.Bins[8-k], s.Bins[k])
		}
	}
	if err := s.Validate(0); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestFromHalfMirrorsSine(t *testing.T) {
	s, err := FromHalf([]complex128{0, 1 + 2i, 3}, 7, Sine)
	if err != nil {
		t.Fatalf("FromHalf() error = %v", err)
	}
	if s.Bins[6] != -1+2i {
		t.Fatalf("bin 6 = %v, want -1+2i", s.Bins[6])
	}
	if s.Bins[3] != 0 || s.Bins[4] != 0 {
		t.Fatalf("odd-length middle bins must stay zero: %v", s.Bins)
	}
	if err := s.Validate(0); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestFromHalfRejectsWrongLength(t *testing.T) {
	if _, err := FromHalf(make([]complex128, 3), 8, Cosine); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("FromHalf() error = %v, want ErrInvalidRange", err)
	}
	if _, err := FromHalf(nil, 1, Cosine); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("FromHalf() error = %v, want ErrInvalidRange", err)
	}
}

func TestValidateDetectsBrokenMirror(t *testing.T) {
	s, err := FromHalf([]complex128{0, 1i, 2, 0}, 8, Cosine)
	if err != nil {
		t.Fatalf("FromHalf() error = %v", err)
	}
	s.Bins[7] = 1i
	if err := s.Validate(1e-12); !errors.Is(err, ErrNotSymmetric) {
		t.Fatalf("Validate() error = %v, want ErrNotSymmetric", err)
	}

	s.Basis = Sine
	s.Bins[7] = -cmplx.Conj(s.Bins[1])
	s.Bins[6] = -2
	s.Bins[5] = 0
	if err := s.Validate(0); err != nil {
		t.Fatalf("Validate() sine error = %v", err)
	}

	s.Bins[0] = 1
	if err := s.Validate(0); !errors.Is(err, ErrNotSymmetric) {
		t.Fatalf("Validate() with DC error = %v, want ErrNotSymmetric", err)
	}
}

func TestHalfAndBandCopy(t *testing.T) {
	s, err := FromHalf([]complex128{0, 1, 2, 3}, 8, Cosine)
	if err != nil {
		t.Fatalf("FromHalf() error = %v", err)
	}

	half := s.Half()
	half[1] = 99
	if s.Bins[1] != 1 {
		t.Fatal("Half() aliased the spectrum")
	}

	band := s.Band(BinRange{Low: 2, High: 4})
	if len(band) != 2 || band[0] != 2 || band[1] != 3 {
		t.Fatalf("Band() = %v", band)
	}
}

func TestMagnitudePowerEnergy(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[1]-2) > 1e-12 {
		t.Fatalf("Power[1]=%f want=2", pow[1])
	}

	s, err := FromHalf([]complex128{0, 3 + 4i, 1i, 0}, 8, Cosine)
	if err != nil {
		t.Fatalf("FromHalf() error = %v", err)
	}
	if e := s.BandEnergy(BinRange{Low: 1, High: 3}); math.Abs(e-26) > 1e-12 {
		t.Fatalf("BandEnergy = %v, want 26", e)
	}
}
