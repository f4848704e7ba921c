package wavio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-stimulus/dsp/stereo"
	"github.com/cwbudde/algo-stimulus/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	left := testutil.DeterministicSine(440, 8000, 0.5, 800)
	right := testutil.DeterministicNoise(3, 0.9, 800)
	b, err := stereo.Compose(left, right)
	if err != nil {
		t.Fatal(err)
	}

	for _, depth := range []int{16, 24} {
		path := filepath.Join(t.TempDir(), "stim.wav")
		if err := WriteStereo(path, b, 8000, depth); err != nil {
			t.Fatalf("WriteStereo(%d) error = %v", depth, err)
		}

		got, rate, err := Read(path)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if rate != 8000 {
			t.Fatalf("sample rate = %d, want 8000", rate)
		}

		eps := 1.0 / float64(int(1)<<(depth-1)-1)
		testutil.RequireSliceNearlyEqual(t, got.Left, left, eps)
		testutil.RequireSliceNearlyEqual(t, got.Right, right, eps)
	}
}

func TestClampAndCount(t *testing.T) {
	b := stereo.Buffer{Left: []float64{1.5, 0}, Right: []float64{-2, 0.25}}
	if got := Clipped(b); got != 2 {
		t.Fatalf("Clipped = %d, want 2", got)
	}

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := WriteStereo(path, b, 8000, 16); err != nil {
		t.Fatal(err)
	}

	got, _, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Left, []float64{1, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, got.Right, []float64{-1, 0.25}, 1e-4)
}

func TestErrors(t *testing.T) {
	b := stereo.Buffer{Left: []float64{0}, Right: []float64{0}}
	dir := t.TempDir()

	if err := WriteStereo(filepath.Join(dir, "x.wav"), b, 8000, 12); !errors.Is(err, ErrBitDepth) {
		t.Fatalf("error = %v, want ErrBitDepth", err)
	}

	bad := stereo.Buffer{Left: []float64{0}, Right: nil}
	if err := WriteStereo(filepath.Join(dir, "y.wav"), bad, 8000, 16); !errors.Is(err, stereo.ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}

	junk := filepath.Join(dir, "junk.wav")
	if err := os.WriteFile(junk, []byte("not a wav file at all"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Read(junk); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("error = %v, want ErrInvalidFile", err)
	}
}
