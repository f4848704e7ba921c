package stereo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

var (
	// ErrLengthMismatch reports channels of different lengths.
	ErrLengthMismatch = errors.New("stereo: channel length mismatch")
	// ErrUnknownRelation reports an unsupported Relation.
	ErrUnknownRelation = errors.New("stereo: unknown channel relation")
)

// Relation describes how the right channel is obtained from the left.
type Relation int

const (
	// Independent channels come from unrelated noise draws.
	Independent Relation = iota
	// SamePhase copies the left channel.
	SamePhase
	// AntiPhase negates the left channel.
	AntiPhase
)

func (r Relation) String() string {
	switch r {
	case Independent:
		return "independent"
	case SamePhase:
		return "same-phase"
	case AntiPhase:
		return "anti-phase"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// ParseRelation maps a relation name to its value.
func ParseRelation(s string) (Relation, error) {
	for _, r := range []Relation{Independent, SamePhase, AntiPhase} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRelation, s)
}

// Buffer is a pair of equal-length channels.
type Buffer struct {
	Left  []float64
	Right []float64
}

// Compose pairs left and right. The slices are not copied.
func Compose(left, right []float64) (Buffer, error) {
	if len(left) != len(right) {
		return Buffer{}, fmt.Errorf("%w: left %d, right %d", ErrLengthMismatch, len(left), len(right))
	}
	return Buffer{Left: left, Right: right}, nil
}

// Derive builds a stereo buffer whose right channel follows left according
// to r. Independent has no derivable right channel and is rejected; use
// Compose with a second draw instead.
func Derive(left []float64, r Relation) (Buffer, error) {
	switch r {
	case SamePhase:
		return Buffer{Left: left, Right: slices.Clone(left)}, nil
	case AntiPhase:
		return Buffer{Left: left, Right: core.Negate(left)}, nil
	}
	return Buffer{}, fmt.Errorf("%w: cannot derive %s channel", ErrUnknownRelation, r)
}

// Len returns the number of frames.
func (b Buffer) Len() int {
	return len(b.Left)
}

// Validate checks the equal-length invariant.
func (b Buffer) Validate() error {
	if len(b.Left) != len(b.Right) {
		return fmt.Errorf("%w: left %d, right %d", ErrLengthMismatch, len(b.Left), len(b.Right))
	}
	return nil
}

// Map applies fn to each channel and returns the results as a new buffer.
func (b Buffer) Map(fn func([]float64) ([]float64, error)) (Buffer, error) {
	left, err := fn(b.Left)
	if err != nil {
		return Buffer{}, fmt.Errorf("left channel: %w", err)
	}
	right, err := fn(b.Right)
	if err != nil {
		return Buffer{}, fmt.Errorf("right channel: %w", err)
	}
	return Compose(left, right)
}

// Interleave returns L0 R0 L1 R1 ... frames.
func (b Buffer) Interleave() ([]float64, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, 2*len(b.Left))
	for i := range b.Left {
		out[2*i] = b.Left[i]
		out[2*i+1] = b.Right[i]
	}
	return out, nil
}

// Deinterleave splits interleaved frames of the given channel count into a
// stereo buffer. A mono input is duplicated into both channels.
func Deinterleave(frames []float64, channels int) (Buffer, error) {
	switch channels {
	case 1:
		return Buffer{Left: slices.Clone(frames), Right: slices.Clone(frames)}, nil
	case 2:
	default:
		return Buffer{}, fmt.Errorf("stereo: unsupported channel count %d", channels)
	}

	if len(frames)%2 != 0 {
		return Buffer{}, fmt.Errorf("%w: %d interleaved samples", ErrLengthMismatch, len(frames))
	}

	n := len(frames) / 2
	b := Buffer{Left: make([]float64, n), Right: make([]float64, n)}
	for i := range n {
		b.Left[i] = frames[2*i]
		b.Right[i] = frames[2*i+1]
	}
	return b, nil
}
