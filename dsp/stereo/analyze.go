package stereo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChannelStats summarizes one channel.
type ChannelStats struct {
	Peak float64
	RMS  float64
	Mean float64
}

// Analysis summarizes a stereo buffer.
type Analysis struct {
	Left, Right ChannelStats
	// Correlation is the Pearson correlation between the channels: 1 for
	// same-phase, -1 for anti-phase, near 0 for independent draws. It is
	// NaN when either channel is constant.
	Correlation float64
}

// Analyze computes per-channel statistics and the inter-channel
// correlation.
func Analyze(b Buffer) (Analysis, error) {
	if err := b.Validate(); err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		Left:        channelStats(b.Left),
		Right:       channelStats(b.Right),
		Correlation: math.NaN(),
	}
	if b.Len() > 1 {
		a.Correlation = stat.Correlation(b.Left, b.Right, nil)
	}
	return a, nil
}

func channelStats(x []float64) ChannelStats {
	if len(x) == 0 {
		return ChannelStats{}
	}

	return ChannelStats{
		Peak: math.Max(floats.Max(x), -floats.Min(x)),
		RMS:  floats.Norm(x, 2) / math.Sqrt(float64(len(x))),
		Mean: stat.Mean(x, nil),
	}
}
