package loudness

// Measurer reports the integrated loudness of a mono buffer in LUFS. A
// buffer with no measurable content yields -Inf.
type Measurer interface {
	Integrated(samples []float64, sampleRate float64) float64
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(samples []float64, sampleRate float64) float64

// Integrated implements Measurer.
func (f MeasurerFunc) Integrated(samples []float64, sampleRate float64) float64 {
	return f(samples, sampleRate)
}

// BS1770 is the package meter as a Measurer.
var BS1770 Measurer = MeasurerFunc(Integrated)

// Integrated measures a mono buffer with a fresh Meter.
func Integrated(samples []float64, sampleRate float64) float64 {
	m := NewMeter(WithSampleRate(sampleRate), WithChannels(1))
	m.ProcessBlock(samples)

	return m.Integrated()
}
