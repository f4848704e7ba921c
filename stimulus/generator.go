package stimulus

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/modulation"
	"github.com/cwbudde/algo-stimulus/dsp/noise"
	"github.com/cwbudde/algo-stimulus/dsp/render"
	"github.com/cwbudde/algo-stimulus/dsp/shift"
	"github.com/cwbudde/algo-stimulus/dsp/signal"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
	"github.com/cwbudde/algo-stimulus/dsp/stereo"
	"github.com/cwbudde/algo-stimulus/dsp/window"
	"github.com/cwbudde/algo-stimulus/measure/loudness"
)

// Generator runs the stimulus pipeline. It holds no per-request state and
// is safe for concurrent use when its Transform and Measurer are.
type Generator struct {
	log       logrus.FieldLogger
	transform render.Transform
	meter     loudness.Measurer
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger that receives per-stage debug records.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithTransform sets the inverse DFT provider.
func WithTransform(t render.Transform) Option {
	return func(g *Generator) {
		if t != nil {
			g.transform = t
		}
	}
}

// WithMeter sets the loudness meter used for normalization.
func WithMeter(m loudness.Measurer) Option {
	return func(g *Generator) {
		if m != nil {
			g.meter = m
		}
	}
}

// NewGenerator returns a Generator with the BS.1770 meter, the automatic
// transform and a discarding logger.
func NewGenerator(opts ...Option) *Generator {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	g := &Generator{
		log:       silent,
		transform: render.Auto(),
		meter:     loudness.BS1770,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// run carries the state of one Generate call.
type run struct {
	*Generator

	cfg     Config
	tb      core.Timebase
	log     logrus.FieldLogger
	builder *noise.Builder
}

// Generate validates cfg and produces a normalized stereo stimulus. ctx is
// checked between stages.
func (g *Generator) Generate(ctx context.Context, cfg Config) (stereo.Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return stereo.Buffer{}, err
	}

	r := &run{
		Generator: g,
		cfg:       cfg,
		tb:        cfg.Timebase(),
		builder:   noise.NewBuilder(noise.WithSeed(cfg.Seed)),
	}
	r.log = g.log.WithFields(logrus.Fields{
		"preset": cfg.Preset.String(),
		"bins":   r.tb.TotalBins(),
		"seed":   r.builder.Seed(),
	})

	stages := []struct {
		name string
		fn   func(stereo.Buffer) (stereo.Buffer, error)
	}{
		{"synthesize", func(stereo.Buffer) (stereo.Buffer, error) { return r.synthesize() }},
		{"normalize", r.normalize},
		{"modulate", r.modulate},
		{"window", r.window},
	}

	var buf stereo.Buffer
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return stereo.Buffer{}, fmt.Errorf("stimulus: %s: %w", st.name, err)
		}

		var err error
		if buf, err = st.fn(buf); err != nil {
			return stereo.Buffer{}, fmt.Errorf("stimulus: %s: %w", st.name, err)
		}
	}

	r.log.WithFields(logrus.Fields{
		"peak_left":  core.MaxAbs(buf.Left),
		"peak_right": core.MaxAbs(buf.Right),
	}).Debug("stimulus generated")
	return buf, nil
}

func (r *run) synthesize() (stereo.Buffer, error) {
	switch r.cfg.Preset {
	case Bandpass:
		return r.bandpass()
	case Akeroyd:
		return r.shifted(noise.ComplexGaussian, shift.Translate)
	case PhaseWarp:
		return r.shifted(noise.UnitPhase, shift.Rotate)
	case PDShift:
		return r.shifted(noise.ComplexGaussian, shift.Translate, shift.PhaseRampDelay)
	case PhaseDelay:
		return r.shifted(noise.ComplexGaussian, shift.PhaseRampDelay)
	case Oscar:
		return r.oscar()
	case ILD:
		return r.ild()
	case BinauralBeat:
		return r.binauralBeat()
	}
	return stereo.Buffer{}, fmt.Errorf("%w: %d", ErrUnknownPreset, int(r.cfg.Preset))
}

func (r *run) renderer(basis spectrum.Basis) *render.Renderer {
	opts := []render.Option{
		render.WithExtraction(render.ForBasis(basis)),
		render.WithScale(r.cfg.RenderScale),
		render.WithTransform(r.transform),
	}
	if r.cfg.StrictRender {
		opts = append(opts, render.WithStrict(render.DefaultResidualTolerance))
	}
	return render.NewRenderer(opts...)
}

func (r *run) draw(p spectrum.Passband, mode noise.PhaseMode, basis spectrum.Basis) (spectrum.Spectrum, error) {
	s, err := r.builder.BuildBasis(r.tb, p, mode, basis)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	r.log.WithFields(logrus.Fields{
		"passband": p.String(),
		"mode":     mode.String(),
		"basis":    basis.String(),
	}).Debug("spectrum built")
	return s, nil
}

func (r *run) render(s spectrum.Spectrum, channel string) ([]float64, error) {
	rr := r.renderer(s.Basis)
	out, residual, err := rr.RenderWithResidual(s)
	if err != nil {
		return nil, fmt.Errorf("%s channel: %w", channel, err)
	}

	r.log.WithFields(logrus.Fields{
		"channel":    channel,
		"extraction": rr.Extraction().String(),
		"residual":   residual,
	}).Debug("spectrum rendered")
	return out, nil
}

func (r *run) bandpass() (stereo.Buffer, error) {
	p := r.cfg.Passband()

	s, err := r.draw(p, noise.UnitPhase, spectrum.Cosine)
	if err != nil {
		return stereo.Buffer{}, err
	}
	left, err := r.render(s, "left")
	if err != nil {
		return stereo.Buffer{}, err
	}

	if r.cfg.Relation != stereo.Independent {
		return stereo.Derive(left, r.cfg.Relation)
	}

	s, err = r.draw(p, noise.UnitPhase, spectrum.Cosine)
	if err != nil {
		return stereo.Buffer{}, err
	}
	right, err := r.render(s, "right")
	if err != nil {
		return stereo.Buffer{}, err
	}
	return stereo.Compose(left, right)
}

// shifted renders one draw on the left and the same draw passed through
// strategies in order on the right. A phase ramp that follows a
// translation acts on the translated band.
func (r *run) shifted(mode noise.PhaseMode, strategies ...shift.Strategy) (stereo.Buffer, error) {
	p := r.cfg.Passband()
	spec := r.cfg.ShiftSpec()

	s, err := r.draw(p, mode, spectrum.Cosine)
	if err != nil {
		return stereo.Buffer{}, err
	}

	band, err := p.Bins(r.tb)
	if err != nil {
		return stereo.Buffer{}, err
	}

	twin := s
	for _, st := range strategies {
		if twin, band, err = shift.ApplyRange(twin, r.tb, band, spec, st); err != nil {
			return stereo.Buffer{}, fmt.Errorf("%s: %w", st, err)
		}

		r.log.WithFields(logrus.Fields{
			"strategy":  st.String(),
			"shift_hz":  spec.ShiftHz,
			"direction": spec.Direction.String(),
			"delay_ms":  spec.DelayMs,
			"low_bin":   band.Low,
			"high_bin":  band.High,
		}).Debug("spectrum shifted")
	}

	left, err := r.render(s, "left")
	if err != nil {
		return stereo.Buffer{}, err
	}
	right, err := r.render(twin, "right")
	if err != nil {
		return stereo.Buffer{}, err
	}
	return stereo.Compose(left, right)
}

// sineNoise draws and renders one sine-basis noise band.
func (r *run) sineNoise(channel string) ([]float64, error) {
	s, err := r.draw(r.cfg.Passband(), noise.ComplexGaussian, spectrum.Sine)
	if err != nil {
		return nil, err
	}
	return r.render(s, channel)
}

func (r *run) oscar() (stereo.Buffer, error) {
	n1, err := r.sineNoise("left")
	if err != nil {
		return stereo.Buffer{}, err
	}
	n2, err := r.sineNoise("right")
	if err != nil {
		return stereo.Buffer{}, err
	}

	sin, cos, err := modulation.Quadrature(len(n1), r.tb.SampleRate, r.cfg.ShiftHz)
	if err != nil {
		return stereo.Buffer{}, err
	}

	left := make([]float64, len(n1))
	right := make([]float64, len(n1))
	for i := range left {
		left[i] = n1[i] * sin[i]
		right[i] = left[i] + n2[i]*cos[i]
	}
	return stereo.Compose(left, right)
}

func (r *run) ild() (stereo.Buffer, error) {
	base, err := r.sineNoise("base")
	if err != nil {
		return stereo.Buffer{}, err
	}

	panL, panR, err := modulation.CosinePan(len(base), r.tb.SampleRate, r.cfg.ShiftHz)
	if err != nil {
		return stereo.Buffer{}, err
	}

	left, err := modulation.Apply(base, panL)
	if err != nil {
		return stereo.Buffer{}, err
	}
	right, err := modulation.Apply(base, panR)
	if err != nil {
		return stereo.Buffer{}, err
	}
	return stereo.Compose(left, right)
}

func (r *run) binauralBeat() (stereo.Buffer, error) {
	gen := signal.NewGenerator(core.WithSampleRate(r.tb.SampleRate), core.WithDuration(r.tb.Duration))

	left, right, err := gen.BeatPair(r.cfg.ToneHz, r.cfg.ShiftHz)
	if err != nil {
		return stereo.Buffer{}, err
	}

	r.log.WithFields(logrus.Fields{
		"tone_hz": r.cfg.ToneHz,
		"beat_hz": r.cfg.ShiftHz,
	}).Debug("tones generated")
	return stereo.Compose(left, right)
}

// normalize brings each channel to the target loudness independently.
func (r *run) normalize(b stereo.Buffer) (stereo.Buffer, error) {
	n := &loudness.Normalizer{Meter: r.meter, Target: r.cfg.TargetLUFS}
	sr := float64(r.tb.SampleRate)

	channel := func(name string, x []float64) ([]float64, error) {
		out, measured, err := n.Normalize(x, sr)
		if err != nil {
			return nil, fmt.Errorf("%s channel: %w", name, err)
		}

		r.log.WithFields(logrus.Fields{
			"channel":       name,
			"measured_lufs": measured,
			"target_lufs":   r.cfg.TargetLUFS,
			"gain_db":       r.cfg.TargetLUFS - measured,
		}).Debug("channel normalized")
		return out, nil
	}

	left, err := channel("left", b.Left)
	if err != nil {
		return stereo.Buffer{}, err
	}
	right, err := channel("right", b.Right)
	if err != nil {
		return stereo.Buffer{}, err
	}
	return stereo.Compose(left, right)
}

// modulate applies one shared modulator to both channels and
// re-normalizes.
func (r *run) modulate(b stereo.Buffer) (stereo.Buffer, error) {
	m := r.cfg.Modulation

	var (
		env []float64
		err error
	)
	switch m.Kind {
	case NoModulation:
		return b, nil
	case SinusoidalModulation:
		env, err = modulation.SinusoidalEnvelope(b.Len(), r.tb.SampleRate, m.FreqHz, m.Depth)
	case HalfSineModulation:
		env, err = modulation.HalfSineEnvelope(b.Len(), r.tb.SampleRate, m.FreqHz, m.Depth)
	}
	if err != nil {
		return stereo.Buffer{}, err
	}

	mod, err := b.Map(func(x []float64) ([]float64, error) {
		return modulation.Apply(x, env)
	})
	if err != nil {
		return stereo.Buffer{}, err
	}

	r.log.WithFields(logrus.Fields{
		"modulation": m.Kind.String(),
		"freq_hz":    m.FreqHz,
		"depth":      m.Depth,
	}).Debug("channels modulated")
	return r.normalize(mod)
}

func (r *run) window(b stereo.Buffer) (stereo.Buffer, error) {
	w := r.cfg.Window
	sr := r.tb.SampleRate

	var fn func([]float64) ([]float64, error)
	switch w.Kind {
	case NoWindow:
		return b, nil
	case RaisedCosineWindow:
		fn = func(x []float64) ([]float64, error) {
			return window.ApplyRaisedCosine(x, sr, w.Beta, w.LengthMs)
		}
	case CosineRampWindow:
		fn = func(x []float64) ([]float64, error) {
			return window.ApplyCosineRamp(x, sr, w.LengthMs)
		}
	}

	out, err := b.Map(fn)
	if err != nil {
		return stereo.Buffer{}, err
	}

	r.log.WithFields(logrus.Fields{
		"window":    w.Kind.String(),
		"length_ms": w.LengthMs,
	}).Debug("onset and offset shaped")
	return out, nil
}
