package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/cwbudde/algo-stimulus/dsp/shift"
	"github.com/cwbudde/algo-stimulus/dsp/stereo"
	"github.com/cwbudde/algo-stimulus/internal/plot"
	"github.com/cwbudde/algo-stimulus/internal/wavio"
	"github.com/cwbudde/algo-stimulus/stimulus"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen", "g"},
		Usage:   "render a preset to a stereo WAV file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Usage: "stimulus preset (see 'stimgen presets')", Value: stimulus.Bandpass.String(), EnvVars: []string{"STIMGEN_PRESET"}},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output WAV path", Required: true, EnvVars: []string{"STIMGEN_OUT"}},
			&cli.IntFlag{Name: "sample-rate", Aliases: []string{"r"}, Usage: "sample rate in Hz", EnvVars: []string{"STIMGEN_SAMPLE_RATE"}},
			&cli.IntFlag{Name: "duration", Aliases: []string{"d"}, Usage: "duration in whole seconds", EnvVars: []string{"STIMGEN_DURATION"}},
			&cli.Float64Flag{Name: "center", Usage: "passband center in Hz", EnvVars: []string{"STIMGEN_CENTER"}},
			&cli.Float64Flag{Name: "bandwidth", Usage: "passband width in Hz", EnvVars: []string{"STIMGEN_BANDWIDTH"}},
			&cli.Float64Flag{Name: "shift", Usage: "shift, carrier or beat frequency in Hz", EnvVars: []string{"STIMGEN_SHIFT"}},
			&cli.StringFlag{Name: "direction", Usage: "shift direction: toward-higher or toward-lower", EnvVars: []string{"STIMGEN_DIRECTION"}},
			&cli.Float64Flag{Name: "delay", Usage: "interaural delay in ms", EnvVars: []string{"STIMGEN_DELAY"}},
			&cli.Float64Flag{Name: "tone", Usage: "left tone of the binaural beat in Hz", EnvVars: []string{"STIMGEN_TONE"}},
			&cli.StringFlag{Name: "relation", Usage: "bandpass channel relation: independent, same-phase or anti-phase", EnvVars: []string{"STIMGEN_RELATION"}},
			&cli.Int64Flag{Name: "seed", Usage: "random seed", EnvVars: []string{"STIMGEN_SEED"}},
			&cli.Float64Flag{Name: "target", Usage: "integrated loudness target in LUFS", EnvVars: []string{"STIMGEN_TARGET"}},
			&cli.BoolFlag{Name: "strict", Usage: "fail when a rendered spectrum is not Hermitian", EnvVars: []string{"STIMGEN_STRICT"}},
			&cli.StringFlag{Name: "modulation", Usage: "amplitude modulation: none, sinusoidal or half-sine", EnvVars: []string{"STIMGEN_MODULATION"}},
			&cli.Float64Flag{Name: "mod-freq", Usage: "modulation frequency in Hz", EnvVars: []string{"STIMGEN_MOD_FREQ"}},
			&cli.Float64Flag{Name: "mod-depth", Usage: "modulation depth in [0, 1]", EnvVars: []string{"STIMGEN_MOD_DEPTH"}},
			&cli.StringFlag{Name: "window", Usage: "onset/offset window: none, raised-cosine or cosine-ramp", EnvVars: []string{"STIMGEN_WINDOW"}},
			&cli.Float64Flag{Name: "beta", Usage: "raised-cosine roll-off in [0, 1]", EnvVars: []string{"STIMGEN_BETA"}},
			&cli.Float64Flag{Name: "window-ms", Usage: "window length in ms", EnvVars: []string{"STIMGEN_WINDOW_MS"}},
			&cli.IntFlag{Name: "bit-depth", Usage: "PCM bit depth: 16, 24 or 32", Value: 24, EnvVars: []string{"STIMGEN_BIT_DEPTH"}},
			&cli.StringFlag{Name: "plot", Usage: "also write an HTML plot to this path", EnvVars: []string{"STIMGEN_PLOT"}},
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := configFromFlags(cCtx)
			if err != nil {
				return err
			}

			g := stimulus.NewGenerator(stimulus.WithLogger(log.StandardLogger()))
			b, err := g.Generate(cCtx.Context, cfg)
			if err != nil {
				return err
			}

			out := cCtx.String("out")
			if n := wavio.Clipped(b); n > 0 {
				log.WithFields(log.Fields{"path": out, "samples": n}).Warn("output clipped")
			}
			if err := wavio.WriteStereo(out, b, cfg.SampleRate, cCtx.Int("bit-depth")); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"path":    out,
				"preset":  cfg.Preset.String(),
				"samples": b.Len(),
			}).Info("stimulus written")

			if path := cCtx.String("plot"); path != "" {
				return writePlot(path, b, plot.Options{Title: cfg.Preset.String(), SampleRate: cfg.SampleRate})
			}
			return nil
		},
	}
}

// configFromFlags starts from the preset defaults and overrides only the
// flags that were set on the command line or in the environment.
func configFromFlags(cCtx *cli.Context) (stimulus.Config, error) {
	p, err := stimulus.ParsePreset(cCtx.String("preset"))
	if err != nil {
		return stimulus.Config{}, err
	}
	cfg := stimulus.DefaultConfig(p)

	ints := map[string]*int{
		"sample-rate": &cfg.SampleRate,
		"duration":    &cfg.Duration,
	}
	for name, dst := range ints {
		if cCtx.IsSet(name) {
			*dst = cCtx.Int(name)
		}
	}

	floats := map[string]*float64{
		"center":    &cfg.CenterHz,
		"bandwidth": &cfg.BandwidthHz,
		"shift":     &cfg.ShiftHz,
		"delay":     &cfg.DelayMs,
		"tone":      &cfg.ToneHz,
		"target":    &cfg.TargetLUFS,
		"mod-freq":  &cfg.Modulation.FreqHz,
		"mod-depth": &cfg.Modulation.Depth,
		"beta":      &cfg.Window.Beta,
		"window-ms": &cfg.Window.LengthMs,
	}
	for name, dst := range floats {
		if cCtx.IsSet(name) {
			*dst = cCtx.Float64(name)
		}
	}

	if cCtx.IsSet("seed") {
		cfg.Seed = cCtx.Int64("seed")
	}
	if cCtx.IsSet("strict") {
		cfg.StrictRender = cCtx.Bool("strict")
	}

	if cCtx.IsSet("direction") {
		if cfg.Direction, err = shift.ParseDirection(cCtx.String("direction")); err != nil {
			return stimulus.Config{}, err
		}
	}
	if cCtx.IsSet("relation") {
		if cfg.Relation, err = stereo.ParseRelation(cCtx.String("relation")); err != nil {
			return stimulus.Config{}, err
		}
	}
	if cCtx.IsSet("modulation") {
		if cfg.Modulation.Kind, err = stimulus.ParseModulation(cCtx.String("modulation")); err != nil {
			return stimulus.Config{}, err
		}
	}
	if cCtx.IsSet("window") {
		if cfg.Window.Kind, err = stimulus.ParseWindow(cCtx.String("window")); err != nil {
			return stimulus.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return stimulus.Config{}, err
	}
	return cfg, nil
}

func writePlot(path string, b stereo.Buffer, o plot.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plot.Render(f, b, o); err != nil {
		f.Close()
		return fmt.Errorf("plot %s: %w", path, err)
	}
	return f.Close()
}
