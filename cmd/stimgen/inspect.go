package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/cwbudde/algo-stimulus/dsp/stereo"
	"github.com/cwbudde/algo-stimulus/internal/plot"
	"github.com/cwbudde/algo-stimulus/internal/wavio"
	"github.com/cwbudde/algo-stimulus/measure/loudness"
	"github.com/cwbudde/algo-stimulus/stimulus"
)

var errNoInput = errors.New("stimgen: missing input file")

func inputPath(cCtx *cli.Context) (string, error) {
	if cCtx.NArg() != 1 {
		return "", errNoInput
	}
	return cCtx.Args().First(), nil
}

func measureCommand() *cli.Command {
	return &cli.Command{
		Name:      "measure",
		Aliases:   []string{"m"},
		Usage:     "print loudness and channel statistics of a WAV file",
		ArgsUsage: "<file.wav>",
		Action: func(cCtx *cli.Context) error {
			path, err := inputPath(cCtx)
			if err != nil {
				return err
			}
			b, sr, err := wavio.Read(path)
			if err != nil {
				return err
			}
			a, err := stereo.Analyze(b)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "file\t%s\n", path)
			fmt.Fprintf(w, "sample rate\t%d Hz\n", sr)
			fmt.Fprintf(w, "length\t%d samples (%.3f s)\n", b.Len(), float64(b.Len())/float64(sr))
			fmt.Fprintf(w, "correlation\t%.4f\n\n", a.Correlation)
			fmt.Fprintln(w, "channel\tLUFS\tpeak\tRMS\tmean")
			for _, ch := range []struct {
				name    string
				samples []float64
				stats   stereo.ChannelStats
			}{
				{"left", b.Left, a.Left},
				{"right", b.Right, a.Right},
			} {
				lufs := loudness.Integrated(ch.samples, float64(sr))
				fmt.Fprintf(w, "%s\t%.2f\t%.4f\t%.4f\t%.2e\n", ch.name, lufs, ch.stats.Peak, ch.stats.RMS, ch.stats.Mean)
			}
			return w.Flush()
		},
	}
}

func plotCommand() *cli.Command {
	var out string
	var points int

	return &cli.Command{
		Name:      "plot",
		Usage:     "write an HTML waveform and spectrum plot of a WAV file",
		ArgsUsage: "<file.wav>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output HTML path", Destination: &out, Required: true},
			&cli.IntFlag{Name: "points", Usage: "maximum points per series", Destination: &points, Value: plot.DefaultMaxPoints},
		},
		Action: func(cCtx *cli.Context) error {
			path, err := inputPath(cCtx)
			if err != nil {
				return err
			}
			b, sr, err := wavio.Read(path)
			if err != nil {
				return err
			}
			return writePlot(out, b, plot.Options{Title: path, SampleRate: sr, MaxPoints: points})
		},
	}
}

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "list the available presets",
		Action: func(cCtx *cli.Context) error {
			w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)
			for _, p := range stimulus.Presets() {
				fmt.Fprintf(w, "%s\t%s\n", p, p.Description())
			}
			return w.Flush()
		},
	}
}
