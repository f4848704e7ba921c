// Command stimgen generates stereo psychoacoustic noise stimuli.
//
// Usage:
//
//	stimgen [--verbose] <command> [flags]
//
// Examples:
//
//	stimgen presets
//	stimgen generate --preset akeroyd --shift 50 --out akeroyd.wav
//	stimgen generate --preset oscar --window raised-cosine --plot oscar.html
//	stimgen measure akeroyd.wav
//	stimgen plot --out akeroyd.html akeroyd.wav
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "stimgen",
		Usage:                "generate stereo noise stimuli for binaural hearing experiments",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every pipeline stage",
				EnvVars: []string{"STIMGEN_VERBOSE"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			log.SetOutput(cCtx.App.ErrWriter)
			if cCtx.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			generateCommand(),
			measureCommand(),
			plotCommand(),
			presetsCommand(),
		},
	}
}
