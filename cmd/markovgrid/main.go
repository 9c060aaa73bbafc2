// Command markovgrid runs a rule-tree defined in a DSL source file to
// exhaustion over a fresh grid, then optionally prints the result.
//
// Usage:
//
//	markovgrid --rules rules.txt --width 20 --height 20 --seed 1 --max-steps 10000
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/markovgrid/dsl"
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/palette"
	"github.com/katalvlaran/markovgrid/rng"
	"github.com/katalvlaran/markovgrid/visualize"
)

func main() {
	var (
		width    = pflag.Int("width", 20, "grid width")
		height   = pflag.Int("height", 20, "grid height")
		seed     = pflag.Int64("seed", 1, "rng seed")
		rulesSrc = pflag.String("rules", "", "path to a DSL rule source file (required)")
		maxSteps = pflag.Int("max-steps", 1_000_000, "maximum productive steps before giving up")
		render   = pflag.Bool("visualize", false, "print an ANSI frame of the final grid")
	)
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	if *rulesSrc == "" {
		log.Fatal().Msg("--rules is required")
	}

	root, alphabet, err := dsl.ParseFile(*rulesSrc)
	if err != nil {
		log.Fatal().Err(err).Str("path", *rulesSrc).Msg("failed to parse rule source")
	}

	g, err := grid.New(*width, *height, alphabet.String())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to construct grid")
	}

	rg := rng.New(*seed)
	steps := 0
	for steps < *maxSteps && root.Step(g, rg) {
		steps++
	}
	log.Info().Int("steps", steps).Msg("run exhausted")

	if *render {
		r := visualize.NewRenderer(palette.Standard())
		os.Stdout.WriteString(r.Frame(g))
		os.Stdout.WriteString("\n")
	}
}
