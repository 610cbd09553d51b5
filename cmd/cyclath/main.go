// Command cyclath runs the lattice self-test: it rebuilds the 4×4×4
// periodic lattice scenario and verifies every documented count — the
// homodromic and crude directed 4-cycles, their boundary-spanning
// difference, and the classified undirected cycle pairs.
//
// Usage:
//
//	cyclath [-debug]
//
// -debug logs every enumerated cycle; the default level reports stages and
// counts only. Exit status 1 on any failed check.
package main

import (
	"flag"
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/katalvlaran/cyclath/dicycle"
	"github.com/katalvlaran/cyclath/lattice"
	"github.com/rs/zerolog"
)

// Scenario constants: seed 127 orients the 4×4×4 lattice so the reference
// counts below hold. They are the regression baseline for the module.
const (
	scenarioSide = 4
	scenarioSeed = 127
	scenarioSize = 4

	wantHomodromic = 25
	wantCrude      = 33
	wantSpanning   = 8
	wantOriented   = 240
)

func main() {
	debug := flag.Bool("debug", false, "log every enumerated cycle")
	flag.Parse()

	console := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05"
	})
	logger := zerolog.New(console).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *debug {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("self-test failed")
	}
	logger.Info().Msg("all checks passed")
}

// run executes the four scenario checks in order and stops on the first
// failure.
func run(logger zerolog.Logger) error {
	lat, err := lattice.New(scenarioSide, lattice.WithSeed(scenarioSeed))
	if err != nil {
		return err
	}
	g, err := lat.Digraph()
	if err != nil {
		return err
	}
	logger.Info().
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int64("seed", scenarioSeed).
		Msg("lattice ready")

	// 1) Homodromic directed 4-cycles.
	homodromic, err := collect(logger, "homodromic",
		dicycle.Enumerate(g, scenarioSize, dicycle.WithHomodromic()))
	if err != nil {
		return err
	}
	if len(homodromic) != wantHomodromic {
		return fmt.Errorf("homodromic count %d, want %d", len(homodromic), wantHomodromic)
	}
	logger.Info().Int("count", len(homodromic)).Msg("homodromic cycles ok")

	// 2) Crude (unfiltered) directed 4-cycles.
	crude, err := collect(logger, "crude", dicycle.Enumerate(g, scenarioSize))
	if err != nil {
		return err
	}
	if len(crude) != wantCrude {
		return fmt.Errorf("crude count %d, want %d", len(crude), wantCrude)
	}
	logger.Info().Int("count", len(crude)).Msg("crude cycles ok")

	// 3) The crude surplus must be exactly the boundary-spanning cycles.
	//    Matching counts here also prove the homodromic stream is a subset
	//    of the crude one.
	seen := make(map[string]struct{}, len(homodromic))
	for _, c := range homodromic {
		seen[strings.Join(c, ",")] = struct{}{}
	}
	spanning := 0
	for _, c := range crude {
		if _, ok := seen[strings.Join(c, ",")]; !ok {
			spanning++
			logger.Debug().Strs("cycle", c).Msg("spanning")
		}
	}
	if spanning != wantSpanning {
		return fmt.Errorf("spanning count %d, want %d", spanning, wantSpanning)
	}
	logger.Info().Int("count", spanning).Msg("spanning difference ok")

	// 4) Orientation classification over the undirected view.
	oriented := 0
	for oc, cErr := range dicycle.Classify(g, scenarioSize) {
		if cErr != nil {
			return cErr
		}
		oriented++
		logger.Debug().Strs("cycle", oc.Cycle).Bools("forward", oc.Forward).Msg("oriented")
	}
	if oriented != wantOriented {
		return fmt.Errorf("oriented pair count %d, want %d", oriented, wantOriented)
	}
	logger.Info().Int("count", oriented).Msg("oriented pairs ok")

	return nil
}

// collect drains a cycle stream into a slice, logging each element at debug
// level, and surfaces the stream's terminal error if any.
func collect(logger zerolog.Logger, stage string, seq iter.Seq2[dicycle.Cycle, error]) ([][]string, error) {
	var out [][]string
	for c, err := range seq {
		if err != nil {
			return nil, fmt.Errorf("%s enumeration: %w", stage, err)
		}
		out = append(out, c)
		logger.Debug().Strs("cycle", c).Msg(stage)
	}

	return out, nil
}
