package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/sim"
)

var (
	flagGames      int
	flagLevel      string
	flagLayoutsDir string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure how fast each difficulty sinks a fleet",
	Long: `Let the computer fire at fixed fleet layouts until every ship is sunk and
report the shots it needed. Runs are deterministic for a given --seed.

Examples:
  battleship bench
  battleship bench --level hard --games 1000
  battleship bench --layouts ./layouts --seed 7`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func runBench(_ *cobra.Command, _ []string) {
	if flagGames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --games must be positive")
		os.Exit(1)
	}

	levels := ai.Levels()
	if flagLevel != "" {
		level, ok := ai.ParseLevel(flagLevel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, medium or hard)\n", flagLevel)
			os.Exit(1)
		}
		levels = []ai.Level{level}
	}

	var fleets []layouts.Layout
	if flagLayoutsDir != "" {
		loaded, err := layouts.NewLoader(flagLayoutsDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(loaded) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no valid layouts in %s\n", flagLayoutsDir)
			os.Exit(1)
		}
		fleets = loaded
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	for _, level := range levels {
		report, err := sim.Run(sim.Options{
			Level:   level,
			Games:   flagGames,
			Seed:    seed,
			Layouts: fleets,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("bench finished", "level", level, "games", report.Games, "shots", report.Shots)
		fmt.Println(report)
	}
}
