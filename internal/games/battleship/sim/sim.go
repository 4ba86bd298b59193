// Package sim plays the computer's targeting strategies against fixed fleet
// layouts and reports how efficiently they sink them.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
)

// Options configures a simulation run.
type Options struct {
	Level   ai.Level
	Games   int
	Seed    int64
	Layouts []layouts.Layout // Empty means the built-in layouts
}

// Report summarises a run.
type Report struct {
	Level    ai.Level
	Games    int
	Shots    int
	Hits     int
	MinShots int
	MaxShots int
}

// MeanShots returns the average number of shots needed to sink a fleet.
func (r Report) MeanShots() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Shots) / float64(r.Games)
}

// HitRate returns hits/shots in [0, 1].
func (r Report) HitRate() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Shots)
}

// String returns a one-line summary.
func (r Report) String() string {
	return fmt.Sprintf("%s: %d games, %.1f shots/game (min %d, max %d), hit rate %.1f%%",
		r.Level, r.Games, r.MeanShots(), r.MinShots, r.MaxShots, r.HitRate()*100)
}

// Run plays opts.Games games, cycling through the layouts. The same options
// always produce the same report.
func Run(opts Options) (Report, error) {
	fleets := opts.Layouts
	if len(fleets) == 0 {
		builtin, err := layouts.Builtin()
		if err != nil {
			return Report{}, err
		}
		fleets = builtin
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	report := Report{Level: opts.Level}

	for i := 0; i < opts.Games; i++ {
		layout := fleets[i%len(fleets)]
		shots, hits, err := play(layout, ai.New(opts.Level, rng))
		if err != nil {
			return Report{}, fmt.Errorf("game %d: %w", i, err)
		}

		report.Games++
		report.Shots += shots
		report.Hits += hits
		if report.MinShots == 0 || shots < report.MinShots {
			report.MinShots = shots
		}
		if shots > report.MaxShots {
			report.MaxShots = shots
		}
	}
	return report, nil
}

// play lets the targeter fire until the layout's fleet is sunk.
func play(layout layouts.Layout, t core.Targeter) (shots, hits int, err error) {
	defender, err := layout.NewPlayer(core.HumanPlayer)
	if err != nil {
		return 0, 0, err
	}
	attacker := core.NewPlayer(core.ComputerPlayer, layout.Width, layout.Height, layout.Fleet())

	limit := layout.Width * layout.Height
	for !defender.IsDestroyed() {
		if attacker.Shots() >= limit {
			return 0, 0, fmt.Errorf("fleet not sunk after %d shots", limit)
		}
		c := t.NextTarget(attacker.Knowledge())
		t.Observe(attacker.Fire(defender, c.Row, c.Col))
	}
	return attacker.Shots(), attacker.Hits(), nil
}
