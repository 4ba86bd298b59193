// Package config provides YAML-based configuration loading for Battleship.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// Grid size limits. Both grids must fit side by side on an 80x24 terminal.
const (
	MinGridSize = 5
	MaxGridSize = 12
)

// BattleshipConfig contains all configuration for a game of Battleship.
type BattleshipConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Fleet   []string      `yaml:"fleet"`
	AI      AIConfig      `yaml:"ai"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the size of each player's grid.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AIConfig selects the computer opponent.
type AIConfig struct {
	Difficulty string `yaml:"difficulty"` // "easy", "medium" or "hard"
}

// ScoringConfig defines how the player's score is computed.
type ScoringConfig struct {
	HitPoints       int `yaml:"hit_points"`
	ShotCost        int `yaml:"shot_cost"`
	ShipLostPenalty int `yaml:"ship_lost_penalty"`
}

// DisplayConfig tunes presentation timing, in simulation ticks.
type DisplayConfig struct {
	FlashTicks   int `yaml:"flash_ticks"`    // How long a hit/miss marker flashes
	AIDelayTicks int `yaml:"ai_delay_ticks"` // Pause before the AI's shot is revealed
}

// Ships converts the fleet names to ship types. An empty fleet means one of
// each ship.
func (c BattleshipConfig) Ships() ([]core.ShipName, error) {
	if len(c.Fleet) == 0 {
		return core.AllShips(), nil
	}
	seen := make(map[core.ShipName]bool)
	ships := make([]core.ShipName, 0, len(c.Fleet))
	for _, name := range c.Fleet {
		n, ok := core.ParseShipName(name)
		if !ok {
			return nil, fmt.Errorf("unknown ship %q", name)
		}
		if seen[n] {
			return nil, fmt.Errorf("ship %s listed twice", n)
		}
		seen[n] = true
		ships = append(ships, n)
	}
	return ships, nil
}

// Level returns the configured difficulty, falling back to Hard.
func (c BattleshipConfig) Level() ai.Level {
	level, _ := ai.ParseLevel(c.AI.Difficulty)
	return level
}

// CoreScoring converts the scoring section for the engine.
func (c BattleshipConfig) CoreScoring() core.Scoring {
	return core.Scoring{
		HitPoints:   c.Scoring.HitPoints,
		ShotCost:    c.Scoring.ShotCost,
		LossPenalty: c.Scoring.ShipLostPenalty,
	}
}

// Validate checks that the configuration describes a playable game.
func (c BattleshipConfig) Validate() error {
	var errs []error

	for _, dim := range []struct {
		name string
		val  int
	}{{"width", c.Grid.Width}, {"height", c.Grid.Height}} {
		if dim.val < MinGridSize || dim.val > MaxGridSize {
			errs = append(errs, fmt.Errorf("grid %s %d outside [%d, %d]", dim.name, dim.val, MinGridSize, MaxGridSize))
		}
	}

	ships, err := c.Ships()
	if err != nil {
		errs = append(errs, err)
	} else if len(errs) == 0 {
		if !core.FleetFits(c.Grid.Width, c.Grid.Height, ships) {
			errs = append(errs, fmt.Errorf("fleet: %w", core.ErrFleetDoesNotFit))
		}
	}

	if c.AI.Difficulty != "" {
		if _, ok := ai.ParseLevel(c.AI.Difficulty); !ok {
			errs = append(errs, fmt.Errorf("unknown difficulty %q", c.AI.Difficulty))
		}
	}

	if c.Scoring.HitPoints < 0 || c.Scoring.ShotCost < 0 || c.Scoring.ShipLostPenalty < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if c.Display.FlashTicks < 0 || c.Display.AIDelayTicks < 0 {
		errs = append(errs, errors.New("display ticks must not be negative"))
	}

	return errors.Join(errs...)
}
