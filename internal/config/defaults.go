package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

// DefaultBattleshipConfig returns the default configuration.
func DefaultBattleshipConfig() BattleshipConfig {
	return BattleshipConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 10,
		},
		Fleet: []string{"tug", "submarine", "destroyer", "battleship", "aircraft_carrier"},
		AI: AIConfig{
			Difficulty: "hard",
		},
		Scoring: ScoringConfig{
			HitPoints:       12,
			ShotCost:        1,
			ShipLostPenalty: 20,
		},
		Display: DisplayConfig{
			FlashTicks:   20,
			AIDelayTicks: 15,
		},
	}
}
