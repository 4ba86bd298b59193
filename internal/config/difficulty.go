package config

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
)

// ApplyDifficulty overrides the configured difficulty. An empty name leaves
// the configuration unchanged.
func ApplyDifficulty(cfg *BattleshipConfig, name string) error {
	if name == "" {
		return nil
	}
	level, ok := ai.ParseLevel(name)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
	}
	cfg.AI.Difficulty = level.String()
	return nil
}
