package tui

import (
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// StoreScores serves stored results to games as high scores.
type StoreScores struct {
	Store *storage.Store
}

// TopScores implements registry.ScoreSource.
func (s StoreScores) TopScores(difficulty string, limit int) ([]registry.HighScore, error) {
	results, err := s.Store.TopResults(difficulty, limit)
	if err != nil {
		return nil, err
	}
	out := make([]registry.HighScore, len(results))
	for i, r := range results {
		out[i] = registry.HighScore{
			Player:     r.Player,
			Difficulty: r.Difficulty,
			Score:      r.Score,
			Won:        r.Won,
		}
	}
	return out, nil
}
