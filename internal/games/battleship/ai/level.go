// Package ai implements the computer opponent's targeting strategies.
// Every strategy sees only the attacker's own Knowledge of the opponent grid.
package ai

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// Level is a difficulty setting.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

// DefaultLevel is used when no difficulty has been chosen.
const DefaultLevel = Hard

// Levels returns all levels from easiest to hardest.
func Levels() []Level {
	return []Level{Easy, Medium, Hard}
}

// String returns the lower-case name used in config files and storage.
func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Title returns the display name.
func (l Level) Title() string {
	switch l {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Next cycles to the following level, wrapping from Hard to Easy.
func (l Level) Next() Level {
	return (l + 1) % 3
}

// Prev cycles to the preceding level, wrapping from Easy to Hard.
func (l Level) Prev() Level {
	return (l + 2) % 3
}

// ParseLevel converts a name to a Level. Unknown or empty input yields Hard
// and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	default:
		return DefaultLevel, false
	}
}

// New returns a fresh strategy for the level. Unknown levels get Hard.
func New(level Level, rng *rand.Rand) core.Targeter {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	switch level {
	case Easy:
		return NewRandom(rng)
	case Medium:
		return NewHunter(rng)
	default:
		return NewHeatMap(rng)
	}
}

// pick returns a uniformly random untried cell. It panics when none remain:
// the session never asks for a target after the game is over.
func pick(k *core.Knowledge, rng *rand.Rand) core.Coord {
	cells := k.Untried()
	if len(cells) == 0 {
		panic("ai: no untried cells remain")
	}
	return cells[rng.Intn(len(cells))]
}
