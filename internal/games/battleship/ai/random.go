package ai

import (
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// Random fires at a uniformly random untried cell every turn.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates the Easy strategy.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) NextTarget(k *core.Knowledge) core.Coord {
	return pick(k, r.rng)
}

func (r *Random) Observe(core.AttackResult) {}
