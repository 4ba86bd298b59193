package ai

import (
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// Hunter searches at random until it hits, then works through the hit's
// orthogonal neighbours before searching again.
type Hunter struct {
	rng   *rand.Rand
	stack []core.Coord
}

// NewHunter creates the Medium strategy.
func NewHunter(rng *rand.Rand) *Hunter {
	return &Hunter{rng: rng}
}

func (h *Hunter) NextTarget(k *core.Knowledge) core.Coord {
	if len(h.stack) == 0 {
		// A sink clears the stack; pick up hits on other ships that are still afloat.
		for _, c := range k.UnresolvedHits() {
			h.push(c)
		}
	}
	for len(h.stack) > 0 {
		c := h.stack[len(h.stack)-1]
		h.stack = h.stack[:len(h.stack)-1]
		if k.IsUntried(c) {
			return c
		}
	}
	return pick(k, h.rng)
}

func (h *Hunter) Observe(r core.AttackResult) {
	switch r.Outcome {
	case core.OutcomeHit:
		h.push(r.Coord())
	case core.OutcomeDestroyed, core.OutcomeGameOver:
		h.stack = h.stack[:0]
	}
}

// push queues the neighbours of c. Out-of-bounds and tried cells are skipped
// when popped.
func (h *Hunter) push(c core.Coord) {
	n := c.Neighbors()
	for i := len(n) - 1; i >= 0; i-- {
		h.stack = append(h.stack, n[i])
	}
}
