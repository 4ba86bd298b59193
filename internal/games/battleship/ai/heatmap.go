package ai

import (
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// HeatMap scores every untried cell by how many legal placements of the
// remaining enemy ships cover it, and fires at the hottest.
//
// While unresolved hits exist only placements through those hits count,
// weighted by how many they cover. Otherwise the search is restricted to
// cells on the parity lattice of the smallest remaining ship.
type HeatMap struct {
	rng *rand.Rand
}

// NewHeatMap creates the Hard strategy.
func NewHeatMap(rng *rand.Rand) *HeatMap {
	return &HeatMap{rng: rng}
}

func (h *HeatMap) NextTarget(k *core.Knowledge) core.Coord {
	if k.UntriedCount() == 0 {
		panic("ai: no untried cells remain")
	}

	if len(k.UnresolvedHits()) > 0 {
		if c, ok := h.hottest(k, Heat(k, true), nil); ok {
			return c
		}
	}

	heat := Heat(k, false)
	if c, ok := h.hottest(k, heat, parity(k)); ok {
		return c
	}
	if c, ok := h.hottest(k, heat, nil); ok {
		return c
	}
	return pick(k, h.rng)
}

func (h *HeatMap) Observe(core.AttackResult) {}

// hottest returns the untried cell with the highest positive heat among
// those accepted by keep (all cells when keep is nil). Ties are broken at
// random.
func (h *HeatMap) hottest(k *core.Knowledge, heat []int, keep func(core.Coord) bool) (core.Coord, bool) {
	best := 0
	var candidates []core.Coord
	for _, c := range k.Untried() {
		if keep != nil && !keep(c) {
			continue
		}
		v := heat[c.Row*k.Width()+c.Col]
		switch {
		case v > best:
			best = v
			candidates = append(candidates[:0], c)
		case v == best && v > 0:
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return core.Coord{}, false
	}
	return candidates[h.rng.Intn(len(candidates))], true
}

// Heat returns a row-major count of placements of the remaining ships that
// cover each untried cell. Placements crossing a miss or a sunk ship are
// illegal. In target mode only placements through at least one unresolved
// hit are counted, each weighted by the number of hits it covers.
func Heat(k *core.Knowledge, target bool) []int {
	w, h := k.Width(), k.Height()
	heat := make([]int, w*h)

	for _, ship := range k.Remaining() {
		n := ship.Length()
		for _, orient := range []core.Orientation{core.Horizontal, core.Vertical} {
			dr, dc := 0, 1
			if orient == core.Vertical {
				dr, dc = 1, 0
			}
			for row := 0; row < h; row++ {
				for col := 0; col < w; col++ {
					weight, ok := placement(k, core.At(row, col), dr, dc, n)
					if !ok {
						continue
					}
					if target {
						if weight == 0 {
							continue
						}
					} else {
						weight = 1
					}
					for i := 0; i < n; i++ {
						c := core.At(row+dr*i, col+dc*i)
						if k.Mark(c) == core.MarkUnknown {
							heat[c.Row*w+c.Col] += weight
						}
					}
				}
			}
		}
	}
	return heat
}

// placement reports whether a ship of length n fits at start and how many
// unresolved hits it covers.
func placement(k *core.Knowledge, start core.Coord, dr, dc, n int) (int, bool) {
	hits := 0
	for i := 0; i < n; i++ {
		c := start.Add(dr*i, dc*i)
		if !k.InBounds(c) {
			return 0, false
		}
		switch k.Mark(c) {
		case core.MarkMiss, core.MarkSunk:
			return 0, false
		case core.MarkHit:
			hits++
		}
	}
	return hits, true
}

// parity keeps cells on the lattice every placement of the smallest
// remaining ship must touch.
func parity(k *core.Knowledge) func(core.Coord) bool {
	step := 0
	for _, ship := range k.Remaining() {
		if step == 0 || ship.Length() < step {
			step = ship.Length()
		}
	}
	if step <= 1 {
		return nil
	}
	return func(c core.Coord) bool {
		return (c.Row+c.Col)%step == 0
	}
}
