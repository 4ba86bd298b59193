package core

// Mark is what an attacker knows about one opponent cell.
type Mark uint8

const (
	MarkUnknown Mark = iota
	MarkMiss
	MarkHit  // Hit, ship not yet sunk
	MarkSunk // Part of a ship that has been destroyed
)

// String returns the string representation of a mark.
func (m Mark) String() string {
	switch m {
	case MarkUnknown:
		return "Unknown"
	case MarkMiss:
		return "Miss"
	case MarkHit:
		return "Hit"
	case MarkSunk:
		return "Sunk"
	default:
		return "Invalid"
	}
}

// Knowledge is an attacker's own record of the opponent grid. It never holds
// ship identity for cells that have not been hit.
type Knowledge struct {
	w, h      int
	marks     []Mark
	remaining []ShipName // Opponent ships not yet sunk
	untried   int
}

// NewKnowledge creates an all-unknown record for a w×h opponent grid whose
// fleet is the given ships.
func NewKnowledge(w, h int, fleet []ShipName) *Knowledge {
	remaining := make([]ShipName, len(fleet))
	copy(remaining, fleet)
	return &Knowledge{
		w:         w,
		h:         h,
		marks:     make([]Mark, w*h),
		remaining: remaining,
		untried:   w * h,
	}
}

// Width returns the number of columns.
func (k *Knowledge) Width() int {
	return k.w
}

// Height returns the number of rows.
func (k *Knowledge) Height() int {
	return k.h
}

// InBounds returns true if the coordinate lies on the grid.
func (k *Knowledge) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < k.h && c.Col >= 0 && c.Col < k.w
}

// Mark returns what is known about c. Out-of-bounds cells read as a miss so
// strategies never pick them.
func (k *Knowledge) Mark(c Coord) Mark {
	if !k.InBounds(c) {
		return MarkMiss
	}
	return k.marks[c.Row*k.w+c.Col]
}

// IsUntried reports whether c is on the grid and has not been fired at.
func (k *Knowledge) IsUntried(c Coord) bool {
	return k.InBounds(c) && k.marks[c.Row*k.w+c.Col] == MarkUnknown
}

// UntriedCount returns the number of cells not yet fired at.
func (k *Knowledge) UntriedCount() int {
	return k.untried
}

// Untried returns every cell not yet fired at, in row-major order.
func (k *Knowledge) Untried() []Coord {
	out := make([]Coord, 0, k.untried)
	for row := 0; row < k.h; row++ {
		for col := 0; col < k.w; col++ {
			if k.marks[row*k.w+col] == MarkUnknown {
				out = append(out, At(row, col))
			}
		}
	}
	return out
}

// UnresolvedHits returns hit cells that do not yet belong to a sunk ship.
func (k *Knowledge) UnresolvedHits() []Coord {
	var out []Coord
	for row := 0; row < k.h; row++ {
		for col := 0; col < k.w; col++ {
			if k.marks[row*k.w+col] == MarkHit {
				out = append(out, At(row, col))
			}
		}
	}
	return out
}

// Remaining returns the opponent ships not yet sunk.
func (k *Knowledge) Remaining() []ShipName {
	out := make([]ShipName, len(k.remaining))
	copy(out, k.remaining)
	return out
}

func (k *Knowledge) set(c Coord, m Mark) {
	if !k.InBounds(c) {
		return
	}
	i := c.Row*k.w + c.Col
	if k.marks[i] == MarkUnknown && m != MarkUnknown {
		k.untried--
	}
	k.marks[i] = m
}

// Record applies the result of one of the owner's attacks.
// ShotAlready results carry no new information and are ignored.
func (k *Knowledge) Record(r AttackResult) {
	c := At(r.Row, r.Col)
	switch r.Outcome {
	case OutcomeMiss:
		k.set(c, MarkMiss)
	case OutcomeHit:
		k.set(c, MarkHit)
	case OutcomeDestroyed, OutcomeGameOver:
		k.set(c, MarkHit)
		for _, sc := range r.Sunk {
			k.set(sc, MarkSunk)
		}
		for i, n := range k.remaining {
			if n == r.Ship {
				k.remaining = append(k.remaining[:i], k.remaining[i+1:]...)
				break
			}
		}
	}
}
