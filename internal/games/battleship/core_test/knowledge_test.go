package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

func TestKnowledgeStartsUnknown(t *testing.T) {
	k := core.NewKnowledge(4, 3, core.AllShips())
	assert.Equal(t, 12, k.UntriedCount())
	assert.Len(t, k.Untried(), 12)
	assert.Equal(t, core.MarkUnknown, k.Mark(core.At(2, 3)))
	assert.Equal(t, core.MarkMiss, k.Mark(core.At(3, 0)), "out of bounds reads as miss")
	assert.False(t, k.IsUntried(core.At(-1, 0)))
}

func TestKnowledgeRecord(t *testing.T) {
	k := core.NewKnowledge(10, 10, []core.ShipName{core.Tug, core.Submarine})

	k.Record(core.AttackResult{Outcome: core.OutcomeMiss, Row: 0, Col: 0})
	k.Record(core.AttackResult{Outcome: core.OutcomeHit, Row: 5, Col: 5, Ship: core.Submarine})
	assert.Equal(t, core.MarkMiss, k.Mark(core.At(0, 0)))
	assert.Equal(t, core.MarkHit, k.Mark(core.At(5, 5)))
	assert.Equal(t, []core.Coord{core.At(5, 5)}, k.UnresolvedHits())
	assert.Equal(t, 98, k.UntriedCount())

	k.Record(core.AttackResult{
		Outcome: core.OutcomeDestroyed,
		Row:     5,
		Col:     6,
		Ship:    core.Submarine,
		Sunk:    []core.Coord{core.At(5, 5), core.At(5, 6)},
	})
	assert.Equal(t, core.MarkSunk, k.Mark(core.At(5, 5)))
	assert.Equal(t, core.MarkSunk, k.Mark(core.At(5, 6)))
	assert.Empty(t, k.UnresolvedHits())
	assert.Equal(t, []core.ShipName{core.Tug}, k.Remaining())
	assert.Equal(t, 97, k.UntriedCount())
}

func TestKnowledgeIgnoresShotAlready(t *testing.T) {
	k := core.NewKnowledge(10, 10, core.AllShips())
	k.Record(core.AttackResult{Outcome: core.OutcomeShotAlready, Row: 1, Col: 1})
	assert.Equal(t, 100, k.UntriedCount())
	assert.True(t, k.IsUntried(core.At(1, 1)))
}
