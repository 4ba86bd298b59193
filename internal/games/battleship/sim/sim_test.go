package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/sim"
)

func TestRunIsDeterministic(t *testing.T) {
	opts := sim.Options{Level: ai.Medium, Games: 12, Seed: 5}

	a, err := sim.Run(opts)
	require.NoError(t, err)
	b, err := sim.Run(opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunReport(t *testing.T) {
	r, err := sim.Run(sim.Options{Level: ai.Easy, Games: 8, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, 8, r.Games)
	// Every game needs exactly 15 hits to sink the standard fleet.
	assert.Equal(t, 8*15, r.Hits)
	assert.GreaterOrEqual(t, r.MinShots, 15)
	assert.LessOrEqual(t, r.MaxShots, 100)
	assert.LessOrEqual(t, r.MinShots, r.MaxShots)
	assert.InDelta(t, float64(r.Hits)/float64(r.Shots), r.HitRate(), 1e-9)
	assert.Contains(t, r.String(), "easy")
}

func TestRunZeroGames(t *testing.T) {
	r, err := sim.Run(sim.Options{Level: ai.Hard})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.MeanShots())
	assert.Equal(t, 0.0, r.HitRate())
}
