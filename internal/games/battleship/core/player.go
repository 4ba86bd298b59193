package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrFleetDoesNotFit is returned by RandomDeploy when the remaining ships
// cannot all be placed.
var ErrFleetDoesNotFit = errors.New("fleet does not fit on the grid")

// Scoring defines how a player's score is derived from their statistics.
type Scoring struct {
	HitPoints   int // Added per hit on the enemy
	ShotCost    int // Subtracted per shot fired
	LossPenalty int // Subtracted per own ship destroyed
}

// DefaultScoring returns the standard scoring rules.
func DefaultScoring() Scoring {
	return Scoring{HitPoints: 12, ShotCost: 1, LossPenalty: 20}
}

// Player owns one grid, the fleet that must be deployed on it, and the
// statistics of the shots it has fired.
type Player struct {
	id    PlayerID
	grid  *Grid
	fleet []ShipName
	view  *Knowledge // What this player has learnt about the opponent

	shots  int
	hits   int
	misses int
}

// NewPlayer creates a player with an empty w×h grid and the given fleet.
// An empty fleet means one of each ShipName. Duplicate names are dropped.
func NewPlayer(id PlayerID, w, h int, fleet []ShipName) *Player {
	if len(fleet) == 0 {
		fleet = AllShips()
	}
	seen := make(map[ShipName]bool, len(fleet))
	unique := make([]ShipName, 0, len(fleet))
	for _, n := range fleet {
		if n.Valid() && !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}

	grid := NewGrid(w, h)
	return &Player{
		id:    id,
		grid:  grid,
		fleet: unique,
		view:  NewKnowledge(grid.Width(), grid.Height(), unique),
	}
}

// ID returns which side this player is.
func (p *Player) ID() PlayerID {
	return p.id
}

// Grid returns the player's own grid.
func (p *Player) Grid() *Grid {
	return p.grid
}

// Knowledge returns the player's record of shots at the opponent.
func (p *Player) Knowledge() *Knowledge {
	return p.view
}

// Fleet returns the ship names this player must deploy.
func (p *Player) Fleet() []ShipName {
	out := make([]ShipName, len(p.fleet))
	copy(out, p.fleet)
	return out
}

func (p *Player) inFleet(name ShipName) bool {
	for _, n := range p.fleet {
		if n == name {
			return true
		}
	}
	return false
}

// Deploy places one ship of the fleet.
func (p *Player) Deploy(name ShipName, start Coord, orient Orientation) error {
	if !p.inFleet(name) {
		return &PlacementError{Ship: name, Start: start, Orient: orient, Err: ErrUnknownShip}
	}
	return p.grid.PlaceShip(name, start, orient)
}

// Undeploy removes a placed ship so it can be moved.
func (p *Player) Undeploy(name ShipName) bool {
	return p.grid.RemoveShip(name)
}

// Undeployed returns the fleet ships that are not yet on the grid.
func (p *Player) Undeployed() []ShipName {
	var out []ShipName
	for _, n := range p.fleet {
		if p.grid.Ship(n) == nil {
			out = append(out, n)
		}
	}
	return out
}

// IsDeployed reports whether every ship in the fleet has been placed.
func (p *Player) IsDeployed() bool {
	return len(p.Undeployed()) == 0
}

// RandomDeploy places every undeployed ship at a random valid position.
// Ships already on the grid stay where they are. Either every remaining ship
// is placed or the grid is left unchanged.
func (p *Player) RandomDeploy(rng *rand.Rand) error {
	ships := longestFirst(p.Undeployed())
	shuffle := func(c []placement) {
		rng.Shuffle(len(c), func(i, j int) { c[i], c[j] = c[j], c[i] })
	}
	budget := maxPlacementSteps
	if !fill(p.grid, ships, shuffle, &budget) {
		return fmt.Errorf("%d ships left: %w", len(ships), ErrFleetDoesNotFit)
	}
	return nil
}

// DestroyedCount returns the number of this player's ships that were sunk.
func (p *Player) DestroyedCount() int {
	count := 0
	for _, s := range p.grid.Ships() {
		if s.IsDestroyed() {
			count++
		}
	}
	return count
}

// IsDestroyed reports whether the whole fleet has been sunk.
func (p *Player) IsDestroyed() bool {
	return len(p.fleet) > 0 && p.DestroyedCount() == len(p.fleet)
}

// Shots returns the number of shots this player fired that changed state.
func (p *Player) Shots() int {
	return p.shots
}

// Hits returns the number of this player's shots that hit a ship.
func (p *Player) Hits() int {
	return p.hits
}

// Misses returns the number of this player's shots that found water.
func (p *Player) Misses() int {
	return p.misses
}

// Accuracy returns hits/shots in [0, 1].
func (p *Player) Accuracy() float64 {
	if p.shots == 0 {
		return 0
	}
	return float64(p.hits) / float64(p.shots)
}

// Score returns the player's score. A destroyed fleet scores zero.
func (p *Player) Score(s Scoring) int {
	if p.IsDestroyed() {
		return 0
	}
	return p.hits*s.HitPoints - p.shots*s.ShotCost - p.DestroyedCount()*s.LossPenalty
}

// Fire resolves an attack on defender and records the result against this
// player's statistics and knowledge.
func (p *Player) Fire(defender *Player, row, col int) AttackResult {
	r := Resolve(defender, row, col)
	p.record(r)
	return r
}

// record updates this player's statistics and knowledge after one of its shots.
func (p *Player) record(r AttackResult) {
	switch r.Outcome {
	case OutcomeMiss:
		p.shots++
		p.misses++
	case OutcomeHit, OutcomeDestroyed, OutcomeGameOver:
		p.shots++
		p.hits++
	default:
		return
	}
	p.view.Record(r)
}
