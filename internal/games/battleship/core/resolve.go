package core

import "fmt"

// Outcome is the category of an attack's result.
type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeDestroyed
	OutcomeGameOver
	OutcomeShotAlready
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "Miss"
	case OutcomeHit:
		return "Hit"
	case OutcomeDestroyed:
		return "Destroyed"
	case OutcomeGameOver:
		return "GameOver"
	case OutcomeShotAlready:
		return "ShotAlready"
	default:
		return "Unknown"
	}
}

// Cue names the sound category a presentation layer plays for an outcome.
type Cue string

const (
	CueHit      Cue = "hit"
	CueMiss     Cue = "miss"
	CueSink     Cue = "sink"
	CueGameOver Cue = "gameover"
	CueError    Cue = "error"
)

// Cue returns the audio cue category for the outcome.
func (o Outcome) Cue() Cue {
	switch o {
	case OutcomeHit:
		return CueHit
	case OutcomeMiss:
		return CueMiss
	case OutcomeDestroyed:
		return CueSink
	case OutcomeGameOver:
		return CueGameOver
	default:
		return CueError
	}
}

// AttackResult is the immutable outcome of one attack.
type AttackResult struct {
	Outcome Outcome
	Row     int
	Col     int
	Ship    ShipName // Ship that was hit; ShipNone on a miss
	Sunk    []Coord  // Cells of the destroyed ship for Destroyed/GameOver
}

// Coord returns the target cell.
func (r AttackResult) Coord() Coord {
	return At(r.Row, r.Col)
}

// Mutated reports whether the attack changed the defender's grid.
func (r AttackResult) Mutated() bool {
	return r.Outcome != OutcomeShotAlready
}

// String returns the message shown after the attack, without the subject.
func (r AttackResult) String() string {
	switch r.Outcome {
	case OutcomeHit:
		return "hit something!"
	case OutcomeDestroyed:
		return fmt.Sprintf("destroyed the %s", r.Ship)
	case OutcomeGameOver:
		return "won the game!"
	case OutcomeMiss:
		return "missed"
	case OutcomeShotAlready:
		return "already shot that cell"
	default:
		return "did something unexpected"
	}
}

// Resolve fires at (row, col) on the defender's grid and returns the result.
// The same grid state and target always yield the same result.
func Resolve(defender *Player, row, col int) AttackResult {
	c := At(row, col)
	result := AttackResult{Row: row, Col: col}

	g := defender.Grid()
	if !g.InBounds(c) || g.Cell(c).Attacked() {
		result.Outcome = OutcomeShotAlready
		return result
	}

	ship := g.strike(c)
	if ship == nil {
		result.Outcome = OutcomeMiss
		return result
	}

	result.Ship = ship.Name()
	switch {
	case !ship.IsDestroyed():
		result.Outcome = OutcomeHit
	case defender.IsDestroyed():
		result.Outcome = OutcomeGameOver
		result.Sunk = ship.Coords()
	default:
		result.Outcome = OutcomeDestroyed
		result.Sunk = ship.Coords()
	}
	return result
}
