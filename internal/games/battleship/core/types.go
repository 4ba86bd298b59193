// Package core provides the combat engine for Battleship: grids, ships,
// fleets, attack resolution and the deploy/battle session.
// This package is UI-agnostic and deterministic given its rng.
package core

import "fmt"

// Default grid dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// Coord addresses a cell by row and column, both zero-based.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Neighbors returns the four orthogonal neighbours (up, right, down, left).
// Callers filter out-of-bounds results.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{c.Add(-1, 0), c.Add(0, 1), c.Add(1, 0), c.Add(0, -1)}
}

// Orientation is the direction a ship extends from its start cell.
type Orientation uint8

const (
	Horizontal Orientation = iota // extends to increasing columns
	Vertical                      // extends to increasing rows
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// delta returns the (dr, dc) step between consecutive ship cells.
func (o Orientation) delta() (int, int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

// ShipName identifies a vessel type. The numeric value is the ship's length.
type ShipName int

const (
	ShipNone ShipName = iota
	Tug
	Submarine
	Destroyer
	Battleship
	AircraftCarrier
)

// AllShips returns every vessel type in fleet order.
func AllShips() []ShipName {
	return []ShipName{Tug, Submarine, Destroyer, Battleship, AircraftCarrier}
}

// Length returns the number of cells the ship occupies.
func (n ShipName) Length() int {
	if !n.Valid() {
		return 0
	}
	return int(n)
}

// Valid reports whether n names a real vessel.
func (n ShipName) Valid() bool {
	return n >= Tug && n <= AircraftCarrier
}

// String returns the display name of the ship.
func (n ShipName) String() string {
	switch n {
	case Tug:
		return "Tug"
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	case Battleship:
		return "Battleship"
	case AircraftCarrier:
		return "Aircraft Carrier"
	default:
		return "None"
	}
}

// ParseShipName converts a config/layout name to a ShipName.
// Accepts display names and compact lower-case forms ("aircraft_carrier").
func ParseShipName(s string) (ShipName, bool) {
	switch s {
	case "Tug", "tug":
		return Tug, true
	case "Submarine", "submarine":
		return Submarine, true
	case "Destroyer", "destroyer":
		return Destroyer, true
	case "Battleship", "battleship":
		return Battleship, true
	case "Aircraft Carrier", "AircraftCarrier", "aircraft_carrier", "aircraftcarrier", "carrier":
		return AircraftCarrier, true
	default:
		return ShipNone, false
	}
}

// CellState is the state of one cell on a player's own grid.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Cell is a single grid square.
type Cell struct {
	State CellState
	Ship  ShipName // Set while State is CellShip or CellHit
}

// Attacked reports whether the cell has already been fired upon.
func (c Cell) Attacked() bool {
	return c.State == CellHit || c.State == CellMiss
}

// PlayerID identifies one side of a session.
type PlayerID uint8

const (
	HumanPlayer PlayerID = iota
	ComputerPlayer
)

// String returns a human-readable name for the side.
func (p PlayerID) String() string {
	switch p {
	case HumanPlayer:
		return "You"
	case ComputerPlayer:
		return "The AI"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side.
func (p PlayerID) Opponent() PlayerID {
	if p == HumanPlayer {
		return ComputerPlayer
	}
	return HumanPlayer
}
