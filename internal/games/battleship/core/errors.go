package core

import (
	"errors"
	"fmt"
)

// Placement errors. Returned during deployment only; the caller re-prompts.
var (
	ErrOutOfBounds   = errors.New("ship extends outside the grid")
	ErrOverlap       = errors.New("ship overlaps another ship")
	ErrUnknownShip   = errors.New("ship is not part of this fleet")
	ErrAlreadyPlaced = errors.New("ship is already placed")
)

// ErrInvalidTransition is returned when an operation is called in a phase that
// does not allow it. Well-formed callers never see it.
var ErrInvalidTransition = errors.New("invalid transition")

// PlacementError describes a rejected ship placement.
type PlacementError struct {
	Ship   ShipName
	Start  Coord
	Orient Orientation
	Err    error // One of the placement sentinels
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("place %s at %s %s: %v", e.Ship, e.Start, e.Orient, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}

// TransitionError describes an operation attempted in the wrong phase.
type TransitionError struct {
	Op     string
	Phase  Phase
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s during %s: %s", e.Op, e.Phase, e.Reason)
	}
	return fmt.Sprintf("%s not allowed during %s", e.Op, e.Phase)
}

// Is lets errors.Is(err, ErrInvalidTransition) match.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
