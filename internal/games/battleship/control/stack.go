// Package control drives a battle session through the screens of the game:
// a stack of states with a Quitting sentinel at the bottom, and the
// Controller that starts, advances and ends sessions.
package control

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// State is one screen of the program.
type State uint8

const (
	Quitting State = iota
	ViewingMainMenu
	ViewingGameMenu
	AlteringSettings
	Deploying
	Discovering
	EndingGame
	ViewingHighScores
	ViewingHelp
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Quitting:
		return "Quitting"
	case ViewingMainMenu:
		return "ViewingMainMenu"
	case ViewingGameMenu:
		return "ViewingGameMenu"
	case AlteringSettings:
		return "AlteringSettings"
	case Deploying:
		return "Deploying"
	case Discovering:
		return "Discovering"
	case EndingGame:
		return "EndingGame"
	case ViewingHighScores:
		return "ViewingHighScores"
	case ViewingHelp:
		return "ViewingHelp"
	default:
		return "Unknown"
	}
}

// InGame reports whether the state belongs to a running session.
func (s State) InGame() bool {
	switch s {
	case Deploying, Discovering, EndingGame, ViewingGameMenu:
		return true
	default:
		return false
	}
}

// StateStack is the screen history. Quitting is always at the bottom and can
// never be popped, so Current is always valid.
type StateStack struct {
	states []State
}

// NewStateStack returns a stack holding Quitting with the main menu on top.
func NewStateStack() *StateStack {
	return &StateStack{states: []State{Quitting, ViewingMainMenu}}
}

// Current returns the top state.
func (s *StateStack) Current() State {
	return s.states[len(s.states)-1]
}

// Len returns the number of states including the sentinel.
func (s *StateStack) Len() int {
	return len(s.states)
}

// Done reports whether only the Quitting sentinel remains.
func (s *StateStack) Done() bool {
	return s.Current() == Quitting
}

// Push makes state current, keeping the previous one to return to.
func (s *StateStack) Push(state State) error {
	if state == Quitting {
		return fmt.Errorf("push %s: %w", state, core.ErrInvalidTransition)
	}
	s.states = append(s.states, state)
	return nil
}

// Pop removes the current state and returns it. The sentinel cannot be popped.
func (s *StateStack) Pop() (State, error) {
	if len(s.states) == 1 {
		return Quitting, fmt.Errorf("pop %s: %w", Quitting, core.ErrInvalidTransition)
	}
	top := s.Current()
	s.states = s.states[:len(s.states)-1]
	return top, nil
}

// Switch replaces the current state with state.
func (s *StateStack) Switch(state State) error {
	if state == Quitting || len(s.states) == 1 {
		return fmt.Errorf("switch %s to %s: %w", s.Current(), state, core.ErrInvalidTransition)
	}
	s.states[len(s.states)-1] = state
	return nil
}

// Unwind pops every state above the sentinel.
func (s *StateStack) Unwind() {
	s.states = s.states[:1]
}

// States returns a copy of the stack, bottom first.
func (s *StateStack) States() []State {
	out := make([]State, len(s.states))
	copy(out, s.states)
	return out
}
