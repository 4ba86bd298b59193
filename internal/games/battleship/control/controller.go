package control

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

// ErrNoSession is returned by session operations before StartGame.
var ErrNoSession = errors.New("no game in progress")

// Options configures a Controller.
type Options struct {
	Width      int
	Height     int
	Fleet      []core.ShipName
	Scoring    core.Scoring
	Difficulty ai.Level
	Seed       int64
	Sink       core.Sink // Receives every session's events
}

// Controller owns the state stack and the current session. One Controller
// serves one player; controllers share nothing.
type Controller struct {
	opts       Options
	stack      *StateStack
	difficulty ai.Level
	rng        *rand.Rand
	session    *core.Session
	games      int
}

// NewController returns a controller showing the main menu.
func NewController(opts Options) *Controller {
	if opts.Sink == nil {
		opts.Sink = core.NopSink{}
	}
	return &Controller{
		opts:       opts,
		stack:      NewStateStack(),
		difficulty: opts.Difficulty,
		rng:        rand.New(rand.NewSource(opts.Seed)),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.stack.Current()
}

// Stack returns the state stack.
func (c *Controller) Stack() *StateStack {
	return c.stack
}

// Done reports whether the program should exit.
func (c *Controller) Done() bool {
	return c.stack.Done()
}

// Difficulty returns the level used for the next game.
func (c *Controller) Difficulty() ai.Level {
	return c.difficulty
}

// SetDifficulty sets the level used for the next game.
func (c *Controller) SetDifficulty(level ai.Level) {
	c.difficulty = level
}

// Session returns the current session, or nil before the first game.
func (c *Controller) Session() *core.Session {
	return c.session
}

// Games returns how many sessions have been started.
func (c *Controller) Games() int {
	return c.games
}

// StartGame abandons any current session, creates a new one against a fresh
// AI for the current difficulty and moves to deployment.
func (c *Controller) StartGame() error {
	if c.session != nil {
		c.session.End()
	}

	s, err := core.NewSession(core.SessionOptions{
		Width:      c.opts.Width,
		Height:     c.opts.Height,
		Fleet:      c.opts.Fleet,
		Computer:   ai.New(c.difficulty, c.rng),
		Rng:        c.rng,
		Sink:       c.opts.Sink,
		Scoring:    c.opts.Scoring,
		Difficulty: c.difficulty.String(),
	})
	if err != nil {
		return err
	}
	c.session = s
	c.games++

	if c.stack.Current().InGame() {
		return c.stack.Switch(Deploying)
	}
	return c.stack.Push(Deploying)
}

// RandomDeploy places the human's undeployed ships at random.
func (c *Controller) RandomDeploy() error {
	if c.session == nil {
		return ErrNoSession
	}
	return c.session.RandomDeploy(c.rng)
}

// EndDeployment starts the battle and moves to discovery.
func (c *Controller) EndDeployment() error {
	if c.session == nil {
		return ErrNoSession
	}
	if err := c.session.EndDeployment(); err != nil {
		return err
	}
	return c.stack.Switch(Discovering)
}

// Attack fires the human's shot. When the shot ends the game the controller
// moves to the end screen.
func (c *Controller) Attack(row, col int) (core.Turn, error) {
	if c.session == nil {
		return core.Turn{}, ErrNoSession
	}
	turn, err := c.session.Attack(row, col)
	if err != nil {
		return turn, err
	}
	if turn.Phase == core.PhaseGameOver {
		if err := c.stack.Switch(EndingGame); err != nil {
			return turn, err
		}
	}
	return turn, nil
}

// EndGame abandons the current session and leaves every in-game screen.
func (c *Controller) EndGame() {
	if c.session != nil {
		c.session.End()
	}
	for c.stack.Current().InGame() {
		if _, err := c.stack.Pop(); err != nil {
			return
		}
	}
}

// Quit ends any session and empties the stack down to the sentinel.
func (c *Controller) Quit() {
	if c.session != nil {
		c.session.End()
	}
	c.stack.Unwind()
}

// PushState moves to a new state, keeping the current one to return to.
func (c *Controller) PushState(s State) error {
	return c.stack.Push(s)
}

// SwitchState replaces the current state.
func (c *Controller) SwitchState(s State) error {
	return c.stack.Switch(s)
}

// PopState returns to the previous state.
func (c *Controller) PopState() error {
	_, err := c.stack.Pop()
	return err
}
