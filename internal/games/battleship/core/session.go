package core

import (
	"fmt"
	"math/rand"
)

// Phase is the stage of a battle session.
type Phase uint8

const (
	PhaseDeploying Phase = iota
	PhaseBattle
	PhaseGameOver
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseDeploying:
		return "Deploying"
	case PhaseBattle:
		return "Battle"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Targeter chooses where a computer-controlled player fires next.
// NextTarget must return a cell that k reports as untried.
type Targeter interface {
	NextTarget(k *Knowledge) Coord
	Observe(r AttackResult)
}

// Shot is one resolved attack and who fired it.
type Shot struct {
	By     PlayerID
	Result AttackResult
}

// Sink receives outcome notifications as a session resolves attacks.
// Implementations must not call back into the session.
type Sink interface {
	// AttackResolved is called exactly once per resolved attack.
	AttackResolved(s Shot)
	// GridChanged is called after an attack mutated the owner's grid.
	GridChanged(owner PlayerID)
}

// NopSink discards all notifications.
type NopSink struct{}

func (NopSink) AttackResolved(Shot)  {}
func (NopSink) GridChanged(PlayerID) {}

// Turn reports every shot resolved by one Attack call, in firing order.
type Turn struct {
	Shots []Shot
	Phase Phase    // Phase after the call
	Next  PlayerID // Side to act next
}

// Human returns the human's shot; every Turn starts with it.
func (t Turn) Human() AttackResult {
	return t.Shots[0].Result
}

// Computer returns the computer's reply, if it fired.
func (t Turn) Computer() (AttackResult, bool) {
	for _, s := range t.Shots {
		if s.By == ComputerPlayer {
			return s.Result, true
		}
	}
	return AttackResult{}, false
}

// SessionOptions configures a new session.
type SessionOptions struct {
	Width      int
	Height     int
	Fleet      []ShipName // Empty means one of each ShipName
	Computer   Targeter   // Required
	Rng        *rand.Rand // Used for the computer's deployment
	Sink       Sink       // Optional
	Scoring    Scoring    // Zero value means DefaultScoring
	Difficulty string     // Label carried into Summary
}

// Session is one human-versus-computer game. It is not safe for concurrent use;
// independent sessions share nothing.
type Session struct {
	phase      Phase
	players    [2]*Player
	turn       PlayerID
	winner     PlayerID
	computer   Targeter
	sink       Sink
	scoring    Scoring
	difficulty string
	ended      bool
}

// NewSession creates a session in the Deploying phase. The computer's fleet is
// deployed immediately; the human deploys through Deploy or RandomDeploy.
func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Computer == nil {
		return nil, fmt.Errorf("new session: computer targeter is required")
	}
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	sink := opts.Sink
	if sink == nil {
		sink = NopSink{}
	}
	scoring := opts.Scoring
	if scoring == (Scoring{}) {
		scoring = DefaultScoring()
	}

	s := &Session{
		phase:      PhaseDeploying,
		computer:   opts.Computer,
		sink:       sink,
		scoring:    scoring,
		difficulty: opts.Difficulty,
		turn:       HumanPlayer,
	}
	s.players[HumanPlayer] = NewPlayer(HumanPlayer, opts.Width, opts.Height, opts.Fleet)
	s.players[ComputerPlayer] = NewPlayer(ComputerPlayer, opts.Width, opts.Height, opts.Fleet)

	if err := s.players[ComputerPlayer].RandomDeploy(rng); err != nil {
		return nil, fmt.Errorf("new session: deploy computer fleet: %w", err)
	}
	return s, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Human returns the human player.
func (s *Session) Human() *Player {
	return s.players[HumanPlayer]
}

// Computer returns the computer player.
func (s *Session) Computer() *Player {
	return s.players[ComputerPlayer]
}

// Player returns the player for the given side.
func (s *Session) Player(id PlayerID) *Player {
	return s.players[id]
}

// Turn returns the side whose move it is.
func (s *Session) Turn() PlayerID {
	return s.turn
}

// Winner returns the winning side. Valid only in PhaseGameOver.
func (s *Session) Winner() (PlayerID, bool) {
	if s.phase != PhaseGameOver {
		return 0, false
	}
	return s.winner, true
}

// Ended reports whether the session was abandoned with End.
func (s *Session) Ended() bool {
	return s.ended
}

// Difficulty returns the difficulty label the session was created with.
func (s *Session) Difficulty() string {
	return s.difficulty
}

func (s *Session) require(op string, phase Phase) error {
	if s.ended {
		return &TransitionError{Op: op, Phase: s.phase, Reason: "session has ended"}
	}
	if s.phase != phase {
		return &TransitionError{Op: op, Phase: s.phase}
	}
	return nil
}

// Deploy places one of the human's ships.
func (s *Session) Deploy(name ShipName, start Coord, orient Orientation) error {
	if err := s.require("deploy", PhaseDeploying); err != nil {
		return err
	}
	return s.Human().Deploy(name, start, orient)
}

// Undeploy lifts one of the human's ships off the grid.
func (s *Session) Undeploy(name ShipName) error {
	if err := s.require("undeploy", PhaseDeploying); err != nil {
		return err
	}
	if !s.Human().Undeploy(name) {
		return &PlacementError{Ship: name, Err: ErrUnknownShip}
	}
	return nil
}

// RandomDeploy places the human's remaining ships at random.
func (s *Session) RandomDeploy(rng *rand.Rand) error {
	if err := s.require("deploy", PhaseDeploying); err != nil {
		return err
	}
	return s.Human().RandomDeploy(rng)
}

// EndDeployment starts the battle. Both fleets must be fully deployed.
func (s *Session) EndDeployment() error {
	if err := s.require("end deployment", PhaseDeploying); err != nil {
		return err
	}
	for _, p := range s.players {
		if !p.IsDeployed() {
			return &TransitionError{
				Op:     "end deployment",
				Phase:  s.phase,
				Reason: fmt.Sprintf("%s fleet is not fully deployed", p.ID()),
			}
		}
	}
	s.phase = PhaseBattle
	s.turn = HumanPlayer
	return nil
}

// Attack fires the human's shot at (row, col) on the computer's grid.
// A miss hands the turn to the computer, which fires exactly once before
// control returns. Hits keep the turn; ShotAlready changes nothing.
func (s *Session) Attack(row, col int) (Turn, error) {
	if err := s.require("attack", PhaseBattle); err != nil {
		return Turn{}, err
	}
	if s.turn != HumanPlayer {
		return Turn{}, &TransitionError{Op: "attack", Phase: s.phase, Reason: "not the human's turn"}
	}

	var turn Turn
	r := s.fire(HumanPlayer, row, col)
	turn.Shots = append(turn.Shots, Shot{By: HumanPlayer, Result: r})

	switch r.Outcome {
	case OutcomeGameOver:
		s.finish(HumanPlayer)
	case OutcomeMiss:
		s.turn = ComputerPlayer
		reply := s.computerAttack()
		turn.Shots = append(turn.Shots, Shot{By: ComputerPlayer, Result: reply})
		if reply.Outcome == OutcomeGameOver {
			s.finish(ComputerPlayer)
		} else {
			s.turn = HumanPlayer
		}
	}

	turn.Phase = s.phase
	turn.Next = s.turn
	return turn, nil
}

func (s *Session) computerAttack() AttackResult {
	ai := s.players[ComputerPlayer]
	target := s.computer.NextTarget(ai.Knowledge())
	r := s.fire(ComputerPlayer, target.Row, target.Col)
	s.computer.Observe(r)
	return r
}

func (s *Session) fire(by PlayerID, row, col int) AttackResult {
	defender := s.players[by.Opponent()]
	r := s.players[by].Fire(defender, row, col)

	s.sink.AttackResolved(Shot{By: by, Result: r})
	if r.Mutated() {
		s.sink.GridChanged(defender.ID())
	}
	return r
}

func (s *Session) finish(winner PlayerID) {
	s.phase = PhaseGameOver
	s.winner = winner
	s.turn = winner
}

// End abandons the session. The sink is released and every later operation
// fails with ErrInvalidTransition.
func (s *Session) End() {
	s.ended = true
	s.sink = NopSink{}
}

// Summary is the data an external recorder needs about a session.
type Summary struct {
	Finished   bool
	Won        bool
	Difficulty string
	Shots      int
	Hits       int
	Misses     int
	Score      int
	ShipsLost  int
	ShipsSunk  int
}

// Accuracy returns hits/shots in [0, 1].
func (s Summary) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// Summary returns the human's statistics for recording.
func (s *Session) Summary() Summary {
	human := s.Human()
	winner, finished := s.Winner()
	return Summary{
		Finished:   finished,
		Won:        finished && winner == HumanPlayer,
		Difficulty: s.difficulty,
		Shots:      human.Shots(),
		Hits:       human.Hits(),
		Misses:     human.Misses(),
		Score:      human.Score(s.scoring),
		ShipsLost:  human.DestroyedCount(),
		ShipsSunk:  s.Computer().DestroyedCount(),
	}
}
