package battleship

import (
	"errors"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/control"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.cfg.Display.AIDelayTicks = 0
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

func press(g *Game, actions ...platformcore.Action) platformcore.GameState {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in).State
}

func idle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		press(g)
	}
}

// toBattle starts a game from the main menu with a random fleet.
func toBattle(t *testing.T, g *Game) {
	t.Helper()
	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionRandom)
	press(g, platformcore.ActionConfirm)
	if got := g.ctrl.State(); got != control.Discovering {
		t.Fatalf("state = %s, want Discovering", got)
	}
}

// emptyTarget returns an untried cell with no computer ship on it.
func emptyTarget(t *testing.T, g *Game) core.Coord {
	t.Helper()
	s := g.ctrl.Session()
	k := s.Human().Knowledge()
	for _, c := range k.Untried() {
		if s.Computer().Grid().Cell(c).State == core.CellEmpty {
			return c
		}
	}
	t.Fatal("no empty target left")
	return core.Coord{}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("battleship should register itself")
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, ok := g.(registry.ScoreAware); !ok {
		t.Error("battleship should accept a score source")
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("battleship should survive resizes")
	}
}

func TestStartsAtMainMenu(t *testing.T) {
	g := newGame(t, 1)
	if g.ctrl.State() != control.ViewingMainMenu {
		t.Fatalf("state = %s, want ViewingMainMenu", g.ctrl.State())
	}
	st := g.State()
	if st.Match != 0 || st.GameOver || st.Quit {
		t.Errorf("unexpected initial state %+v", st)
	}
	if st.Difficulty != "hard" {
		t.Errorf("difficulty = %q, want hard", st.Difficulty)
	}
}

func TestPlayStartsDeployment(t *testing.T) {
	g := newGame(t, 1)
	st := press(g, platformcore.ActionConfirm)

	if g.ctrl.State() != control.Deploying {
		t.Fatalf("state = %s, want Deploying", g.ctrl.State())
	}
	if st.Match != 1 {
		t.Errorf("Match = %d, want 1", st.Match)
	}
	if g.selected != core.Tug {
		t.Errorf("selected = %s, want the first ship of the fleet", g.selected)
	}
}

func TestManualDeployAndPickUp(t *testing.T) {
	g := newGame(t, 2)
	press(g, platformcore.ActionConfirm)

	press(g, platformcore.ActionConfirm)
	grid := g.ctrl.Session().Human().Grid()
	if grid.Ship(core.Tug) == nil {
		t.Fatal("Tug should be placed at the cursor")
	}
	if g.selected != core.Submarine {
		t.Errorf("selected = %s, want Submarine", g.selected)
	}

	// Confirming on the placed ship lifts it again.
	press(g, platformcore.ActionConfirm)
	if grid.Ship(core.Tug) != nil {
		t.Error("Tug should have been picked up")
	}
	if g.selected != core.Tug {
		t.Errorf("selected = %s, want Tug", g.selected)
	}
}

func TestDeployRejectsOutOfBounds(t *testing.T) {
	g := newGame(t, 3)
	press(g, platformcore.ActionConfirm)

	g.selected = core.AircraftCarrier
	g.cursor = core.At(0, 8)
	press(g, platformcore.ActionConfirm)

	if g.ctrl.Session().Human().Grid().Ship(core.AircraftCarrier) != nil {
		t.Fatal("carrier should not be placed")
	}
	if !strings.Contains(g.Status(), "does not fit") {
		t.Errorf("status = %q", g.Status())
	}

	// Rotated it fits.
	press(g, platformcore.ActionRotate)
	press(g, platformcore.ActionConfirm)
	if g.ctrl.Session().Human().Grid().Ship(core.AircraftCarrier) == nil {
		t.Error("vertical carrier should fit")
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	g := newGame(t, 4)
	press(g, platformcore.ActionConfirm)

	press(g, platformcore.ActionUp, platformcore.ActionLeft)
	if g.cursor != core.At(0, 0) {
		t.Errorf("cursor = %v, want (0,0)", g.cursor)
	}
	for i := 0; i < 20; i++ {
		press(g, platformcore.ActionDown, platformcore.ActionRight)
	}
	if g.cursor != core.At(9, 9) {
		t.Errorf("cursor = %v, want (9,9)", g.cursor)
	}
}

func TestConfirmBeforeDeployedPlacesInsteadOfStarting(t *testing.T) {
	g := newGame(t, 5)
	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionConfirm)
	if g.ctrl.State() != control.Deploying {
		t.Errorf("state = %s, battle must wait for the whole fleet", g.ctrl.State())
	}
}

func TestMissRevealsComputerShotAfterDelay(t *testing.T) {
	g := New()
	g.cfg.Display.AIDelayTicks = 5
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 6})
	toBattle(t, g)

	g.aim = emptyTarget(t, g)
	press(g, platformcore.ActionConfirm)

	if !strings.HasPrefix(g.Status(), "You missed") {
		t.Fatalf("status = %q", g.Status())
	}
	if g.Cue() != core.CueMiss {
		t.Errorf("cue = %q, want miss", g.Cue())
	}
	if len(g.pending) != 1 {
		t.Fatalf("pending = %d, want the computer's reply queued", len(g.pending))
	}

	// Firing again is blocked while the reply is pending.
	before := g.ctrl.Session().Human().Shots()
	g.aim = emptyTarget(t, g)
	press(g, platformcore.ActionConfirm)
	if g.ctrl.Session().Human().Shots() != before {
		t.Error("shot fired while the computer reply was pending")
	}

	idle(g, 5)
	if len(g.pending) != 0 {
		t.Fatal("computer reply should be revealed")
	}
	if !strings.HasPrefix(g.Status(), "The AI ") {
		t.Errorf("status = %q", g.Status())
	}
}

func TestShotAlreadyIsReported(t *testing.T) {
	g := newGame(t, 7)
	toBattle(t, g)

	g.aim = emptyTarget(t, g)
	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionConfirm)

	if g.Status() != "You already shot that cell" {
		t.Errorf("status = %q", g.Status())
	}
	if g.Cue() != core.CueError {
		t.Errorf("cue = %q, want error", g.Cue())
	}
}

func TestPlayToGameOver(t *testing.T) {
	g := newGame(t, 8)
	toBattle(t, g)

	s := g.ctrl.Session()
	for i := 0; i < 200 && s.Phase() != core.PhaseGameOver; i++ {
		untried := s.Human().Knowledge().Untried()
		g.aim = untried[0]
		press(g, platformcore.ActionConfirm)
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("game should be over")
	}
	if g.ctrl.State() != control.EndingGame {
		t.Fatalf("state = %s, want EndingGame", g.ctrl.State())
	}
	winner, _ := s.Winner()
	if st.Won != (winner == core.HumanPlayer) {
		t.Errorf("Won = %v, winner = %s", st.Won, winner)
	}
	if st.Shots != s.Human().Shots() || st.Hits != s.Human().Hits() {
		t.Errorf("state stats %d/%d do not match the session", st.Shots, st.Hits)
	}

	press(g, platformcore.ActionConfirm)
	if g.ctrl.State() != control.ViewingMainMenu {
		t.Errorf("state = %s, want ViewingMainMenu", g.ctrl.State())
	}
}

func TestGameMenuReturnAndSurrender(t *testing.T) {
	g := newGame(t, 9)
	toBattle(t, g)

	press(g, platformcore.ActionBack)
	if g.ctrl.State() != control.ViewingGameMenu {
		t.Fatalf("state = %s, want ViewingGameMenu", g.ctrl.State())
	}
	press(g, platformcore.ActionConfirm)
	if g.ctrl.State() != control.Discovering {
		t.Fatalf("Return should resume the battle, got %s", g.ctrl.State())
	}

	session := g.ctrl.Session()
	press(g, platformcore.ActionBack)
	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionConfirm)

	if g.ctrl.State() != control.ViewingMainMenu {
		t.Errorf("state = %s, want ViewingMainMenu", g.ctrl.State())
	}
	if !session.Ended() {
		t.Error("surrender should end the session")
	}
	if g.State().GameOver {
		t.Error("a surrendered game is not a finished match")
	}
}

func TestGameMenuNewGame(t *testing.T) {
	g := newGame(t, 10)
	toBattle(t, g)

	press(g, platformcore.ActionBack)
	press(g, platformcore.ActionDown)
	st := press(g, platformcore.ActionConfirm)

	if g.ctrl.State() != control.Deploying {
		t.Fatalf("state = %s, want Deploying", g.ctrl.State())
	}
	if st.Match != 2 {
		t.Errorf("Match = %d, want 2", st.Match)
	}
	want := []control.State{control.Quitting, control.ViewingMainMenu, control.Deploying}
	got := g.ctrl.Stack().States()
	if len(got) != len(want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stack = %v, want %v", got, want)
			break
		}
	}
}

func TestSettingsCycleDifficulty(t *testing.T) {
	g := newGame(t, 11)
	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionConfirm)
	if g.ctrl.State() != control.AlteringSettings {
		t.Fatalf("state = %s, want AlteringSettings", g.ctrl.State())
	}

	press(g, platformcore.ActionRight)
	press(g, platformcore.ActionConfirm)

	if g.ctrl.State() != control.ViewingMainMenu {
		t.Errorf("state = %s, want ViewingMainMenu", g.ctrl.State())
	}
	if got := g.State().Difficulty; got != "easy" {
		t.Errorf("difficulty = %q, want easy after wrapping from hard", got)
	}
}

func TestQuitMenuItem(t *testing.T) {
	g := newGame(t, 12)
	press(g, platformcore.ActionUp)
	st := press(g, platformcore.ActionConfirm)
	if !st.Quit {
		t.Error("Quit should empty the stack")
	}
}

func TestQuitAction(t *testing.T) {
	g := newGame(t, 13)
	toBattle(t, g)
	st := press(g, platformcore.ActionQuit)
	if !st.Quit {
		t.Error("ActionQuit should exit from anywhere")
	}
	if !g.ctrl.Session().Ended() {
		t.Error("quitting should end the session")
	}
}

func TestHelpReturnsOnAnyKey(t *testing.T) {
	g := newGame(t, 14)
	press(g, platformcore.ActionHelp)
	if g.ctrl.State() != control.ViewingHelp {
		t.Fatalf("state = %s, want ViewingHelp", g.ctrl.State())
	}
	idle(g, 3)
	if g.ctrl.State() != control.ViewingHelp {
		t.Fatal("idle ticks should keep the help open")
	}
	press(g, platformcore.ActionRotate)
	if g.ctrl.State() != control.ViewingMainMenu {
		t.Errorf("state = %s, want ViewingMainMenu", g.ctrl.State())
	}
}

type stubScores struct {
	calls []string
	err   error
}

func (s *stubScores) TopScores(difficulty string, limit int) ([]registry.HighScore, error) {
	s.calls = append(s.calls, difficulty)
	if s.err != nil {
		return nil, s.err
	}
	return []registry.HighScore{{Player: "ahab", Difficulty: difficulty, Score: 77, Won: true}}, nil
}

func TestHighScores(t *testing.T) {
	g := newGame(t, 15)
	src := &stubScores{}
	g.SetScoreSource(src)

	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionConfirm)
	if g.ctrl.State() != control.ViewingHighScores {
		t.Fatalf("state = %s, want ViewingHighScores", g.ctrl.State())
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "ahab") {
		t.Error("high scores should list the stored player")
	}

	press(g, platformcore.ActionRight)
	if want := []string{"hard", "easy"}; len(src.calls) != 2 || src.calls[0] != want[0] || src.calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", src.calls, want)
	}

	src.err = errors.New("disk on fire")
	press(g, platformcore.ActionRight)
	g.Render(screen)
	if !strings.Contains(screen.String(), "disk on fire") {
		t.Error("load errors should be shown")
	}

	press(g, platformcore.ActionBack)
	if g.ctrl.State() != control.ViewingMainMenu {
		t.Errorf("state = %s, want ViewingMainMenu", g.ctrl.State())
	}
}

func TestLayoutPreDeploysFleet(t *testing.T) {
	l, err := layouts.BuiltinByID("classic")
	if err != nil {
		t.Fatalf("BuiltinByID() failed: %v", err)
	}
	SetLayout(&l)
	t.Cleanup(func() { SetLayout(nil) })

	g := newGame(t, 16)
	press(g, platformcore.ActionConfirm)
	if !g.ctrl.Session().Human().IsDeployed() {
		t.Fatal("layout should deploy the whole fleet")
	}
	carrier := g.ctrl.Session().Human().Grid().Ship(core.AircraftCarrier)
	if carrier == nil || carrier.Coords()[0] != core.At(1, 1) {
		t.Error("carrier should sit where the layout puts it")
	}
	press(g, platformcore.ActionConfirm)
	if g.ctrl.State() != control.Discovering {
		t.Errorf("state = %s, want Discovering", g.ctrl.State())
	}
}

func TestSinkMarksGridChanges(t *testing.T) {
	g := newGame(t, 17)
	shot := core.Shot{By: core.HumanPlayer, Result: core.AttackResult{Outcome: core.OutcomeMiss}}

	g.AttackResolved(shot)
	g.GridChanged(core.ComputerPlayer)
	if len(g.events) != 1 || !g.events[0].changed {
		t.Fatalf("events = %+v", g.events)
	}

	// A change to the wrong grid is not attributed to the shot.
	g.AttackResolved(shot)
	g.GridChanged(core.HumanPlayer)
	if g.events[1].changed {
		t.Error("grid change attributed to the wrong shot")
	}
}

func TestRenderBattle(t *testing.T) {
	g := newGame(t, 18)
	toBattle(t, g)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"YOUR FLEET", "ENEMY WATERS", "Shots: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, 19)
	screen := platformcore.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screens should show a warning")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := newGame(t, 20)
	toBattle(t, g)
	session := g.ctrl.Session()

	g.Resize(120, 40)
	if g.ctrl.Session() != session || g.ctrl.State() != control.Discovering {
		t.Error("resize should not restart the game")
	}
}
