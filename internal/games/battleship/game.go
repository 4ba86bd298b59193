// Package battleship provides the Battleship game for the terminal platform.
// It drives a control.Controller from platform input and draws every screen
// of the state stack onto the platform screen buffer.
package battleship

import (
	"errors"
	"fmt"

	platformcore "github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/control"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "battleship"

// highScoreRows is how many rows the high score screen shows.
const highScoreRows = 10

var (
	mainMenuItems = []string{"Play", "Difficulty", "High Scores", "Help", "Quit"}
	gameMenuItems = []string{"Return", "New Game", "Surrender", "Quit"}
)

// Package-level variables for configuration
var (
	selectedConfig = config.DefaultBattleshipConfig()
	selectedLayout *layouts.Layout
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.BattleshipConfig) {
	selectedConfig = cfg
}

// SetLayout makes every new game start with the human fleet deployed as in l.
// nil restores manual deployment.
func SetLayout(l *layouts.Layout) {
	selectedLayout = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// event is one shot reported by the session, plus whether it changed a grid.
type event struct {
	shot    core.Shot
	changed bool
}

// flash highlights the last target cell for a few ticks.
type flash struct {
	owner core.PlayerID // Grid the cell belongs to
	at    core.Coord
	until uint64
}

// Game implements registry.Game for Battleship.
type Game struct {
	cfg    config.BattleshipConfig
	layout *layouts.Layout
	ctrl   *control.Controller
	scores registry.ScoreSource

	// Screen dimensions
	screenW int
	screenH int
	tick    uint64

	// Menus
	menuCursor     int
	gameMenuCursor int
	scoreTab       ai.Level
	highScores     []registry.HighScore
	scoreErr       error

	// Deployment
	cursor   core.Coord
	selected core.ShipName
	orient   core.Orientation

	// Battle
	aim       core.Coord
	events    []event // Reported by the session, not yet presented
	pending   []event // Computer shots waiting to be revealed
	revealAt  uint64
	flash     flash
	changedAt [2]uint64
	cue       core.Cue

	status      string
	statusColor platformcore.Color
}

// New creates a game using the configuration set with SetConfig.
func New() *Game {
	return &Game{
		cfg:      selectedConfig,
		layout:   selectedLayout,
		scoreTab: selectedConfig.Level(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Battleship"
}

// SetScoreSource implements registry.ScoreAware.
func (g *Game) SetScoreSource(src registry.ScoreSource) {
	g.scores = src
}

// Reset starts over at the main menu with a fresh controller.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0

	fleet, err := g.cfg.Ships()
	if err != nil {
		fleet = core.AllShips()
	}
	g.ctrl = control.NewController(control.Options{
		Width:      g.cfg.Grid.Width,
		Height:     g.cfg.Grid.Height,
		Fleet:      fleet,
		Scoring:    g.cfg.CoreScoring(),
		Difficulty: g.cfg.Level(),
		Seed:       cfg.Seed,
		Sink:       g,
	})

	g.menuCursor = 0
	g.gameMenuCursor = 0
	g.events = nil
	g.pending = nil
	g.flash = flash{}
	g.changedAt = [2]uint64{}
	g.cue = ""
	g.setStatus("", platformcore.ColorDefault)
}

// Resize updates the screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Controller returns the controller driving the game.
func (g *Game) Controller() *control.Controller {
	return g.ctrl
}

// Status returns the message line shown under the grids.
func (g *Game) Status() string {
	return g.status
}

// Cue returns the sound category of the last presented shot.
func (g *Game) Cue() core.Cue {
	return g.cue
}

// AttackResolved implements core.Sink.
func (g *Game) AttackResolved(s core.Shot) {
	g.events = append(g.events, event{shot: s})
}

// GridChanged implements core.Sink. It always follows the AttackResolved call
// for the same shot.
func (g *Game) GridChanged(owner core.PlayerID) {
	if n := len(g.events); n > 0 && g.events[n-1].shot.By.Opponent() == owner {
		g.events[n-1].changed = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.ctrl == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionQuit) {
		g.ctrl.Quit()
		return platformcore.StepResult{State: g.State()}
	}

	g.reveal()

	state := g.ctrl.State()
	if input.Has(platformcore.ActionHelp) && state != control.ViewingHelp {
		g.push(control.ViewingHelp)
		return platformcore.StepResult{State: g.State()}
	}

	switch state {
	case control.ViewingMainMenu:
		g.stepMainMenu(input)
	case control.ViewingGameMenu:
		g.stepGameMenu(input)
	case control.AlteringSettings:
		g.stepSettings(input)
	case control.Deploying:
		g.stepDeploying(input)
	case control.Discovering:
		g.stepDiscovering(input)
	case control.EndingGame:
		g.stepEnding(input)
	case control.ViewingHighScores:
		g.stepHighScores(input)
	case control.ViewingHelp:
		if !input.Empty() {
			g.pop()
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.ctrl == nil {
		return platformcore.GameState{}
	}
	st := platformcore.GameState{
		Difficulty: g.ctrl.Difficulty().String(),
		Match:      g.ctrl.Games(),
		Quit:       g.ctrl.Done(),
	}
	s := g.ctrl.Session()
	if s == nil {
		return st
	}
	sum := s.Summary()
	st.Difficulty = sum.Difficulty
	st.Score = sum.Score
	st.Shots = sum.Shots
	st.Hits = sum.Hits
	st.GameOver = sum.Finished && len(g.pending) == 0
	st.Won = sum.Won
	return st
}

func (g *Game) setStatus(msg string, c platformcore.Color) {
	g.status = msg
	g.statusColor = c
}

func (g *Game) push(s control.State) {
	if err := g.ctrl.PushState(s); err != nil {
		g.setStatus(err.Error(), platformcore.ColorRed)
	}
}

func (g *Game) pop() {
	if err := g.ctrl.PopState(); err != nil {
		g.setStatus(err.Error(), platformcore.ColorRed)
	}
}

// menuMove returns the cursor moved by Up/Down, wrapping at the ends.
func menuMove(input platformcore.InputFrame, cursor, n int) int {
	if input.Has(platformcore.ActionUp) {
		cursor--
	}
	if input.Has(platformcore.ActionDown) {
		cursor++
	}
	return platformcore.Wrap(cursor, n)
}

func (g *Game) stepMainMenu(input platformcore.InputFrame) {
	g.menuCursor = menuMove(input, g.menuCursor, len(mainMenuItems))
	if !input.Has(platformcore.ActionConfirm) {
		return
	}
	switch g.menuCursor {
	case 0:
		g.startGame()
	case 1:
		g.push(control.AlteringSettings)
	case 2:
		g.openHighScores()
	case 3:
		g.push(control.ViewingHelp)
	case 4:
		g.pop()
	}
}

func (g *Game) stepGameMenu(input platformcore.InputFrame) {
	g.gameMenuCursor = menuMove(input, g.gameMenuCursor, len(gameMenuItems))
	if input.Has(platformcore.ActionBack) {
		g.pop()
		return
	}
	if !input.Has(platformcore.ActionConfirm) {
		return
	}
	switch g.gameMenuCursor {
	case 0:
		g.pop()
	case 1:
		g.pop()
		g.startGame()
	case 2:
		g.ctrl.EndGame()
		g.pending = nil
		g.setStatus("You surrendered", platformcore.ColorYellow)
	case 3:
		g.ctrl.Quit()
	}
}

func (g *Game) stepSettings(input platformcore.InputFrame) {
	level := g.ctrl.Difficulty()
	switch {
	case input.Has(platformcore.ActionLeft), input.Has(platformcore.ActionUp):
		g.ctrl.SetDifficulty(level.Prev())
	case input.Has(platformcore.ActionRight), input.Has(platformcore.ActionDown):
		g.ctrl.SetDifficulty(level.Next())
	case input.Has(platformcore.ActionConfirm), input.Has(platformcore.ActionBack):
		g.scoreTab = g.ctrl.Difficulty()
		g.pop()
	}
}

func (g *Game) startGame() {
	g.events = nil
	g.pending = nil
	g.flash = flash{}
	g.changedAt = [2]uint64{}
	g.cue = ""

	if err := g.ctrl.StartGame(); err != nil {
		g.setStatus(err.Error(), platformcore.ColorRed)
		return
	}
	g.cursor = core.At(0, 0)
	g.aim = core.At(0, 0)
	g.orient = core.Horizontal
	g.selected = core.ShipNone
	g.setStatus("Deploy your fleet", platformcore.ColorCyan)

	if g.layout != nil {
		g.applyLayout()
	}
	g.selectNextShip()
}

// applyLayout deploys the human fleet from the configured layout.
func (g *Game) applyLayout() {
	s := g.ctrl.Session()
	for _, p := range g.layout.Ships {
		if err := s.Deploy(p.Ship, p.Start, p.Orient); err != nil {
			g.setStatus(fmt.Sprintf("Layout %s: %v", g.layout.ID, err), platformcore.ColorRed)
			return
		}
	}
	g.setStatus(fmt.Sprintf("Fleet deployed from %s. Press Enter to start", g.layout.Name), platformcore.ColorGreen)
}

// selectNextShip selects the first undeployed ship after the current one.
func (g *Game) selectNextShip() {
	left := g.ctrl.Session().Human().Undeployed()
	if len(left) == 0 {
		g.selected = core.ShipNone
		return
	}
	for i, n := range left {
		if n == g.selected {
			g.selected = left[(i+1)%len(left)]
			return
		}
	}
	g.selected = left[0]
}

// moveCursor applies arrow input to c, keeping it on a w×h grid.
func moveCursor(input platformcore.InputFrame, c core.Coord, w, h int) core.Coord {
	if input.Has(platformcore.ActionUp) {
		c.Row--
	}
	if input.Has(platformcore.ActionDown) {
		c.Row++
	}
	if input.Has(platformcore.ActionLeft) {
		c.Col--
	}
	if input.Has(platformcore.ActionRight) {
		c.Col++
	}
	c.Row = platformcore.Clamp(c.Row, 0, h-1)
	c.Col = platformcore.Clamp(c.Col, 0, w-1)
	return c
}

func (g *Game) stepDeploying(input platformcore.InputFrame) {
	s := g.ctrl.Session()
	human := s.Human()
	grid := human.Grid()

	if input.Has(platformcore.ActionBack) {
		g.gameMenuCursor = 0
		g.push(control.ViewingGameMenu)
		return
	}

	g.cursor = moveCursor(input, g.cursor, grid.Width(), grid.Height())
	if input.Has(platformcore.ActionRotate) {
		g.orient = g.orient.Toggle()
	}
	if input.Has(platformcore.ActionNext) {
		g.selectNextShip()
	}

	if input.Has(platformcore.ActionRandom) {
		if err := g.ctrl.RandomDeploy(); err != nil {
			g.setStatus(err.Error(), platformcore.ColorRed)
			return
		}
		g.selected = core.ShipNone
		g.setStatus("Fleet deployed. Press Enter to start", platformcore.ColorGreen)
		return
	}

	if !input.Has(platformcore.ActionConfirm) {
		return
	}

	if human.IsDeployed() {
		if err := g.ctrl.EndDeployment(); err != nil {
			g.setStatus(err.Error(), platformcore.ColorRed)
			return
		}
		g.setStatus("Fire at the enemy grid", platformcore.ColorCyan)
		return
	}

	// Confirming on a placed ship picks it up again.
	if cell := grid.Cell(g.cursor); cell.State == core.CellShip {
		ship := grid.Ship(cell.Ship)
		g.orient = ship.Orientation()
		if err := s.Undeploy(cell.Ship); err != nil {
			g.setStatus(err.Error(), platformcore.ColorRed)
			return
		}
		g.selected = cell.Ship
		g.setStatus(fmt.Sprintf("Moving the %s", cell.Ship), platformcore.ColorCyan)
		return
	}

	if err := s.Deploy(g.selected, g.cursor, g.orient); err != nil {
		g.setStatus(placementMessage(g.selected, err), platformcore.ColorRed)
		return
	}
	g.selectNextShip()
	if human.IsDeployed() {
		g.setStatus("Fleet deployed. Press Enter to start", platformcore.ColorGreen)
	} else {
		g.setStatus(fmt.Sprintf("Place the %s", g.selected), platformcore.ColorCyan)
	}
}

func placementMessage(ship core.ShipName, err error) string {
	switch {
	case errors.Is(err, core.ErrOutOfBounds):
		return fmt.Sprintf("The %s does not fit there", ship)
	case errors.Is(err, core.ErrOverlap):
		return fmt.Sprintf("The %s overlaps another ship", ship)
	default:
		return err.Error()
	}
}

func (g *Game) stepDiscovering(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionBack) {
		g.gameMenuCursor = 0
		g.push(control.ViewingGameMenu)
		return
	}

	k := g.ctrl.Session().Human().Knowledge()
	g.aim = moveCursor(input, g.aim, k.Width(), k.Height())

	if !input.Has(platformcore.ActionConfirm) || len(g.pending) > 0 {
		return
	}
	if _, err := g.ctrl.Attack(g.aim.Row, g.aim.Col); err != nil {
		g.setStatus(err.Error(), platformcore.ColorRed)
		return
	}
	g.present()
}

// present shows the human's shots now and queues the computer's replies so
// they appear one at a time.
func (g *Game) present() {
	for _, e := range g.events {
		if e.shot.By == core.ComputerPlayer {
			if len(g.pending) == 0 {
				g.revealAt = g.tick + uint64(g.cfg.Display.AIDelayTicks)
			}
			g.pending = append(g.pending, e)
			continue
		}
		g.show(e)
	}
	g.events = g.events[:0]
	g.reveal()
}

// reveal shows queued computer shots whose delay has elapsed.
func (g *Game) reveal() {
	for len(g.pending) > 0 && g.tick >= g.revealAt {
		g.show(g.pending[0])
		g.pending = g.pending[1:]
		g.revealAt = g.tick + uint64(g.cfg.Display.AIDelayTicks)
	}
}

func (g *Game) show(e event) {
	r := e.shot.Result
	g.setStatus(e.shot.By.String()+" "+r.String(), outcomeColor(e.shot.By, r.Outcome))
	g.cue = r.Outcome.Cue()
	g.flash = flash{
		owner: e.shot.By.Opponent(),
		at:    r.Coord(),
		until: g.tick + uint64(g.cfg.Display.FlashTicks),
	}
	if e.changed {
		g.changedAt[e.shot.By.Opponent()] = g.tick
	}
}

func outcomeColor(by core.PlayerID, o core.Outcome) platformcore.Color {
	switch o {
	case core.OutcomeMiss:
		return platformcore.ColorBlue
	case core.OutcomeHit:
		return platformcore.ColorYellow
	case core.OutcomeDestroyed:
		return platformcore.ColorOrange
	case core.OutcomeGameOver:
		if by == core.HumanPlayer {
			return platformcore.ColorBrightGreen
		}
		return platformcore.ColorBrightRed
	default:
		return platformcore.ColorGray
	}
}

func (g *Game) stepEnding(input platformcore.InputFrame) {
	if len(g.pending) > 0 {
		return
	}
	if input.Has(platformcore.ActionConfirm) || input.Has(platformcore.ActionBack) {
		g.ctrl.EndGame()
		g.setStatus("", platformcore.ColorDefault)
	}
}

func (g *Game) openHighScores() {
	g.push(control.ViewingHighScores)
	g.loadHighScores()
}

func (g *Game) loadHighScores() {
	g.highScores, g.scoreErr = nil, nil
	if g.scores == nil {
		return
	}
	g.highScores, g.scoreErr = g.scores.TopScores(g.scoreTab.String(), highScoreRows)
}

func (g *Game) stepHighScores(input platformcore.InputFrame) {
	switch {
	case input.Has(platformcore.ActionLeft):
		g.scoreTab = g.scoreTab.Prev()
		g.loadHighScores()
	case input.Has(platformcore.ActionRight), input.Has(platformcore.ActionNext):
		g.scoreTab = g.scoreTab.Next()
		g.loadHighScores()
	case input.Has(platformcore.ActionBack), input.Has(platformcore.ActionConfirm):
		g.pop()
	}
}
