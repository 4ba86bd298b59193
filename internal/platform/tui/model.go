package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// Options configures a Model.
type Options struct {
	Store  *storage.Store // Optional; finished matches are recorded here
	Player string         // Name stored with each result
	Config core.RuntimeConfig
	Logger *log.Logger
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     string
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool

	// Match bookkeeping
	startedMatch int
	startedAt    time.Time
	savedMatch   int // Last match whose result was recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Player == "" {
		cfg.Player = opts.Player
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if aware, ok := game.(registry.ScoreAware); ok && opts.Store != nil {
		aware.SetScoreSource(StoreScores{Store: opts.Store})
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		player:     cfg.Player,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick steps the game and records finished matches.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	st := m.step()
	if st.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// step runs one simulation tick with the queued input.
func (m *Model) step() core.GameState {
	st := m.game.Step(m.inputFrame).State
	m.inputFrame.Clear()

	if st.Match != m.startedMatch {
		m.startedMatch = st.Match
		m.startedAt = time.Now()
	}
	if st.GameOver && st.Match != m.savedMatch {
		m.saveResult(st)
		m.savedMatch = st.Match
	}
	m.gameState = st
	return st
}

// saveResult records a finished match. Failures are logged; play continues.
func (m *Model) saveResult(st core.GameState) {
	if m.store == nil {
		return
	}
	r := storage.Result{
		MatchID:    uuid.NewString(),
		Player:     m.player,
		Difficulty: st.Difficulty,
		Won:        st.Won,
		Score:      st.Score,
		Shots:      st.Shots,
		Hits:       st.Hits,
		Duration:   int(time.Since(m.startedAt).Seconds()),
	}
	if _, err := m.store.SaveResult(r); err != nil {
		m.logger.Warn("could not record result", "player", m.player, "error", err)
		return
	}
	m.logger.Debug("result recorded", "player", m.player, "difficulty", r.Difficulty, "won", r.Won, "score", r.Score)
}

// saveScreenshot saves the current screen to ~/.battleship/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".battleship", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
