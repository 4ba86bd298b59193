package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the computer",
	Long: `Start a game at the main menu.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Place ship, fire
  R            - Rotate ship
  X            - Random deployment
  Tab          - Next ship
  Esc          - Game menu
  ?            - Help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fires at random cells
  medium - Hunts around hits
  hard   - Targets the most likely cells (default)

Examples:
  battleship play
  battleship play --difficulty medium
  battleship play --layout classic
  battleship play --layout ./my-fleet.yaml
  battleship play --config ./battleship.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyDifficulty(&cfg, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLayout != "" {
		layout, err := loadLayout(flagLayout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Both fleets match the layout.
		cfg.Grid = config.GridConfig{Width: layout.Width, Height: layout.Height}
		cfg.Fleet = nil
		for _, s := range layout.Fleet() {
			cfg.Fleet = append(cfg.Fleet, s.String())
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: layout %s: %v\n", layout.ID, err)
			os.Exit(1)
		}
		battleship.SetLayout(&layout)
		logger.Debug("pre-deploying layout", "layout", layout.ID)
	}
	battleship.SetConfig(cfg)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(battleship.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage; the game still works.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, tui.Options{
		Store:  store,
		Player: playerName(),
		Logger: logger,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadLayout treats arg as a file when it has a layout extension or names an
// existing file, and as a built-in layout ID otherwise.
func loadLayout(arg string) (layouts.Layout, error) {
	ext := strings.ToLower(filepath.Ext(arg))
	for _, e := range layouts.FormatExtensions() {
		if ext == e {
			return layouts.LoadFile(arg)
		}
	}
	if _, err := os.Stat(arg); err == nil {
		return layouts.LoadFile(arg)
	}
	return layouts.BuiltinByID(arg)
}
