// battleship is a terminal game of Battleship against the computer.
//
// Usage:
//
//	battleship play              - Play against the computer
//	battleship serve             - Start SSH server for remote play
//	battleship scores [level]    - Show, filter or clear recorded results
//	battleship bench             - Measure the computer's targeting
//	battleship layouts           - List the built-in fleet layouts
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.battleship/results.db)
//	--theme <name>  - Color theme: default, high-contrast, mono
//
// A .env file in the working directory may set BATTLESHIP_DIFFICULTY,
// BATTLESHIP_DB and BATTLESHIP_CONFIG.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"

	// Register the game
	_ "github.com/vovakirdan/tui-battleship/internal/games/battleship"
)

const defaultDBPath = "~/.battleship/results.db"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagTheme   string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "battleship"})

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}
	registerFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - sink the computer's fleet in your terminal",
	Long: `Battleship is the classic naval game played in the terminal against a
computer opponent with three difficulty levels.

Available commands:
  play     - Deploy your fleet and play
  serve    - Start SSH server for remote play
  scores   - View recorded results
  bench    - Measure how fast each difficulty sinks a fleet
  layouts  - List the built-in fleet layouts

Examples:
  battleship play
  battleship play --difficulty easy
  battleship serve --ssh :2222
  battleship scores hard`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		t, err := tui.ThemeByName(flagTheme)
		if err != nil {
			return err
		}
		tui.SetTheme(t)
		return nil
	},
	SilenceUsage: true,
}

// registerFlags wires the flags after .env has been loaded, so environment
// variables can supply their defaults.
func registerFlags() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("BATTLESHIP_DB", defaultDBPath), "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, high-contrast, mono")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	playCmd.Flags().StringVar(&flagConfig, "config", os.Getenv("BATTLESHIP_CONFIG"), "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", os.Getenv("BATTLESHIP_DIFFICULTY"), "Computer difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Fleet layout file or built-in layout ID to pre-deploy")

	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")

	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print results instead of opening the scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to print with --plain or --player")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Print one player's most recent games")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded results for the difficulty")

	benchCmd.Flags().IntVar(&flagGames, "games", 200, "Games to simulate per difficulty")
	benchCmd.Flags().StringVar(&flagLevel, "level", "", "Difficulty to measure (default: all)")
	benchCmd.Flags().StringVar(&flagLayoutsDir, "layouts", "", "Directory of layout files (default: built-in layouts)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(layoutsCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
