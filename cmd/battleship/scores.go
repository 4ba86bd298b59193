package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/ai"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show recorded results",
	Long: `Open the scoreboard, or print the best results with --plain.

Without a difficulty every result is shown. --player prints one player's
most recent games. --clear deletes the results for the difficulty, or every
result when no difficulty is given.

Examples:
  battleship scores
  battleship scores hard
  battleship scores easy --plain --limit 20
  battleship scores --player ahab
  battleship scores medium --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	difficulty := ""
	if len(args) == 1 {
		level, ok := ai.ParseLevel(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, medium or hard)\n", args[0])
			os.Exit(1)
		}
		difficulty = level.String()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagClear:
		err = clearScores(os.Stdout, store, difficulty)
	case flagPlayer != "":
		err = printPlayerResults(os.Stdout, store, flagPlayer, flagLimit)
	case flagPlain:
		err = printScores(os.Stdout, store, difficulty, flagLimit)
	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		err = tui.RunScoreboard(store, difficulty, width, height)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func levelTitle(difficulty string) string {
	if difficulty == "" {
		return "all difficulties"
	}
	return difficulty
}

func printScores(w io.Writer, store *storage.Store, difficulty string, limit int) error {
	results, err := store.TopResults(difficulty, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Battleship results - %s\n\n", levelTitle(difficulty))

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'battleship play' to set the first score!")
		return nil
	}

	printTable(w, results)

	stats, err := store.Stats(difficulty)
	if err != nil {
		return err
	}
	best, err := store.HighScore(difficulty)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Wins: %d (%.0f%%)  Accuracy: %.0f%%\n",
		stats.Games, stats.Wins, stats.WinRate()*100, stats.Accuracy()*100)
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}

func printPlayerResults(w io.Writer, store *storage.Store, player string, limit int) error {
	results, err := store.PlayerResults(player, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Recent games - %s\n\n", player)
	if len(results) == 0 {
		fmt.Fprintf(w, "No games recorded for %s.\n", player)
		return nil
	}
	printTable(w, results)
	return nil
}

func clearScores(w io.Writer, store *storage.Store, difficulty string) error {
	stats, err := store.Stats(difficulty)
	if err != nil {
		return err
	}
	if err := store.ClearResults(difficulty); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %d results (%s).\n", stats.Games, levelTitle(difficulty))
	return nil
}

func printTable(w io.Writer, results []storage.Result) {
	fmt.Fprintf(w, "  %-4s  %-14s  %-6s  %5s  %-4s  %4s  %s\n", "Rank", "Player", "Level", "Score", "Won", "Acc", "Date")
	fmt.Fprintf(w, "  %-4s  %-14s  %-6s  %5s  %-4s  %4s  %s\n", "----", "------", "-----", "-----", "---", "---", "----")

	for i, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-14s  %-6s  %5d  %-4s  %3.0f%%  %s\n",
			i+1, r.Player, r.Difficulty, r.Score, won, r.Accuracy()*100, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
