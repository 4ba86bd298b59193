package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/layouts"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the built-in fleet layouts",
	Long:  `Shows the fleet layouts compiled into the binary. Pass an ID to 'play --layout'.`,
	Args:  cobra.NoArgs,
	Run:   runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	all, err := layouts.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Built-in layouts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Size", "Ships", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")

	for _, l := range all {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-5s  %-5d  %s\n", maxIDLen, l.ID, size, len(l.Ships), l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'battleship play --layout <id>' to start with a layout.")
}
