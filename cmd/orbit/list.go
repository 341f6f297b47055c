package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-orbit/internal/games/orbit"
	"github.com/vovakirdan/tui-orbit/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered game ID with the config mode it plays.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Mode", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "----", "-----")
	for _, g := range games {
		mode, _ := orbit.ModeForGame(g.ID)
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, g.ID, mode, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'orbit play <id>' to play, or 'orbit config --mode <mode>' to see its settings.")
}
