package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-orbit/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start Orbit in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a run ends, press B to return to the menu. Tab opens the
scoreboard of this session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  orbit menu
  orbit menu --fps 30
  orbit menu --difficulty hard`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	store := openStore()
	err := tui.RunSession(store, runtimeConfig())
	if store != nil {
		store.Close()
	}
	if err != nil {
		logger.Error("menu failed", "err", err)
		os.Exit(1)
	}
}
