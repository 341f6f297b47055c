package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-orbit/internal/config"
	"github.com/vovakirdan/tui-orbit/internal/core"
	"github.com/vovakirdan/tui-orbit/internal/games/orbit"
	"github.com/vovakirdan/tui-orbit/internal/platform/tui"
	"github.com/vovakirdan/tui-orbit/internal/registry"
	"github.com/vovakirdan/tui-orbit/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Screenshot to ~/.orbit/screenshots
  Q/Ctrl+C   - Quit

Difficulty options (default: the config's difficulty block as written):
  easy   - Extra lives, smaller hit area, pace starts low
  normal - Pace starts at 30% and progresses to max
  hard   - One life fewer, larger hit area, pace starts at 70%
  fixed  - No progression, stays at the config's initial level

Examples:
  orbit play orbit
  orbit play orbit_pulse --difficulty easy
  orbit play orbit_rewind --difficulty hard
  orbit play orbit --config ./my-orbit.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the config and difficulty flags on a command.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom orbit config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates the config for every mode, then hands the flags
// to the game package. Games fall back to defaults on a bad config, so the
// errors are reported here before the terminal is taken over.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	for _, g := range registry.List() {
		mode, ok := orbit.ModeForGame(g.ID)
		if !ok {
			continue
		}
		if _, _, err := orbit.LoadSettings(flagConfig, mode, preset); err != nil {
			return err
		}
	}

	orbit.SetConfigPath(flagConfig)
	orbit.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openStore opens the session leaderboard. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		logger.Error("unknown mode", "id", gameID)
		logger.Info("run 'orbit list' to see available modes")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "err", err)
		os.Exit(1)
	}

	store := openStore()

	// Run the game
	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "err", runErr)
		os.Exit(1)
	}
}
