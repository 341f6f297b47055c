// orbit is a polar-coordinate arcade game for the terminal: keep the bird
// in orbit while the spiral zooms around it.
//
// Usage:
//
//	orbit list              - List available modes
//	orbit play <mode>       - Play a mode
//	orbit menu              - Start menu to pick modes interactively
//	orbit serve             - Start SSH server for remote play
//	orbit sim               - Run a headless simulation and report the outcome
//	orbit config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-orbit/internal/games/orbit"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "orbit",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Orbit - keep the bird clear of the spiral",
	Long: `Orbit is a terminal arcade game played in polar coordinates.
The bird circles the center, gravity pulls it inward and every jump
pushes it outward. Meanwhile the spiral zooms out beneath it.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  sim      - Headless simulation
  config   - Print the effective configuration

Examples:
  orbit list
  orbit play orbit
  orbit menu
  orbit serve --ssh :2222
  orbit sim --seconds 20 --jump-every 400ms`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
