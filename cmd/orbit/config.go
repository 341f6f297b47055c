package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-orbit/internal/config"
	"github.com/vovakirdan/tui-orbit/internal/games/orbit"
)

var flagConfigMode string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would load, as YAML.

Without --mode the file is printed as found, with every mode overlay listed.
With --mode the overlay and difficulty preset are applied and validated,
which is what 'orbit play' does before starting.

Search order:
  --config path, ~/.orbit/configs/orbit.yaml, ./configs/orbit.yaml,
  then the built-in defaults.

Examples:
  orbit config > ~/.orbit/configs/orbit.yaml
  orbit config --mode rewind --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().StringVar(&flagConfigMode, "mode", "", "Apply a mode overlay: classic, pulse, rewind")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.ResolveOrbit(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "err", err)
		os.Exit(1)
	}
	logger.Debug("config resolved", "source", source)

	if flagConfigMode != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			logger.Error("invalid difficulty", "err", presetErr)
			os.Exit(1)
		}
		_, cfg, err = orbit.LoadSettings(flagConfig, flagConfigMode, preset)
		if err != nil {
			logger.Error("invalid configuration", "mode", flagConfigMode, "err", err,
				"modes", strings.Join(cfg.ModeNames(), ", "))
			os.Exit(1)
		}
	}

	out, err := config.MarshalOrbit(cfg)
	if err != nil {
		logger.Error("cannot encode config", "err", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	if flagConfigMode != "" {
		fmt.Printf("# mode: %s\n", flagConfigMode)
	}
	fmt.Print(string(out))
}
