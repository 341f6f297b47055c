package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-orbit/internal/config"
	"github.com/vovakirdan/tui-orbit/internal/games/orbit"
	"github.com/vovakirdan/tui-orbit/internal/games/orbit/polar"
)

var (
	flagSimSeconds   float64
	flagSimJumpEvery time.Duration
	flagSimMode      string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the physics without a terminal: a fixed frame rate, a scripted jump
cadence and a report of how the run ended. Useful for tuning a config.

Examples:
  orbit sim
  orbit sim --mode rewind --seconds 60
  orbit sim --jump-every 350ms --config ./my-orbit.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 30, "Simulated seconds")
	simCmd.Flags().DurationVar(&flagSimJumpEvery, "jump-every", 0, "Jump interval (0 = never jump)")
	simCmd.Flags().StringVar(&flagSimMode, "mode", config.ModeClassic, "Mode: classic, pulse, rewind")
}

// simOptions scripts a headless run.
type simOptions struct {
	Seconds   float64
	FPS       int
	JumpEvery time.Duration
}

// simReport summarizes a headless run.
type simReport struct {
	Frame      polar.Frame
	Steps      int
	Jumps      int
	Collisions int
	Elapsed    float64
	Ended      bool
}

// simulate drives a session frame by frame the way the game adapter does.
func simulate(s polar.Settings, difficulty config.DifficultyConfig, opts simOptions) (simReport, error) {
	if opts.FPS <= 0 {
		return simReport{}, fmt.Errorf("sim: fps must be positive, got %d", opts.FPS)
	}
	session, err := polar.NewSession(s)
	if err != nil {
		return simReport{}, err
	}
	dm := config.NewDifficultyManager(difficulty)

	dt := 1 / float64(opts.FPS)
	jumpEvery := opts.JumpEvery.Seconds()
	sinceJump := 0.0

	var r simReport
	r.Frame = session.Last()
	for r.Elapsed < opts.Seconds {
		if jumpEvery > 0 && sinceJump >= jumpEvery {
			session.Jump()
			r.Jumps++
			sinceJump = 0
		}

		session.SetPace(dm.Pace(r.Frame.Score, r.Elapsed))
		r.Frame = session.Update(dt)
		r.Steps++
		r.Elapsed += dt
		sinceJump += dt

		if r.Frame.Collided {
			r.Collisions++
			logger.Debug("collision", "t", r.Elapsed, "radius", r.Frame.Radius, "zoom", r.Frame.Zoom, "lives", r.Frame.Lives)
		}
		if r.Frame.Over || (r.Frame.Collided && s.OnCollision == polar.ResponseFlag) {
			r.Ended = true
			break
		}
	}
	return r, nil
}

func runSim(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		logger.Error("invalid difficulty", "err", err)
		os.Exit(1)
	}
	settings, cfg, err := orbit.LoadSettings(flagConfig, flagSimMode, preset)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger.Info("simulating", "mode", flagSimMode, "seconds", flagSimSeconds, "fps", flagFPS, "jump_every", flagSimJumpEvery)
	r, err := simulate(settings, cfg.Difficulty, simOptions{
		Seconds:   flagSimSeconds,
		FPS:       flagFPS,
		JumpEvery: flagSimJumpEvery,
	})
	if err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	outcome := "survived"
	if r.Ended {
		outcome = "crashed"
	}
	logger.Info(outcome,
		"t", fmt.Sprintf("%.2fs", r.Elapsed),
		"score", r.Frame.Score,
		"jumps", r.Jumps,
		"collisions", r.Collisions,
	)

	f := r.Frame
	fmt.Printf("steps:      %d\n", r.Steps)
	fmt.Printf("radius:     %.3f\n", f.Radius)
	fmt.Printf("angle:      %.3f\n", f.Angle)
	fmt.Printf("velocity:   %.3f\n", f.Velocity)
	fmt.Printf("zoom:       %.3f\n", f.Zoom)
	fmt.Printf("cycles:     %d\n", f.Cycles)
	fmt.Printf("lives:      %d\n", f.Lives)
	fmt.Printf("score:      %d\n", f.Score)
}
