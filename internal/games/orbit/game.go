// Package orbit adapts the polar physics core to the platform: it loads the
// configuration, feeds frame times and jump input into a polar.Session and
// draws the resulting frame into a core.Screen.
package orbit

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-orbit/internal/config"
	"github.com/vovakirdan/tui-orbit/internal/core"
	"github.com/vovakirdan/tui-orbit/internal/games/orbit/polar"
	"github.com/vovakirdan/tui-orbit/internal/registry"
)

// Visual characters for rendering
const (
	BirdChar   = '@'
	CurveChar  = '•'
	RingChar   = '·'
	CenterChar = '+'
)

// ViewRadius is the world distance from the center to the nearest screen edge.
const ViewRadius = 300.0

// Game IDs of the registered modes.
const (
	IDClassic = "orbit"
	IDPulse   = "orbit_pulse"
	IDRewind  = "orbit_rewind"
)

// Minimum playable terminal size.
const (
	MinScreenW = 20
	MinScreenH = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game for one Orbit mode.
type Game struct {
	mode  string
	id    string
	title string

	session    *polar.Session
	settings   polar.Settings
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	frame    polar.Frame
	elapsed  float64 // seconds of unpaused play
	paused   bool
	gameOver bool
}

// New creates a classic Orbit game: the first collision ends the run.
func New() *Game {
	return &Game{mode: config.ModeClassic, id: IDClassic, title: "Orbit"}
}

// NewPulse creates an Orbit game whose zoom pauses every other half turn.
func NewPulse() *Game {
	return &Game{mode: config.ModePulse, id: IDPulse, title: "Orbit: Pulse"}
}

// NewRewind creates an Orbit game where collisions cost a life and rewind the zoom.
func NewRewind() *Game {
	return &Game{mode: config.ModeRewind, id: IDRewind, title: "Orbit: Rewind"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// ModeForGame returns the config mode played by a game ID.
func ModeForGame(id string) (string, bool) {
	switch id {
	case IDClassic:
		return config.ModeClassic, true
	case IDPulse:
		return config.ModePulse, true
	case IDRewind:
		return config.ModeRewind, true
	}
	return "", false
}

// LoadSettings loads the config from path (see config.LoadOrbit), applies the
// mode overlay and difficulty preset, and converts the result into validated
// physics settings.
func LoadSettings(path, mode string, preset config.DifficultyPreset) (polar.Settings, config.OrbitConfig, error) {
	cfg, err := config.LoadOrbit(path)
	if err != nil {
		return polar.Settings{}, cfg, err
	}
	if err := cfg.ApplyMode(mode); err != nil {
		return polar.Settings{}, cfg, err
	}
	if preset != "" {
		config.ApplyOrbitPreset(&cfg, preset)
	}
	s := SettingsFromConfig(cfg)
	if err := s.Validate(); err != nil {
		return polar.Settings{}, cfg, err
	}
	return s, cfg, nil
}

// SettingsFromConfig maps the YAML layout onto the physics settings.
func SettingsFromConfig(cfg config.OrbitConfig) polar.Settings {
	return polar.Settings{
		Gravity:         cfg.Bird.Gravity,
		Lift:            cfg.Bird.Lift,
		AngularRate:     cfg.Bird.AngularRate,
		VelocityFloor:   cfg.Bird.VelocityFloor,
		VelocityCeiling: cfg.Bird.VelocityCeiling,
		InitialRadius:   cfg.Bird.InitialRadius,
		InitialAngle:    cfg.Bird.InitialAngle,
		HitRadius:       cfg.Bird.HitRadius,
		ScaleHitRadius:  cfg.Bird.ScaleHitRadius,

		CurvePoints: cfg.Curve.Points,
		RadialStep:  cfg.Curve.RadialStep,
		AngularStep: cfg.Curve.AngularStep,

		ZoomFloor:   cfg.Zoom.Floor,
		ZoomRate:    cfg.Zoom.Rate,
		RecoverRate: cfg.Zoom.RecoverRate,
		Pulse:       cfg.Zoom.Pulse,
		Bounce:      cfg.Zoom.Bounce,

		CollisionPolicy: polar.CollisionPolicy(cfg.Rules.CollisionPolicy),
		OnCollision:     polar.CollisionResponse(cfg.Rules.OnCollision),
		Lives:           cfg.Rules.Lives,
		MaxStep:         cfg.Rules.MaxStep,
	}
}

// Reset initializes or restarts the game.
// A config that fails to load or validate falls back to the built-in defaults;
// the CLI reports such errors before the game starts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	s, cfg, err := LoadSettings(configPath, g.mode, difficultyPreset)
	if err != nil {
		cfg = config.DefaultOrbitConfig()
		//nolint:errcheck // Built-in modes always exist
		cfg.ApplyMode(g.mode)
		if difficultyPreset != "" {
			config.ApplyOrbitPreset(&cfg, difficultyPreset)
		}
		s = SettingsFromConfig(cfg)
	}
	g.settings = s
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	session, err := polar.NewSession(s)
	if err != nil {
		session, _ = polar.NewSession(polar.DefaultSettings())
		g.settings = session.Settings()
	}
	g.session = session
	g.frame = session.Last()
	g.elapsed = 0
	g.paused = false
	g.gameOver = false
}

// Step advances the game by dt of wall time.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart, Enter works too
	if g.gameOver && (in.Has(core.ActionRestart) || in.Has(core.ActionConfirm)) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.session.Jump()
	}

	seconds := core.ClampF(dt.Seconds(), 0, g.settings.MaxStep)
	g.elapsed += seconds
	g.session.SetPace(g.difficulty.Pace(g.frame.Score, g.elapsed))

	g.frame = g.session.Update(dt.Seconds())
	if g.frame.Over {
		g.gameOver = true
	}
	if g.frame.Collided && g.settings.OnCollision == polar.ResponseFlag {
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), Hit: g.frame.Collided}
}

// Frame returns the latest physics snapshot.
func (g *Game) Frame() polar.Frame {
	return g.frame
}

// Deaths returns how many lives the current run has lost.
func (g *Game) Deaths() int {
	return g.frame.Deaths
}

// Pace returns the current difficulty multiplier.
func (g *Game) Pace() float64 {
	if g.difficulty == nil {
		return 1
	}
	return g.difficulty.Pace(g.frame.Score, g.elapsed)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.frame.Score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register all Orbit modes with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDPulse, func() registry.Game {
		return NewPulse()
	})
	registry.Register(IDRewind, func() registry.Game {
		return NewRewind()
	})
}

// hudText formats the status line.
func (g *Game) hudText() string {
	text := fmt.Sprintf(" Score: %d  Zoom: %.2f %s", g.frame.Score, g.frame.Zoom, zoomArrow(g.frame.Direction))
	if g.settings.Pulse {
		text += fmt.Sprintf("  Cycles: %d", g.frame.Cycles)
	}
	if g.settings.OnCollision == polar.ResponseReset {
		text += fmt.Sprintf("  Lives: %d", g.frame.Lives)
	}
	if g.difficulty.IsEnabled() {
		text += fmt.Sprintf("  Pace: x%.2f", g.Pace())
	}
	return text + " "
}

func zoomArrow(d polar.Direction) string {
	if d == polar.ZoomingIn {
		return "▲"
	}
	return "▼"
}
