// Package config provides YAML-based game configuration loading and
// difficulty management for Orbit.
package config

import (
	"fmt"
	"sort"
)

// OrbitConfig contains all configuration for the Orbit game.
type OrbitConfig struct {
	Bird       OrbitBird            `yaml:"bird"`
	Curve      OrbitCurve           `yaml:"curve"`
	Zoom       OrbitZoom            `yaml:"zoom"`
	Rules      OrbitRules           `yaml:"rules"`
	Modes      map[string]OrbitMode `yaml:"modes"`
	Difficulty DifficultyConfig     `yaml:"difficulty"`
}

// OrbitBird defines the bird's physics.
type OrbitBird struct {
	Gravity         float64 `yaml:"gravity"` // units/s², negative pulls toward the center
	Lift            float64 `yaml:"lift"`
	AngularRate     float64 `yaml:"angular_rate"` // rad/s
	VelocityFloor   float64 `yaml:"velocity_floor"`
	VelocityCeiling float64 `yaml:"velocity_ceiling"`
	InitialRadius   float64 `yaml:"initial_radius"`
	InitialAngle    float64 `yaml:"initial_angle"`
	HitRadius       float64 `yaml:"hit_radius"`
	ScaleHitRadius  bool    `yaml:"scale_hit_radius"`
}

// OrbitCurve defines the spiral obstacle.
type OrbitCurve struct {
	Points      int     `yaml:"points"`
	RadialStep  float64 `yaml:"radial_step"`
	AngularStep float64 `yaml:"angular_step"`
}

// OrbitZoom defines the zoom state machine.
type OrbitZoom struct {
	Floor       float64 `yaml:"floor"`
	Rate        float64 `yaml:"rate"`         // shrink per second
	RecoverRate float64 `yaml:"recover_rate"` // growth per second after a reset
	Pulse       bool    `yaml:"pulse"`
	Bounce      bool    `yaml:"bounce"`
}

// OrbitRules defines collision handling and frame limits.
type OrbitRules struct {
	CollisionPolicy string  `yaml:"collision_policy"` // "points" or "segments"
	OnCollision     string  `yaml:"on_collision"`     // "flag" or "reset"
	Lives           int     `yaml:"lives"`
	MaxStep         float64 `yaml:"max_step"` // seconds
}

// OrbitMode is a named overlay applied on top of the loaded config.
// Nil fields leave the base value untouched.
type OrbitMode struct {
	Title       string   `yaml:"title"`
	Pulse       *bool    `yaml:"pulse,omitempty"`
	Bounce      *bool    `yaml:"bounce,omitempty"`
	ZoomRate    *float64 `yaml:"zoom_rate,omitempty"`
	OnCollision *string  `yaml:"on_collision,omitempty"`
	Lives       *int     `yaml:"lives,omitempty"`
}

// Built-in mode names.
const (
	ModeClassic = "classic"
	ModePulse   = "pulse"
	ModeRewind  = "rewind"
)

// ModeNames returns the configured mode names in sorted order.
func (c OrbitConfig) ModeNames() []string {
	names := make([]string, 0, len(c.Modes))
	for name := range c.Modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyMode overlays the named mode onto the config.
func (c *OrbitConfig) ApplyMode(name string) error {
	m, ok := c.Modes[name]
	if !ok {
		return fmt.Errorf("config: unknown mode %q", name)
	}
	if m.Pulse != nil {
		c.Zoom.Pulse = *m.Pulse
	}
	if m.Bounce != nil {
		c.Zoom.Bounce = *m.Bounce
	}
	if m.ZoomRate != nil {
		c.Zoom.Rate = *m.ZoomRate
	}
	if m.OnCollision != nil {
		c.Rules.OnCollision = *m.OnCollision
	}
	if m.Lives != nil {
		c.Rules.Lives = *m.Lives
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	PaceMultiplier float64 `yaml:"pace_multiplier"` // added to the pace at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name yields the empty
// preset: the config's difficulty block is used as written.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
