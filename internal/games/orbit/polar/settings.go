// Package polar implements the physics and collision core of the Orbit game:
// a bird moving in polar coordinates around a spiral obstacle curve.
//
// The package has no platform dependencies. A driver calls Session.Update
// once per frame with the elapsed time and reads back the Frame it returns.
package polar

import (
	"errors"
	"fmt"
	"math"
)

// CollisionPolicy selects how the bird's hit circle is tested against the curve.
type CollisionPolicy string

const (
	// PolicyPoints tests curve vertices only.
	PolicyPoints CollisionPolicy = "points"
	// PolicySegments tests the line segments between consecutive vertices.
	PolicySegments CollisionPolicy = "segments"
)

// CollisionResponse selects what a collision does to the session.
type CollisionResponse string

const (
	// ResponseFlag only reports the collision; the driver decides what to do.
	ResponseFlag CollisionResponse = "flag"
	// ResponseReset resets the bird and ramps the zoom back to 1.0.
	ResponseReset CollisionResponse = "reset"
)

// ErrInvalidSettings is wrapped by every error returned from Settings.Validate.
var ErrInvalidSettings = errors.New("polar: invalid settings")

// Settings holds every tunable of the physics core.
type Settings struct {
	// Bird
	Gravity         float64 `yaml:"gravity"`          // radial acceleration, units/s² (negative pulls inward)
	Lift            float64 `yaml:"lift"`             // velocity added per jump, units/s
	AngularRate     float64 `yaml:"angular_rate"`     // orbital speed, rad/s
	VelocityFloor   float64 `yaml:"velocity_floor"`   // minimum radial velocity
	VelocityCeiling float64 `yaml:"velocity_ceiling"` // maximum radial velocity
	InitialRadius   float64 `yaml:"initial_radius"`
	InitialAngle    float64 `yaml:"initial_angle"`
	HitRadius       float64 `yaml:"hit_radius"`
	ScaleHitRadius  bool    `yaml:"scale_hit_radius"` // multiply hit radius by zoom

	// Curve
	CurvePoints int     `yaml:"curve_points"`
	RadialStep  float64 `yaml:"radial_step"`
	AngularStep float64 `yaml:"angular_step"`

	// Zoom
	ZoomFloor   float64 `yaml:"zoom_floor"`
	ZoomRate    float64 `yaml:"zoom_rate"`    // shrink per second
	RecoverRate float64 `yaml:"recover_rate"` // growth per second while zooming in
	Pulse       bool    `yaml:"pulse"`        // toggle shrink rate every half revolution
	Bounce      bool    `yaml:"bounce"`       // flip to zooming in at the floor

	// Rules
	CollisionPolicy CollisionPolicy   `yaml:"collision_policy"`
	OnCollision     CollisionResponse `yaml:"on_collision"`
	Lives           int               `yaml:"lives"`    // only used with ResponseReset
	MaxStep         float64           `yaml:"max_step"` // largest dt accepted per update, seconds
}

// DefaultSettings returns the canonical tuning.
func DefaultSettings() Settings {
	return Settings{
		Gravity:         -6,
		Lift:            50,
		AngularRate:     0.5,
		VelocityFloor:   -500,
		VelocityCeiling: 400,
		InitialRadius:   100,
		InitialAngle:    0,
		HitRadius:       15,
		ScaleHitRadius:  true,

		CurvePoints: 2000,
		RadialStep:  5,
		AngularStep: 0.1,

		ZoomFloor:   0.1,
		ZoomRate:    0.01,
		RecoverRate: 0.5,

		CollisionPolicy: PolicySegments,
		OnCollision:     ResponseFlag,
		Lives:           3,
		MaxStep:         0.25,
	}
}

// Validate reports every field that would make the physics undefined.
// The returned error wraps ErrInvalidSettings.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	finite := []struct {
		name string
		v    float64
	}{
		{"gravity", s.Gravity},
		{"lift", s.Lift},
		{"angular_rate", s.AngularRate},
		{"velocity_floor", s.VelocityFloor},
		{"velocity_ceiling", s.VelocityCeiling},
		{"initial_radius", s.InitialRadius},
		{"initial_angle", s.InitialAngle},
		{"hit_radius", s.HitRadius},
		{"radial_step", s.RadialStep},
		{"angular_step", s.AngularStep},
		{"zoom_floor", s.ZoomFloor},
		{"zoom_rate", s.ZoomRate},
		{"recover_rate", s.RecoverRate},
		{"max_step", s.MaxStep},
	}
	for _, f := range finite {
		check(!math.IsNaN(f.v) && !math.IsInf(f.v, 0), "%s must be finite, got %v", f.name, f.v)
	}

	check(s.Gravity <= 0, "gravity must be <= 0, got %v", s.Gravity)
	check(s.Lift > 0, "lift must be > 0, got %v", s.Lift)
	check(s.AngularRate > 0, "angular_rate must be > 0, got %v", s.AngularRate)
	check(s.VelocityFloor < s.VelocityCeiling, "velocity_floor (%v) must be below velocity_ceiling (%v)",
		s.VelocityFloor, s.VelocityCeiling)
	check(s.HitRadius > 0, "hit_radius must be > 0, got %v", s.HitRadius)
	check(s.CurvePoints >= 2, "curve_points must be >= 2, got %d", s.CurvePoints)
	check(s.RadialStep > 0, "radial_step must be > 0, got %v", s.RadialStep)
	check(s.ZoomFloor > 0 && s.ZoomFloor <= 1, "zoom_floor must be in (0, 1], got %v", s.ZoomFloor)
	check(s.ZoomRate >= 0, "zoom_rate must be >= 0, got %v", s.ZoomRate)
	check(s.RecoverRate > 0, "recover_rate must be > 0, got %v", s.RecoverRate)
	check(s.MaxStep > 0, "max_step must be > 0, got %v", s.MaxStep)

	switch s.CollisionPolicy {
	case PolicyPoints, PolicySegments:
	default:
		check(false, "collision_policy must be %q or %q, got %q", PolicyPoints, PolicySegments, s.CollisionPolicy)
	}
	switch s.OnCollision {
	case ResponseFlag:
	case ResponseReset:
		check(s.Lives > 0, "lives must be > 0 with on_collision %q, got %d", ResponseReset, s.Lives)
	default:
		check(false, "on_collision must be %q or %q, got %q", ResponseFlag, ResponseReset, s.OnCollision)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}
