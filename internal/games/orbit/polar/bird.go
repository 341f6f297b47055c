package polar

import (
	"math"

	"github.com/vovakirdan/tui-orbit/internal/core"
)

// Bird is the player body. It moves radially under gravity and jump impulses
// and orbits the origin at a constant angular rate.
type Bird struct {
	Radius   float64
	Angle    float64
	Velocity float64 // radial velocity, units/s

	gravity     float64
	lift        float64
	angularRate float64
	floor       float64
	ceiling     float64

	initialRadius float64
	initialAngle  float64
}

// NewBird creates a bird at the configured initial radius and angle, at rest.
func NewBird(s Settings) *Bird {
	b := &Bird{
		gravity:       s.Gravity,
		lift:          s.Lift,
		angularRate:   s.AngularRate,
		floor:         s.VelocityFloor,
		ceiling:       s.VelocityCeiling,
		initialRadius: s.InitialRadius,
		initialAngle:  s.InitialAngle,
	}
	b.Reset()
	return b
}

// Reset puts the bird back at its starting position with zero velocity.
func (b *Bird) Reset() {
	b.Radius = b.initialRadius
	b.Angle = b.initialAngle
	b.Velocity = 0
}

// Jump adds the lift impulse to the radial velocity, capped at the ceiling.
func (b *Bird) Jump() {
	b.Velocity = math.Min(b.Velocity+b.lift, b.ceiling)
}

// Update advances the bird by dt seconds. Negative and NaN steps are ignored.
// The radius is integrated with the velocity from before gravity is applied.
func (b *Bird) Update(dt float64) {
	if !(dt > 0) {
		return
	}
	b.Radius += b.Velocity * dt
	b.Angle += b.angularRate * dt
	b.Velocity = math.Max(b.Velocity+b.gravity*dt, b.floor)
}

// Position returns the bird's Cartesian center.
func (b *Bird) Position() Point {
	return PolarToCartesian(b.Radius, b.Angle)
}

// Progress returns the angle travelled since the start position.
func (b *Bird) Progress() float64 {
	return b.Angle - b.initialAngle
}

// setAngularRate is used by Session.SetPace.
func (b *Bird) setAngularRate(rate float64) {
	b.angularRate = rate
}

// CollisionColor is the display color for the bird given the collision flag.
func CollisionColor(hit bool) core.Color {
	if hit {
		return core.ColorRed
	}
	return core.ColorWhite
}
