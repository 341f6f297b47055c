package polar

import "math"

// Direction is the zoom travel direction.
type Direction int

const (
	// ZoomingOut shrinks the zoom toward the floor.
	ZoomingOut Direction = iota
	// ZoomingIn grows the zoom back toward 1.0.
	ZoomingIn
)

// String returns a short name for the direction.
func (d Direction) String() string {
	switch d {
	case ZoomingOut:
		return "out"
	case ZoomingIn:
		return "in"
	default:
		return "unknown"
	}
}

// MaxZoom is the upper zoom bound.
const MaxZoom = 1.0

// ZoomState drives the camera zoom applied to the curve.
//
// Zoom always stays in [floor, MaxZoom]. With pulse enabled, every half
// revolution of the bird increments Cycles and the shrink rate alternates
// between the base rate and zero.
type ZoomState struct {
	Zoom      float64
	Rate      float64 // current shrink rate, per second
	Direction Direction
	Cycles    uint32

	baseRate    float64
	recoverRate float64
	floor       float64
	pulse       bool
	bounce      bool
	halfTurns   int64
}

// NewZoomState returns a zoom state at MaxZoom, zooming out.
func NewZoomState(s Settings) *ZoomState {
	z := &ZoomState{
		baseRate:    s.ZoomRate,
		recoverRate: s.RecoverRate,
		floor:       s.ZoomFloor,
		pulse:       s.Pulse,
		bounce:      s.Bounce,
	}
	z.Reset()
	return z
}

// Reset returns to MaxZoom, zooming out at the base rate, with no cycles.
func (z *ZoomState) Reset() {
	z.Zoom = MaxZoom
	z.Rate = z.baseRate
	z.Direction = ZoomingOut
	z.Cycles = 0
	z.halfTurns = 0
}

// ZoomIn switches to the recovery ramp toward MaxZoom.
func (z *ZoomState) ZoomIn() {
	z.Direction = ZoomingIn
}

// Update advances the zoom by dt seconds. progress is the bird's angle
// travelled since its start, used for the pulse counter.
func (z *ZoomState) Update(dt, progress float64) {
	if z.pulse {
		z.countHalfTurns(progress)
	}
	if !(dt > 0) {
		return
	}

	switch z.Direction {
	case ZoomingOut:
		z.Zoom -= z.Rate * dt
		if z.Zoom <= z.floor {
			z.Zoom = z.floor
			if z.bounce {
				z.Direction = ZoomingIn
			}
		}
	case ZoomingIn:
		z.Zoom += z.recoverRate * dt
		if z.Zoom >= MaxZoom {
			z.Zoom = MaxZoom
			z.Direction = ZoomingOut
		}
	}
	z.Zoom = math.Min(math.Max(z.Zoom, z.floor), MaxZoom)
}

// countHalfTurns bumps Cycles once per half revolution crossed and toggles
// the shrink rate on each cycle. A bird reset moves progress back to zero,
// so the counter re-arms instead of firing again for turns already counted.
func (z *ZoomState) countHalfTurns(progress float64) {
	turns := int64(math.Floor(progress / math.Pi))
	if turns < z.halfTurns {
		z.halfTurns = turns
		return
	}
	for z.halfTurns < turns {
		z.halfTurns++
		z.Cycles++
		if z.Cycles%2 == 1 {
			z.Rate = 0
		} else {
			z.Rate = z.baseRate
		}
	}
}

// setBaseRate is used by Session.SetPace. The pulse phase is preserved.
func (z *ZoomState) setBaseRate(rate float64) {
	z.baseRate = rate
	if !z.pulse || z.Cycles%2 == 0 {
		z.Rate = rate
	}
}
