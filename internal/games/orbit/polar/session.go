package polar

import "math"

// Frame is the per-update snapshot handed back to the driver.
type Frame struct {
	Radius   float64
	Angle    float64
	Velocity float64
	Position Point
	HitArea  Circle

	Zoom      float64
	Direction Direction
	Cycles    uint32
	Curve     []Point // shared with the session; valid until the next Update

	Collided bool // the hit circle touched the curve this frame
	Score    int
	Lives    int  // remaining lives with ResponseReset, 0 otherwise
	Deaths   int  // collisions that cost a life
	Over     bool // no lives left
}

// Session owns every piece of mutable game state. It is not safe for
// concurrent use; the driver calls it from a single goroutine.
type Session struct {
	settings Settings
	bird     *Bird
	zoom     *ZoomState
	spiral   Spiral
	detector Detector

	curve     []Point
	curveZoom float64

	pace   float64
	banked int
	lives  int
	deaths int
	over   bool
	last   Frame
}

// NewSession validates the settings and builds a fresh session.
func NewSession(s Settings) (*Session, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sess := &Session{
		settings: s,
		bird:     NewBird(s),
		zoom:     NewZoomState(s),
		spiral:   NewSpiral(s),
		detector: NewDetector(s.CollisionPolicy),
		curve:    make([]Point, 0, s.CurvePoints),
		pace:     1,
	}
	sess.Reset()
	return sess, nil
}

// Settings returns the settings the session was built with.
func (s *Session) Settings() Settings {
	return s.settings
}

// Zoom exposes the zoom state for inspection.
func (s *Session) Zoom() *ZoomState {
	return s.zoom
}

// Reset restores the initial state, including lives and banked score.
// The pace multiplier is kept.
func (s *Session) Reset() {
	s.bird.Reset()
	s.zoom.Reset()
	s.zoom.setBaseRate(s.settings.ZoomRate * s.pace)
	s.banked = 0
	s.deaths = 0
	s.over = false
	s.lives = 0
	if s.settings.OnCollision == ResponseReset {
		s.lives = s.settings.Lives
	}
	s.regenerate()
	s.last = s.snapshot(s.hitArea(), false)
}

// SetPace scales the zoom and orbital rates. Values <= 0 are ignored.
func (s *Session) SetPace(m float64) {
	if !(m > 0) || m == s.pace {
		return
	}
	s.pace = m
	s.bird.setAngularRate(s.settings.AngularRate * m)
	s.zoom.setBaseRate(s.settings.ZoomRate * m)
}

// Jump applies a single lift impulse. Ignored once the session is over.
func (s *Session) Jump() {
	if s.over {
		return
	}
	s.bird.Jump()
}

// Score is the whole number of radians travelled, plus the score banked
// from lives already lost.
func (s *Session) Score() int {
	return s.banked + progressScore(s.bird.Progress())
}

// Last returns the frame produced by the latest Update (or Reset).
func (s *Session) Last() Frame {
	return s.last
}

// Update advances the session by dt seconds and tests for collision.
// dt is clamped to [0, MaxStep]; NaN counts as zero.
func (s *Session) Update(dt float64) Frame {
	if s.over {
		return s.last
	}
	dt = clampStep(dt, s.settings.MaxStep)

	s.bird.Update(dt)
	s.zoom.Update(dt, s.bird.Progress())
	if s.zoom.Zoom != s.curveZoom {
		s.regenerate()
	}

	area := s.hitArea()
	hit := Collides(s.detector, s.curve, area)
	if hit {
		s.respond()
		area = s.hitArea()
	}

	s.last = s.snapshot(area, hit)
	return s.last
}

// respond applies the collision response. In reset mode the recovery ramp
// is a grace period: collisions while zooming in cost nothing.
func (s *Session) respond() {
	if s.settings.OnCollision != ResponseReset {
		return
	}
	if s.zoom.Direction == ZoomingIn {
		return
	}
	s.deaths++
	s.lives--
	s.banked += progressScore(s.bird.Progress())
	s.bird.Reset()
	if s.lives <= 0 {
		s.lives = 0
		s.over = true
		return
	}
	s.zoom.ZoomIn()
}

func (s *Session) hitArea() Circle {
	r := s.settings.HitRadius
	if s.settings.ScaleHitRadius {
		r *= s.zoom.Zoom
	}
	return Circle{Center: s.bird.Position(), Radius: r}
}

func (s *Session) regenerate() {
	s.curve = s.spiral.AppendPoints(s.curve[:0], s.settings.CurvePoints, s.zoom.Zoom)
	s.curveZoom = s.zoom.Zoom
}

func (s *Session) snapshot(area Circle, hit bool) Frame {
	return Frame{
		Radius:    s.bird.Radius,
		Angle:     s.bird.Angle,
		Velocity:  s.bird.Velocity,
		Position:  area.Center,
		HitArea:   area,
		Zoom:      s.zoom.Zoom,
		Direction: s.zoom.Direction,
		Cycles:    s.zoom.Cycles,
		Curve:     s.curve,
		Collided:  hit,
		Score:     s.Score(),
		Lives:     s.lives,
		Deaths:    s.deaths,
		Over:      s.over,
	}
}

func progressScore(progress float64) int {
	if !(progress > 0) {
		return 0
	}
	return int(math.Floor(progress))
}

func clampStep(dt, maxStep float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return math.Min(dt, maxStep)
}
