package polar

import (
	"math"
	"testing"
)

func zoomSettings() Settings {
	s := DefaultSettings()
	s.ZoomRate = 0.5
	s.RecoverRate = 0.5
	return s
}

func TestZoomShrinksAtRate(t *testing.T) {
	s := DefaultSettings()
	z := NewZoomState(s)
	z.Update(1, 0)

	if !near(z.Zoom, 1-s.ZoomRate) {
		t.Errorf("zoom = %v, expected %v", z.Zoom, 1-s.ZoomRate)
	}
	if z.Direction != ZoomingOut {
		t.Errorf("direction = %v, expected out", z.Direction)
	}
}

func TestZoomZeroStepIsNoop(t *testing.T) {
	z := NewZoomState(zoomSettings())
	z.Update(0, 0)
	if z.Zoom != MaxZoom {
		t.Errorf("zoom = %v after zero step, expected %v", z.Zoom, MaxZoom)
	}
}

func TestZoomStaysInBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounce bool
		pulse  bool
	}{
		{"shrink only", false, false},
		{"bounce", true, false},
		{"pulse", false, true},
		{"pulse and bounce", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := zoomSettings()
			s.Bounce = tc.bounce
			s.Pulse = tc.pulse
			z := NewZoomState(s)

			progress := 0.0
			for i := 0; i < 10000; i++ {
				progress += 0.05
				z.Update(0.07, progress)
				if z.Zoom < s.ZoomFloor || z.Zoom > MaxZoom {
					t.Fatalf("frame %d: zoom %v left [%v, %v]", i, z.Zoom, s.ZoomFloor, MaxZoom)
				}
			}
		})
	}
}

func TestZoomFloorHolds(t *testing.T) {
	s := zoomSettings()
	z := NewZoomState(s)
	for i := 0; i < 100; i++ {
		z.Update(1, 0)
	}
	if z.Zoom != s.ZoomFloor {
		t.Errorf("zoom = %v, expected floor %v", z.Zoom, s.ZoomFloor)
	}
	if z.Direction != ZoomingOut {
		t.Error("without bounce the zoom should stay at the floor zooming out")
	}
}

func TestZoomBounceFlipsAtFloor(t *testing.T) {
	s := zoomSettings()
	s.Bounce = true
	z := NewZoomState(s)
	z.Update(10, 0)

	if z.Zoom != s.ZoomFloor || z.Direction != ZoomingIn {
		t.Errorf("after hitting the floor: zoom %v, direction %v", z.Zoom, z.Direction)
	}
}

func TestZoomInRampsBackToOut(t *testing.T) {
	z := NewZoomState(zoomSettings())
	z.Zoom = 0.5
	z.ZoomIn()

	z.Update(0.5, 0)
	if !near(z.Zoom, 0.75) || z.Direction != ZoomingIn {
		t.Errorf("mid ramp: zoom %v, direction %v", z.Zoom, z.Direction)
	}

	z.Update(1, 0)
	if z.Zoom != MaxZoom || z.Direction != ZoomingOut {
		t.Errorf("end of ramp: zoom %v, direction %v", z.Zoom, z.Direction)
	}
}

func TestZoomPulseCountsHalfTurns(t *testing.T) {
	s := zoomSettings()
	s.Pulse = true
	z := NewZoomState(s)

	z.Update(0, math.Pi-0.01)
	if z.Cycles != 0 || z.Rate != s.ZoomRate {
		t.Fatalf("before first half turn: cycles %d, rate %v", z.Cycles, z.Rate)
	}

	z.Update(0, math.Pi+0.01)
	if z.Cycles != 1 || z.Rate != 0 {
		t.Errorf("after one half turn: cycles %d, rate %v, expected 1, 0", z.Cycles, z.Rate)
	}

	// Staying inside the same half turn must not fire again
	z.Update(0, math.Pi+0.09)
	if z.Cycles != 1 {
		t.Errorf("same half turn fired again: cycles %d", z.Cycles)
	}

	z.Update(0, 2*math.Pi+0.01)
	if z.Cycles != 2 || z.Rate != s.ZoomRate {
		t.Errorf("after two half turns: cycles %d, rate %v", z.Cycles, z.Rate)
	}

	// A large step crossing several boundaries counts each of them
	z.Update(0, 5*math.Pi+0.01)
	if z.Cycles != 5 || z.Rate != 0 {
		t.Errorf("after five half turns: cycles %d, rate %v", z.Cycles, z.Rate)
	}
}

func TestZoomPulseRearmsAfterBirdReset(t *testing.T) {
	s := zoomSettings()
	s.Pulse = true
	z := NewZoomState(s)

	z.Update(0, 2*math.Pi+0.01)
	z.Update(0, 0)
	if z.Cycles != 2 {
		t.Fatalf("reset progress should not change cycles, got %d", z.Cycles)
	}
	z.Update(0, math.Pi+0.01)
	if z.Cycles != 3 {
		t.Errorf("first half turn after reset: cycles %d, expected 3", z.Cycles)
	}
}

func TestZoomPausedPulseHoldsZoom(t *testing.T) {
	s := zoomSettings()
	s.Pulse = true
	z := NewZoomState(s)

	z.Update(0, math.Pi+0.01)
	before := z.Zoom
	z.Update(1, math.Pi+0.02)
	if z.Zoom != before {
		t.Errorf("zoom moved from %v to %v while the pulse rate is zero", before, z.Zoom)
	}
}

func TestDirectionString(t *testing.T) {
	if ZoomingOut.String() != "out" || ZoomingIn.String() != "in" {
		t.Error("unexpected direction names")
	}
}
