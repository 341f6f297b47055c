package polar

import "testing"

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		center   Point
		expected bool
	}{
		{"same point", Point{0, 0}, Point{0, 0}, true},
		{"inside", Point{10, 0}, Point{0, 0}, true},
		{"far below", Point{0, 0}, Point{0, -100}, false},
		{"diagonal outside", Point{-50, 50}, Point{0, 0}, false},
		{"on boundary", Point{15, 0}, Point{0, 0}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Circle{Center: tc.center, Radius: 15}
			if got := c.ContainsPoint(tc.point); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.point, got, tc.expected)
			}
		})
	}
}

func TestSegmentIntersectsCircle(t *testing.T) {
	c := Circle{Center: Point{0, 0}, Radius: 15}

	tests := []struct {
		name     string
		p1, p2   Point
		expected bool
	}{
		{"tangent at exactly r", Point{-10, 15}, Point{10, 15}, true},
		{"passes just outside", Point{-10, 16}, Point{10, 16}, false},
		{"crosses through center", Point{-30, 0}, Point{30, 0}, true},
		{"entirely inside", Point{-1, 0}, Point{1, 0}, true},
		{"enters and stops inside", Point{-30, 0}, Point{0, 0}, true},
		{"collinear but beyond", Point{20, 0}, Point{40, 0}, false},
		{"collinear but before", Point{-40, 0}, Point{-20, 0}, false},
		{"endpoint on boundary", Point{15, 0}, Point{40, 0}, true},
		{"far away", Point{100, 100}, Point{120, 140}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IntersectsSegment(tc.p1, tc.p2); got != tc.expected {
				t.Errorf("IntersectsSegment(%v, %v) = %v, expected %v", tc.p1, tc.p2, got, tc.expected)
			}
			// Direction must not matter
			if got := c.IntersectsSegment(tc.p2, tc.p1); got != tc.expected {
				t.Errorf("IntersectsSegment(%v, %v) reversed = %v, expected %v", tc.p2, tc.p1, got, tc.expected)
			}
		})
	}
}

func TestZeroLengthSegmentIsPointTest(t *testing.T) {
	c := Circle{Center: Point{0, 0}, Radius: 15}

	if !c.IntersectsSegment(Point{3, 4}, Point{3, 4}) {
		t.Error("degenerate segment inside the circle should hit")
	}
	if c.IntersectsSegment(Point{30, 40}, Point{30, 40}) {
		t.Error("degenerate segment outside the circle should miss")
	}
}

func TestSegmentDetectorCatchesTunneling(t *testing.T) {
	// Two widely spaced vertices with the circle between them
	curve := []Point{{-100, 0}, {100, 0}}
	c := Circle{Center: Point{0, 0}, Radius: 5}

	if Collides(PointDetector{}, curve, c) {
		t.Error("point detector should miss a circle between vertices")
	}
	if !Collides(SegmentDetector{}, curve, c) {
		t.Error("segment detector should catch a circle between vertices")
	}
}

func TestDetectorsShortCircuitOnFirstHit(t *testing.T) {
	curve := []Point{{100, 100}, {2, 0}, {1, 0}, {0, 0}}
	c := Circle{Center: Point{0, 0}, Radius: 5}

	if got := (PointDetector{}).FirstHit(curve, c); got != 1 {
		t.Errorf("PointDetector.FirstHit = %d, expected 1", got)
	}
	if got := (SegmentDetector{}).FirstHit(curve, c); got != 0 {
		t.Errorf("SegmentDetector.FirstHit = %d, expected 0", got)
	}
}

func TestDetectorsOnTinyCurves(t *testing.T) {
	c := Circle{Center: Point{0, 0}, Radius: 5}
	detectors := []Detector{PointDetector{}, SegmentDetector{}}

	for _, d := range detectors {
		if got := d.FirstHit(nil, c); got != -1 {
			t.Errorf("%T on empty curve = %d, expected -1", d, got)
		}
		if got := d.FirstHit([]Point{{1, 1}}, c); got != 0 {
			t.Errorf("%T on single inside point = %d, expected 0", d, got)
		}
		if got := d.FirstHit([]Point{{10, 10}}, c); got != -1 {
			t.Errorf("%T on single outside point = %d, expected -1", d, got)
		}
	}
}

func TestSegmentPolicySubsumesPointPolicy(t *testing.T) {
	sp := Spiral{RadialStep: 5, AngularStep: 0.1}
	curve := sp.Generate(400, 0.3)

	for x := -200.0; x <= 200; x += 7 {
		for y := -200.0; y <= 200; y += 7 {
			c := Circle{Center: Point{x, y}, Radius: 4}
			if Collides(PointDetector{}, curve, c) && !Collides(SegmentDetector{}, curve, c) {
				t.Fatalf("point policy hit at %v but segment policy missed", c.Center)
			}
		}
	}
}

func TestNewDetector(t *testing.T) {
	if _, ok := NewDetector(PolicyPoints).(PointDetector); !ok {
		t.Error("PolicyPoints should build a PointDetector")
	}
	if _, ok := NewDetector(PolicySegments).(SegmentDetector); !ok {
		t.Error("PolicySegments should build a SegmentDetector")
	}
}
