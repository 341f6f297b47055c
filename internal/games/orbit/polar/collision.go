package polar

import "math"

// degenerateEps is the squared segment length below which a segment is
// treated as a single point.
const degenerateEps = 1e-12

// Circle is the bird's hit area.
type Circle struct {
	Center Point
	Radius float64
}

// ContainsPoint reports whether p lies inside or on the circle.
func (c Circle) ContainsPoint(p Point) bool {
	return p.Sub(c.Center).LenSq() <= c.Radius*c.Radius
}

// IntersectsSegment reports whether any point of the segment p1→p2 lies
// inside or on the circle.
//
// It solves |p1 + t(p2-p1) - C|² = r² for t. The segment touches the disc
// iff the root interval [t1, t2] overlaps [0, 1]. This covers crossings,
// tangency (a single root) and segments lying entirely inside.
func (c Circle) IntersectsSegment(p1, p2 Point) bool {
	d := p2.Sub(p1)
	f := p1.Sub(c.Center)

	a := d.LenSq()
	if a < degenerateEps {
		return c.ContainsPoint(p1)
	}
	b := 2 * f.Dot(d)
	cc := f.LenSq() - c.Radius*c.Radius

	disc := b*b - 4*a*cc
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return t1 <= 1 && t2 >= 0
}

// Detector tests a hit circle against a curve.
type Detector interface {
	// FirstHit returns the lowest index at which the curve touches the
	// circle, or -1. For segment detectors the index is the segment start.
	FirstHit(curve []Point, c Circle) int
}

// PointDetector reports a hit when any curve vertex lies within the circle.
// Fast, but can miss a circle that fits between two widely spaced vertices.
type PointDetector struct{}

// FirstHit implements Detector.
func (PointDetector) FirstHit(curve []Point, c Circle) int {
	for i, p := range curve {
		if c.ContainsPoint(p) {
			return i
		}
	}
	return -1
}

// SegmentDetector treats the curve as a polyline and tests every segment.
type SegmentDetector struct{}

// FirstHit implements Detector.
func (SegmentDetector) FirstHit(curve []Point, c Circle) int {
	switch len(curve) {
	case 0:
		return -1
	case 1:
		if c.ContainsPoint(curve[0]) {
			return 0
		}
		return -1
	}
	for i := 0; i+1 < len(curve); i++ {
		if c.IntersectsSegment(curve[i], curve[i+1]) {
			return i
		}
	}
	return -1
}

// NewDetector returns the detector for a policy. Unknown policies fall back
// to segment testing.
func NewDetector(p CollisionPolicy) Detector {
	if p == PolicyPoints {
		return PointDetector{}
	}
	return SegmentDetector{}
}

// Collides reports whether the circle touches the curve under detector d.
func Collides(d Detector, curve []Point, c Circle) bool {
	return d.FirstHit(curve, c) >= 0
}
