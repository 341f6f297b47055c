package polar

import "math"

// Point is a Cartesian position in world units.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// LenSq returns the squared length of p.
func (p Point) LenSq() float64 {
	return p.Dot(p)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// PolarToCartesian converts (radius, angle) to a Cartesian point.
// A negative radius is valid and lands on the opposite side of the origin.
func PolarToCartesian(radius, angle float64) Point {
	return Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// CartesianToPolar converts a point to (radius, angle) with angle in (-π, π].
// The angle is undefined at the origin and reported as 0.
func CartesianToPolar(p Point) (radius, angle float64) {
	return math.Hypot(p.X, p.Y), math.Atan2(p.Y, p.X)
}
