// Package math provides the integer and polar geometry used to build mandala curves.
package math

import "math"

// Point is an integer position in canvas space.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{x, y}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// MidPoint returns the integer midpoint between p1 and p2.
// Coordinates are truncated toward zero.
func MidPoint(p1, p2 Point) Point {
	return Point{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}
}

// ControlPoint returns a quadratic control point for the segment p1-p2 that
// bulges toward +x/+y: the midpoint shifted by the absolute deltas, with the
// x delta applied to y and the y delta applied to x.
func ControlPoint(p1, p2 Point) Point {
	c := MidPoint(p1, p2)
	c.Y += absInt(p1.X - p2.X)
	c.X += absInt(p1.Y - p2.Y)
	return c
}

// OppositeControlPoint mirrors ControlPoint: the bulge goes toward -x/-y.
func OppositeControlPoint(p1, p2 Point) Point {
	c := MidPoint(p1, p2)
	c.Y -= absInt(p1.X - p2.X)
	c.X -= absInt(p1.Y - p2.Y)
	return c
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
