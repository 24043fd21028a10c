package math

import (
	"math"

	"github.com/jbeda/geom"
)

// Affine is a 2D affine transform in column-major order:
//
//	[m0 m2 m4]
//	[m1 m3 m5]
//	[ 0  0  1]
type Affine [6]float64

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Scale returns a scale by (x, y) around the origin.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Rotate returns a rotation by degrees around the origin.
// Multiples of 90 degrees produce exact matrices so that repeated quarter
// turns land back on integer coordinates.
func Rotate(degrees float64) Affine {
	s, c := sinCos(degrees)
	return Affine{c, s, -s, c, 0, 0}
}

// RotateAbout returns a rotation by degrees around pivot.
func RotateAbout(degrees float64, pivot geom.Coord) Affine {
	return Translate(pivot.X, pivot.Y).
		Mul(Rotate(degrees)).
		Mul(Translate(-pivot.X, -pivot.Y))
}

// MirrorAbout returns the vertical flip across the horizontal line y = axisY.
func MirrorAbout(axisY float64) Affine {
	return Translate(0, axisY).Mul(Scale(1, -1)).Mul(Translate(0, -axisY))
}

// Mul multiplies this transform by another (a * other); other applies first.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		a[0]*other[0] + a[2]*other[1],
		a[1]*other[0] + a[3]*other[1],
		a[0]*other[2] + a[2]*other[3],
		a[1]*other[2] + a[3]*other[3],
		a[0]*other[4] + a[2]*other[5] + a[4],
		a[1]*other[4] + a[3]*other[5] + a[5],
	}
}

// Apply transforms a coordinate.
func (a Affine) Apply(p geom.Coord) geom.Coord {
	return geom.Coord{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

func sinCos(degrees float64) (float64, float64) {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	switch d {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(Radians(d))
}
