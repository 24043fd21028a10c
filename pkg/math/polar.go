package math

import "math"

// PolarPoint is a point relative to some center, with Theta in degrees.
type PolarPoint struct {
	R     float64
	Theta float64
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// PolarToXY converts a polar offset around center into canvas space.
// Both coordinates are truncated toward zero before being added to the center.
func PolarToXY(center Point, radius int, degrees int) Point {
	rad := Radians(float64(degrees))
	r := float64(radius)
	return Point{
		X: center.X + int(math.Cos(rad)*r),
		Y: center.Y + int(math.Sin(rad)*r),
	}
}

// XYToPolar is the inverse of PolarToXY, up to the truncation PolarToXY applies.
func XYToPolar(center Point, p Point) PolarPoint {
	tx := float64(p.X - center.X)
	ty := float64(p.Y - center.Y)
	return PolarPoint{
		R:     math.Sqrt(tx*tx + ty*ty),
		Theta: Degrees(math.Atan2(ty, tx)),
	}
}

// SymmetricPoint reflects p across the ray leaving center at centralAngle degrees.
func SymmetricPoint(p Point, center Point, centralAngle int) Point {
	pp := XYToPolar(center, p)
	central := float64(centralAngle)
	delta := math.Abs(pp.Theta - central)

	if pp.Theta > central {
		return PolarToXY(center, int(pp.R), int(central-delta))
	}
	return PolarToXY(center, int(pp.R), int(central+delta))
}
