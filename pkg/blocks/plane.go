package blocks

import (
	"fmt"
	"strings"
)

// Plane is the pair of world axes a grid is drawn on.
type Plane uint8

// Drawing planes.
const (
	PlaneXY Plane = iota // vertical, facing north/south
	PlaneXZ              // horizontal
	PlaneYZ              // vertical, facing east/west
)

// String returns the plane name.
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(p))
	}
}

// ParsePlane parses "xy", "xz" or "yz" case-insensitively.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XY":
		return PlaneXY, nil
	case "XZ":
		return PlaneXZ, nil
	case "YZ":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("unknown plane %q", s)
}

// Offset returns the world offset of grid cell (row i, column j) relative to
// the region's first block.
func (p Plane) Offset(i, j int) BlockPos {
	switch p {
	case PlaneXZ:
		return BlockPos{i, 0, j}
	case PlaneYZ:
		return BlockPos{0, -i, j}
	default:
		return BlockPos{i, -j, 0}
	}
}

// Face is the side of a block that was clicked to pick a center.
type Face uint8

// Block faces.
const (
	FaceUp Face = iota
	FaceDown
	FaceNorth
	FaceSouth
	FaceEast
	FaceWest
)

var faceNames = [...]string{"UP", "DOWN", "NORTH", "SOUTH", "EAST", "WEST"}

// String returns the face name.
func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(f))
}

// ParseFace parses a face name case-insensitively.
func ParseFace(s string) (Face, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range faceNames {
		if n == name {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("unknown face %q", s)
}

// Plane returns the drawing plane perpendicular to the face.
func (f Face) Plane() Plane {
	switch f {
	case FaceNorth, FaceSouth:
		return PlaneXY
	case FaceEast, FaceWest:
		return PlaneYZ
	default:
		return PlaneXZ
	}
}
