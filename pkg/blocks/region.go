package blocks

import "fmt"

// Region is the part of the world a mandala is drawn into: a center block,
// a drawing plane and a radius in blocks. The zero value has neither center
// nor radius.
type Region struct {
	center    BlockPos
	hasCenter bool
	plane     Plane
	radius    int
}

// SetCenter sets the center block and derives the plane from the clicked face.
func (r *Region) SetCenter(pos BlockPos, face Face) {
	r.SetCenterOnPlane(pos, face.Plane())
}

// SetCenterOnPlane sets the center block and the plane explicitly.
func (r *Region) SetCenterOnPlane(pos BlockPos, plane Plane) {
	r.center = pos
	r.plane = plane
	r.hasCenter = true
}

// Center returns the center block and whether one is set.
func (r *Region) Center() (BlockPos, bool) {
	return r.center, r.hasCenter
}

// Plane returns the drawing plane.
func (r *Region) Plane() Plane {
	return r.plane
}

// Radius returns the radius in blocks; 0 means unset.
func (r *Region) Radius() int {
	return r.radius
}

// SetRadius sets the radius in blocks.
func (r *Region) SetRadius(radius int) {
	r.radius = radius
}

// SetRadiusFromBorder sets the radius to the truncated distance between the
// center and a block on the region's border.
func (r *Region) SetRadiusFromBorder(border BlockPos) (int, error) {
	if !r.hasCenter {
		return 0, ErrCenterNotDefined
	}
	r.radius = int(r.center.Distance(border))
	return r.radius, nil
}

// Side returns the side length of the grid the region holds.
func (r *Region) Side() int {
	return 2*r.radius + 1
}

// FirstBlock returns the block that grid cell (0, 0) lands on.
func (r *Region) FirstBlock() (BlockPos, error) {
	if r.radius == 0 {
		return BlockPos{}, ErrRadiusNotDefined
	}
	if !r.hasCenter {
		return BlockPos{}, ErrCenterNotDefined
	}

	switch r.plane {
	case PlaneXY:
		return r.center.Relative(-r.radius, r.radius, 0), nil
	case PlaneXZ:
		return r.center.Relative(-r.radius, 0, -r.radius), nil
	case PlaneYZ:
		return r.center.Relative(0, r.radius, -r.radius), nil
	default:
		return BlockPos{}, fmt.Errorf("%w: unknown plane %s", ErrCenterNotDefined, r.plane)
	}
}

func (r *Region) String() string {
	if !r.hasCenter {
		return fmt.Sprintf("Plane: %s, Radius: %d, Center: unset", r.plane, r.radius)
	}
	return fmt.Sprintf("Plane: %s, Radius: %d, Center: %s", r.plane, r.radius, r.center)
}
