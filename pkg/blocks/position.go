// Package blocks maps mandala pixel grids onto materials in a 3D block world.
package blocks

import (
	"fmt"
	"math"
)

// BlockPos is an integer block coordinate.
type BlockPos struct {
	X, Y, Z int
}

// Pos is shorthand for BlockPos{x, y, z}.
func Pos(x, y, z int) BlockPos {
	return BlockPos{x, y, z}
}

// Add returns p + other.
func (p BlockPos) Add(other BlockPos) BlockPos {
	return BlockPos{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}

// Relative returns the block offset from p by (dx, dy, dz).
func (p BlockPos) Relative(dx, dy, dz int) BlockPos {
	return BlockPos{p.X + dx, p.Y + dy, p.Z + dz}
}

// Distance returns the Euclidean distance to another block.
func (p BlockPos) Distance(other BlockPos) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	dz := float64(p.Z - other.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// String returns the position as "(x, y, z)".
func (p BlockPos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
