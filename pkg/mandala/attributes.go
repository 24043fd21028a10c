// Package mandala generates seeded, radially symmetric patterns and
// rasterizes them into square pixel grids.
//
// A generation run owns one Attributes value. Every random draw of the run
// (element types, per-element sub-seeds, colors) comes from that value's
// stream, so the same seed and recipe always yield the same grid.
package mandala

import (
	"fmt"
	"math/rand/v2"

	"github.com/Faultbox/mandalas/pkg/math"
)

// pcgStream is the fixed PCG stream selector; only the seed varies.
const pcgStream = 0x6d616e64616c61

// Attributes holds the parameters and random stream of one generation run.
type Attributes struct {
	Seed     int64
	Radius   int
	Sections int
	Center   math.Point

	rng *rand.Rand
}

// NewAttributes creates the attributes for a run. The radius must be positive
// and sections must be a positive divisor of 360.
func NewAttributes(seed int64, radius, sections int) (*Attributes, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %d must be positive", ErrInvalidAttributes, radius)
	}
	if sections <= 0 || 360%sections != 0 {
		return nil, fmt.Errorf("%w: %d sections do not divide 360", ErrInvalidAttributes, sections)
	}

	return &Attributes{
		Seed:     seed,
		Radius:   radius,
		Sections: sections,
		Center:   math.Pt(radius, radius),
		rng:      rand.New(rand.NewPCG(uint64(seed), pcgStream)),
	}, nil
}

// Intn returns a value in [0, n) from the run's stream. It returns 0 without
// consuming the stream when n <= 0.
func (a *Attributes) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return a.rng.IntN(n)
}

// SectionAngle returns the angular width of one section in degrees.
func (a *Attributes) SectionAngle() int {
	return 360 / a.Sections
}

// Side returns the side length of the square canvas.
func (a *Attributes) Side() int {
	return 2*a.Radius + 1
}

func (a *Attributes) String() string {
	return fmt.Sprintf("seed: %d, radius: %d, sections: %d", a.Seed, a.Radius, a.Sections)
}
