package mandala

import (
	"math/rand/v2"

	"github.com/Faultbox/mandalas/pkg/math"
)

// PointGenerator produces the vertex sets curves are built from.
// Each element owns one, seeded from the run's stream.
type PointGenerator struct {
	seed int64
	rng  *rand.Rand
}

// NewPointGenerator creates a generator for the given sub-seed.
func NewPointGenerator(seed int64) *PointGenerator {
	return &PointGenerator{
		seed: seed,
		rng:  rand.New(rand.NewPCG(uint64(seed), pcgStream)),
	}
}

func (g *PointGenerator) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rng.IntN(n)
}

// RandomPoints returns n points with independent radius in [0, radius] and
// angle in [0, arc]. The points are unordered.
func (g *PointGenerator) RandomPoints(n int, center math.Point, radius, arc int) []math.Point {
	points := make([]math.Point, 0, max(n, 0))
	for i := 0; i < n; i++ {
		r := g.intn(radius + 1)
		a := g.intn(arc + 1)
		points = append(points, math.PolarToXY(center, r, a))
	}
	return points
}

// PointsForReflection returns n points inside the ring [minR, maxR) and the
// arc [0, arc). The first point sits on the 0 degree axis at minR. Afterwards
// reflectCount indices, drawn with replacement, are pulled onto the
// horizontal axis through the center so the curve meets its mirror image.
func (g *PointGenerator) PointsForReflection(n, reflectCount int, center math.Point, minR, maxR, arc int) []math.Point {
	if n <= 0 {
		return nil
	}

	points := make([]math.Point, n)
	points[0] = math.PolarToXY(center, minR, 0)

	for i := 1; i < n; i++ {
		r := minR + g.intn(maxR-minR)
		a := g.intn(arc)
		points[i] = math.PolarToXY(center, r, a)
	}

	for ; reflectCount > 0; reflectCount-- {
		points[g.intn(n)].Y = center.Y
	}

	return points
}

// OrderedPath returns a closed vertex sequence whose first half moves
// outward: each vertex's radius is drawn above the radius the previous vertex
// actually landed on after conversion to canvas space. With stickFirst the
// first vertex is pinned to (minR, arc/2); with stickLast the last one is
// pinned to (maxR, arc/2). The unpinned vertices are then mirrored across
// arc/2 and appended in reverse, and the first vertex is repeated to close.
func (g *PointGenerator) OrderedPath(n int, center math.Point, minR, maxR, arc int, stickFirst, stickLast bool) []math.Point {
	points, start, end := g.orderedHalf(n, center, minR, maxR, arc, stickFirst, stickLast)
	if len(points) == 0 {
		return nil
	}

	central := arc / 2
	for i := end - 1; i >= start; i-- {
		points = append(points, math.SymmetricPoint(points[i], center, central))
	}

	return append(points, points[0])
}

// orderedHalf draws the unmirrored half of an ordered path. Interior
// vertices occupy indices [start, end).
func (g *PointGenerator) orderedHalf(n int, center math.Point, minR, maxR, arc int, stickFirst, stickLast bool) (points []math.Point, start, end int) {
	central := arc / 2
	start, end = 0, n
	lastRadius := minR

	if stickFirst {
		p := math.PolarToXY(center, minR, central)
		points = append(points, p)
		lastRadius = int(math.XYToPolar(center, p).R)
		start++
	}
	if stickLast {
		end--
	}

	for i := start; i < end; i++ {
		r := g.openInterval(lastRadius, maxR)
		a := g.openInterval(0, arc)
		p := math.PolarToXY(center, r, a)
		points = append(points, p)
		lastRadius = int(math.XYToPolar(center, p).R)
	}
	if end < start {
		end = start
	}

	if stickLast {
		points = append(points, math.PolarToXY(center, maxR, central))
	}

	return points, start, end
}

// SinglePoint returns a point whose radius and angle lie strictly between the
// given bounds. Equal bounds pin the value.
func (g *PointGenerator) SinglePoint(center math.Point, minR, maxR, minAngle, maxAngle int) math.Point {
	r := g.openInterval(minR, maxR)
	a := g.openInterval(minAngle, maxAngle)
	return math.PolarToXY(center, r, a)
}

// openInterval draws an integer in (lo, hi). When the interval holds no
// integer (hi == lo+1) it returns hi.
func (g *PointGenerator) openInterval(lo, hi int) int {
	switch {
	case lo == hi:
		return lo
	case hi-lo == 1:
		return hi
	}
	return lo + 1 + g.intn(hi-lo-1)
}

// Seed returns the sub-seed the generator was created with.
func (g *PointGenerator) Seed() int64 {
	return g.seed
}
