package mandala

import (
	"fmt"
	gomath "math"

	"github.com/jbeda/geom"

	"github.com/Faultbox/mandalas/pkg/math"
)

// Kind identifies how an element's path was constructed.
type Kind int

// Element kinds.
const (
	KindConcave Kind = iota // reflected points, outward bulge
	KindConvex              // ordered points, inward bulge
	KindRandom              // unconstrained points
	KindPetal               // two reflected points forming a lens
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindConcave:
		return "concave"
	case KindConvex:
		return "convex"
	case KindRandom:
		return "random"
	case KindPetal:
		return "petal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Element is one drawable primitive before symmetry distribution.
type Element struct {
	Kind      Kind
	Vertices  int
	MinRadius int
	MaxRadius int
	// Seed is the sub-seed the element's points were drawn with.
	Seed int64

	path         Path
	pivot        geom.Coord
	sectionAngle int
}

// NewPathElement builds a concave, convex or random curve. rangeFrac scales
// the element's ring relative to the mandala radius and must hold two values
// in [0, 1] with min <= max. Validation happens before any random draw.
func NewPathElement(attrs *Attributes, vertices int, rangeFrac []float64, kind Kind) (*Element, error) {
	if kind == KindPetal {
		return nil, fmt.Errorf("%w: petal is not a path kind", ErrInvalidElementConfiguration)
	}
	if vertices < 1 {
		return nil, fmt.Errorf("%w: %s path needs at least one vertex, got %d", ErrInvalidElementConfiguration, kind, vertices)
	}
	minR, maxR, err := radiusRange(attrs.Radius, rangeFrac)
	if err != nil {
		return nil, err
	}

	e := newElement(attrs, kind, vertices, minR, maxR)
	gen := NewPointGenerator(int64(attrs.Intn(gomath.MaxInt32)))
	e.Seed = gen.Seed()
	arc := attrs.SectionAngle()

	switch kind {
	case KindConcave:
		points := gen.PointsForReflection(vertices, vertices, attrs.Center, minR, maxR, arc)
		e.path = QuadCurve(points, false)
	case KindConvex:
		points := gen.OrderedPath(vertices, attrs.Center, minR, maxR, arc, false, true)
		e.path = QuadCurve(points, true)
	case KindRandom:
		points := gen.RandomPoints(vertices, attrs.Center, attrs.Radius, arc)
		e.path = QuadCurve(points, false)
	}

	return e, nil
}

// NewPetalElement builds a lens-shaped petal from two reflected points. The
// inner point sits at the range's minimum; the outer one may reach the full
// mandala radius, so the range's maximum is only validated and reported.
func NewPetalElement(attrs *Attributes, rangeFrac []float64) (*Element, error) {
	minR, maxR, err := radiusRange(attrs.Radius, rangeFrac)
	if err != nil {
		return nil, err
	}

	e := newElement(attrs, KindPetal, 2, minR, maxR)
	gen := NewPointGenerator(int64(attrs.Intn(gomath.MaxInt32)))
	e.Seed = gen.Seed()
	points := gen.PointsForReflection(2, 2, attrs.Center, minR, attrs.Radius, attrs.SectionAngle())
	e.path = QuadCurve(points, false)

	return e, nil
}

func newElement(attrs *Attributes, kind Kind, vertices, minR, maxR int) *Element {
	return &Element{
		Kind:         kind,
		Vertices:     vertices,
		MinRadius:    minR,
		MaxRadius:    maxR,
		pivot:        geom.Coord{X: float64(attrs.Center.X), Y: float64(attrs.Center.Y)},
		sectionAngle: attrs.SectionAngle(),
	}
}

// radiusRange converts a fraction pair into absolute radii.
func radiusRange(radius int, frac []float64) (int, int, error) {
	if len(frac) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 values, got %d", ErrInvalidRadiusRange, len(frac))
	}
	lo, hi := frac[0], frac[1]
	if !(lo >= 0 && lo <= 1) || !(hi >= 0 && hi <= 1) {
		return 0, 0, fmt.Errorf("%w: [%g, %g] is outside [0, 1]", ErrInvalidRadiusRange, lo, hi)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: min %g exceeds max %g", ErrInvalidRadiusRange, lo, hi)
	}
	return int(lo * float64(radius)), int(hi * float64(radius)), nil
}

// Path returns the element's untransformed outline.
func (e *Element) Path() Path {
	return e.path
}

// Mirror returns the outline flipped across the horizontal axis through the
// mandala center.
func (e *Element) Mirror() Path {
	return e.path.Transform(math.MirrorAbout(e.pivot.Y))
}

// Copies returns every outline Distribute draws: for each section, the
// rotated path followed by the rotated mirror.
func (e *Element) Copies() []Path {
	rotations := 360 / e.sectionAngle
	mirror := e.Mirror()
	step := math.RotateAbout(float64(e.sectionAngle), e.pivot)

	copies := make([]Path, 0, 2*rotations)
	at := math.Identity()
	for j := 0; j < rotations; j++ {
		copies = append(copies, e.path.Transform(at), mirror.Transform(at))
		at = at.Mul(step)
	}
	return copies
}

// Distribute strokes the element around the whole mandala in one color.
func (e *Element) Distribute(c *Canvas, color uint32) {
	for _, p := range e.Copies() {
		c.Stroke(p, color)
	}
}

func (e *Element) String() string {
	return fmt.Sprintf("%s element: vertices: %d, minRadius: %d, maxRadius: %d, seed: %d",
		e.Kind, e.Vertices, e.MinRadius, e.MaxRadius, e.Seed)
}
