package mandala

import (
	"fmt"
	"sort"
	"strings"
)

// ElementType is the configuration tag of an element.
type ElementType string

// Element type tags.
const (
	CurveConcave ElementType = "CURVE_CONCAVE"
	CurveConvex  ElementType = "CURVE_CONVEX"
	CurveRandom  ElementType = "CURVE_RANDOM"
	Petal        ElementType = "PETAL"
	Strip        ElementType = "STRIP" // drawn as a petal
)

// ParseElementType parses a tag case-insensitively.
func ParseElementType(s string) (ElementType, error) {
	t := ElementType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case CurveConcave, CurveConvex, CurveRandom, Petal, Strip:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown element type %q", ErrInvalidElementConfiguration, s)
}

// ElementParams describes how to build one element.
type ElementParams struct {
	Type     ElementType
	Vertices int
	Range    []float64
}

// Build constructs the element, drawing its sub-seed from attrs.
func (p ElementParams) Build(attrs *Attributes) (*Element, error) {
	switch p.Type {
	case CurveConcave:
		return NewPathElement(attrs, p.Vertices, p.Range, KindConcave)
	case CurveConvex:
		return NewPathElement(attrs, p.Vertices, p.Range, KindConvex)
	case CurveRandom:
		return NewPathElement(attrs, p.Vertices, p.Range, KindRandom)
	case Petal, Strip:
		return NewPetalElement(attrs, p.Range)
	default:
		return nil, fmt.Errorf("%w: unknown element type %q", ErrInvalidElementConfiguration, p.Type)
	}
}

// Recipe is the read-only composition input of a mandala.
type Recipe struct {
	// RandomCount is the number of elements drawn from Pool.
	RandomCount int
	// Pool lists the candidate element types in a fixed order.
	Pool []ElementParams
	// Fixed maps an identifier to an element that is always drawn.
	Fixed map[string]ElementParams
	// SaveImage enables best-effort persistence of the canvas.
	SaveImage bool
}

// FixedIDs returns the fixed element identifiers in draw order (sorted).
func (r Recipe) FixedIDs() []string {
	ids := make([]string, 0, len(r.Fixed))
	for id := range r.Fixed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
