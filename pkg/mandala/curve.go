package mandala

import (
	"github.com/jbeda/geom"

	"github.com/Faultbox/mandalas/pkg/math"
)

// Segment is a quadratic curve from the previous anchor to End.
type Segment struct {
	Ctrl geom.Coord
	End  geom.Coord
}

// Path is a closed outline: Start, then each segment in order, then a
// straight line from the last anchor back to Start.
type Path struct {
	Start    geom.Coord
	Segments []Segment
}

// QuadCurve connects points in order with quadratic segments and closes the
// result. Control points bulge toward +x/+y, or toward -x/-y when reversed.
func QuadCurve(points []math.Point, reversed bool) Path {
	if len(points) == 0 {
		return Path{}
	}

	path := Path{
		Start:    coord(points[0]),
		Segments: make([]Segment, 0, len(points)-1),
	}

	for i := 0; i < len(points)-1; i++ {
		var ctrl math.Point
		if reversed {
			ctrl = math.OppositeControlPoint(points[i], points[i+1])
		} else {
			ctrl = math.ControlPoint(points[i], points[i+1])
		}
		path.Segments = append(path.Segments, Segment{
			Ctrl: coord(ctrl),
			End:  coord(points[i+1]),
		})
	}

	return path
}

// Transform returns a copy of the path with every coordinate transformed.
func (p Path) Transform(a math.Affine) Path {
	out := Path{
		Start:    a.Apply(p.Start),
		Segments: make([]Segment, len(p.Segments)),
	}
	for i, s := range p.Segments {
		out.Segments[i] = Segment{Ctrl: a.Apply(s.Ctrl), End: a.Apply(s.End)}
	}
	return out
}

// Anchors returns the start point followed by every segment end.
func (p Path) Anchors() []geom.Coord {
	anchors := make([]geom.Coord, 0, len(p.Segments)+1)
	anchors = append(anchors, p.Start)
	for _, s := range p.Segments {
		anchors = append(anchors, s.End)
	}
	return anchors
}

// Last returns the final anchor.
func (p Path) Last() geom.Coord {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].End
}

func coord(p math.Point) geom.Coord {
	return geom.Coord{X: float64(p.X), Y: float64(p.Y)}
}
