package blocks

import (
	"fmt"

	"go.uber.org/zap"
)

// SurfaceWriter places a material at a world coordinate.
type SurfaceWriter interface {
	SetMaterial(x, y, z int, m Material)
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the mapper's logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Mapper) {
		if l != nil {
			m.log = l
		}
	}
}

// Mapper quantizes one pixel grid into materials and projects it into the
// world. It owns the grid: after a successful Project the grid is released
// and the mapper cannot draw again.
type Mapper struct {
	grid     [][]uint32
	distinct []uint32
	palette  map[uint32]Material
	log      *zap.Logger
}

// NewMapper takes ownership of grid and assigns a material to each distinct
// pixel value. The first value met in row-major order is the background and
// maps to Air; the i-th other value maps to materials[i % len(materials)].
func NewMapper(grid [][]uint32, materials []Material, opts ...Option) (*Mapper, error) {
	if len(materials) == 0 {
		return nil, ErrNoMaterials
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	m := &Mapper{
		grid:    grid,
		palette: make(map[uint32]Material),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, row := range grid {
		for _, v := range row {
			if _, seen := m.palette[v]; seen {
				continue
			}
			i := len(m.distinct)
			if i == 0 {
				m.palette[v] = Air
			} else {
				m.palette[v] = materials[i%len(materials)]
			}
			m.distinct = append(m.distinct, v)
		}
	}

	m.log.Debug("palette built",
		zap.Int("distinct", len(m.distinct)),
		zap.Int("materials", len(materials)))

	return m, nil
}

// Background returns the pixel value treated as empty.
func (m *Mapper) Background() uint32 {
	return m.distinct[0]
}

// Distinct returns the distinct pixel values in first-seen order.
func (m *Mapper) Distinct() []uint32 {
	return append([]uint32(nil), m.distinct...)
}

// Palette returns a copy of the pixel to material mapping.
func (m *Mapper) Palette() map[uint32]Material {
	out := make(map[uint32]Material, len(m.palette))
	for k, v := range m.palette {
		out[k] = v
	}
	return out
}

// Project writes every grid cell into the region, one SetMaterial call per
// cell in row-major order. Preconditions are checked before the first
// write, and a failed precondition leaves the grid in place.
func (m *Mapper) Project(region *Region, w SurfaceWriter) error {
	if m.grid == nil {
		return ErrGridConsumed
	}
	if region == nil {
		region = &Region{}
	}

	first, err := region.FirstBlock()
	if err != nil {
		return err
	}

	side := region.Side()
	if len(m.grid) != side {
		return fmt.Errorf("%w: grid has %d rows, region needs %d", ErrGridSizeMismatch, len(m.grid), side)
	}
	for i, row := range m.grid {
		if len(row) != side {
			return fmt.Errorf("%w: row %d has %d cells, region needs %d", ErrGridSizeMismatch, i, len(row), side)
		}
	}

	plane := region.Plane()
	for i, row := range m.grid {
		for j, v := range row {
			pos := first.Add(plane.Offset(i, j))
			w.SetMaterial(pos.X, pos.Y, pos.Z, m.palette[v])
		}
	}

	m.log.Info("mandala projected",
		zap.Stringer("first", first),
		zap.Stringer("plane", plane),
		zap.Int("cells", side*side))

	m.grid = nil
	return nil
}
