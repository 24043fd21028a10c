package mandala

import (
	"fmt"
	"image"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Snapshotter persists a rendered canvas under a name and returns where it went.
type Snapshotter interface {
	Save(name string, img image.Image) (string, error)
}

// Option configures a Mandala.
type Option func(*Mandala)

// WithLogger sets the logger used for per-element diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(m *Mandala) {
		if l != nil {
			m.log = l
		}
	}
}

// WithSnapshotter sets where the canvas goes when the recipe asks to save it.
func WithSnapshotter(s Snapshotter) Option {
	return func(m *Mandala) {
		m.snap = s
	}
}

// Mandala is one composed pattern and its pixel grid.
type Mandala struct {
	RunID string

	attrs    *Attributes
	recipe   Recipe
	elements []*Element
	canvas   *Canvas
	grid     Grid

	log  *zap.Logger
	snap Snapshotter
}

// New builds every configured element and rasterizes the result.
// Elements that fail to build are logged and skipped, so the mandala may hold
// fewer elements than the recipe asks for.
func New(attrs *Attributes, recipe Recipe, opts ...Option) *Mandala {
	m := &Mandala{
		RunID:  uuid.NewString(),
		attrs:  attrs,
		recipe: recipe,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(zap.String("run", m.RunID), zap.Int64("seed", attrs.Seed))

	m.createElements()
	m.compose()

	return m
}

func (m *Mandala) createElements() {
	pool := m.recipe.Pool

	if m.recipe.RandomCount > 0 && len(pool) == 0 {
		m.log.Warn("random pool is empty, skipping random elements",
			zap.Int("requested", m.recipe.RandomCount))
	} else {
		for slot := 0; slot < m.recipe.RandomCount; slot++ {
			params := pool[m.attrs.Intn(len(pool))]
			e, err := params.Build(m.attrs)
			if err != nil {
				m.log.Warn("invalid element in random pool",
					zap.Int("slot", slot),
					zap.String("type", string(params.Type)),
					zap.Error(err))
				continue
			}
			m.add(e)
		}
	}

	for _, id := range m.recipe.FixedIDs() {
		e, err := m.recipe.Fixed[id].Build(m.attrs)
		if err != nil {
			m.log.Warn("invalid fixed element",
				zap.String("id", id),
				zap.Error(err))
			continue
		}
		m.add(e)
	}
}

func (m *Mandala) add(e *Element) {
	m.log.Debug("element created", zap.Stringer("element", e))
	m.elements = append(m.elements, e)
}

func (m *Mandala) compose() {
	m.canvas = NewCanvas(m.attrs.Side(), Background)

	for _, e := range m.elements {
		r := uint8(m.attrs.Intn(255))
		g := uint8(m.attrs.Intn(255))
		b := uint8(m.attrs.Intn(255))
		e.Distribute(m.canvas, PackRGB(r, g, b))
	}

	m.grid = m.canvas.Grid()

	if m.recipe.SaveImage && m.snap != nil {
		path, err := m.snap.Save(fmt.Sprintf("%d", m.attrs.Seed), m.canvas.Image())
		if err != nil {
			m.log.Warn("failed to save mandala image", zap.Error(err))
		} else {
			m.log.Info("mandala image saved", zap.String("path", path))
		}
	}

	m.log.Info("mandala composed",
		zap.Int("elements", len(m.elements)),
		zap.Int("side", m.attrs.Side()),
		zap.Int("sections", m.attrs.Sections))
}

// Attributes returns the run's attributes.
func (m *Mandala) Attributes() *Attributes {
	return m.attrs
}

// Elements returns the elements in draw order.
func (m *Mandala) Elements() []*Element {
	return m.elements
}

// Grid returns the pixel grid without giving up ownership. It is nil once
// TakeGrid has been called.
func (m *Mandala) Grid() Grid {
	return m.grid
}

// TakeGrid hands the pixel grid to the caller and forgets it.
func (m *Mandala) TakeGrid() Grid {
	g := m.grid
	m.grid = nil
	return g
}

// Image returns an RGBA rendering of the canvas.
func (m *Mandala) Image() *image.RGBA {
	return m.canvas.Image()
}
