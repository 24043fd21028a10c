package mandala

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/jbeda/geom"
)

// Background is the value every canvas starts with: opaque black.
const Background uint32 = 0xFF000000

// samplesPerPixel controls how densely curves are sampled when stroking.
const samplesPerPixel = 4

// Grid is a square pixel matrix indexed grid[row][col].
type Grid [][]uint32

// Side returns the number of rows.
func (g Grid) Side() int {
	return len(g)
}

// PackRGB packs an opaque color as 0xAARRGGBB.
func PackRGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Canvas is a square raster with its pivot at the middle pixel.
// Strokes are sampled relative to the pivot and rounded half away from it,
// so mirrored or quarter-turned paths hit mirrored pixels exactly.
type Canvas struct {
	side  int
	pivot int
	pix   []uint32
}

// NewCanvas allocates a side x side canvas filled with background.
func NewCanvas(side int, background uint32) *Canvas {
	c := &Canvas{
		side:  side,
		pivot: side / 2,
		pix:   make([]uint32, side*side),
	}
	for i := range c.pix {
		c.pix[i] = background
	}
	return c
}

// Side returns the canvas side length.
func (c *Canvas) Side() int {
	return c.side
}

// At returns the pixel at column x, row y.
func (c *Canvas) At(x, y int) uint32 {
	return c.pix[y*c.side+x]
}

// Set writes a pixel; coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, v uint32) {
	if x < 0 || y < 0 || x >= c.side || y >= c.side {
		return
	}
	c.pix[y*c.side+x] = v
}

// Stroke draws the outline of a closed path one pixel wide.
func (c *Canvas) Stroke(p Path, v uint32) {
	pivot := geom.Coord{X: float64(c.pivot), Y: float64(c.pivot)}

	prev := p.Start.Minus(pivot)
	c.plot(prev, v)
	for _, s := range p.Segments {
		ctrl := s.Ctrl.Minus(pivot)
		end := s.End.Minus(pivot)
		c.quad(prev, ctrl, end, v)
		prev = end
	}
	c.line(prev, p.Start.Minus(pivot), v)
}

func (c *Canvas) quad(p0, p1, p2 geom.Coord, v uint32) {
	n := steps(p0.DistanceFrom(p1) + p1.DistanceFrom(p2))
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		w0 := (1 - t) * (1 - t)
		w1 := 2 * t * (1 - t)
		w2 := t * t
		c.plot(geom.Coord{
			X: w0*p0.X + w1*p1.X + w2*p2.X,
			Y: w0*p0.Y + w1*p1.Y + w2*p2.Y,
		}, v)
	}
}

func (c *Canvas) line(p0, p1 geom.Coord, v uint32) {
	n := steps(p0.DistanceFrom(p1))
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.plot(geom.Coord{
			X: (1-t)*p0.X + t*p1.X,
			Y: (1-t)*p0.Y + t*p1.Y,
		}, v)
	}
}

// plot sets the pixel nearest to an offset from the pivot.
func (c *Canvas) plot(offset geom.Coord, v uint32) {
	x := c.pivot + int(gomath.Round(offset.X))
	y := c.pivot + int(gomath.Round(offset.Y))
	c.Set(x, y, v)
}

func steps(length float64) int {
	n := int(gomath.Ceil(length * samplesPerPixel))
	if n < 1 {
		return 1
	}
	return n
}

// Grid copies the canvas into a row-major grid.
func (c *Canvas) Grid() Grid {
	grid := make(Grid, c.side)
	for row := 0; row < c.side; row++ {
		grid[row] = make([]uint32, c.side)
		copy(grid[row], c.pix[row*c.side:(row+1)*c.side])
	}
	return grid
}

// Image returns an RGBA copy of the canvas for persistence.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.side, c.side))
	for y := 0; y < c.side; y++ {
		for x := 0; x < c.side; x++ {
			v := c.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: uint8(v >> 24),
			})
		}
	}
	return img
}
