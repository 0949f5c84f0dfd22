package dashboard

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/floats"
)

// Surface is the part of tcell.Screen the canvas draws on
type Surface interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (int, int)
}

// Rect is a cell-aligned rectangle, border included
type Rect struct {
	X, Y, W, H int
}

// Inner returns the area inside the border
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

// Bounds is the data range mapped onto a plot area
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// BoundsOf spans every point of every series
func BoundsOf(xs [][]float64, ys [][]float64) Bounds {
	b := Bounds{MinX: math.Inf(1), MaxX: math.Inf(-1), MinY: math.Inf(1), MaxY: math.Inf(-1)}
	for _, s := range xs {
		if len(s) > 0 {
			b.MinX = math.Min(b.MinX, floats.Min(s))
			b.MaxX = math.Max(b.MaxX, floats.Max(s))
		}
	}
	for _, s := range ys {
		if len(s) > 0 {
			b.MinY = math.Min(b.MinY, floats.Min(s))
			b.MaxY = math.Max(b.MaxY, floats.Max(s))
		}
	}
	return b
}

// Canvas draws text, boxes and plots onto a surface, clipped to its size
type Canvas struct {
	surface Surface
	w, h    int
}

// NewCanvas wraps a surface
func NewCanvas(s Surface) *Canvas {
	w, h := s.Size()
	return &Canvas{surface: s, w: w, h: h}
}

// Size returns the drawable size
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// Set draws one cell, ignoring positions off the surface
func (c *Canvas) Set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.surface.SetContent(x, y, ch, nil, style)
}

// Text draws s starting at (x, y) on a single row
func (c *Canvas) Text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		c.Set(x, y, ch, style)
		x++
	}
}

// Box draws a border with a title on the top edge
func (c *Canvas) Box(r Rect, title string, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		c.Set(x, r.Y, '─', style)
		c.Set(x, bottom, '─', style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.Set(r.X, y, '│', style)
		c.Set(right, y, '│', style)
	}
	c.Set(r.X, r.Y, '┌', style)
	c.Set(right, r.Y, '┐', style)
	c.Set(r.X, bottom, '└', style)
	c.Set(right, bottom, '┘', style)
	if title != "" {
		c.Text(r.X+2, r.Y, " "+title+" ", style)
	}
}

// Project maps a data point to a cell inside area. Degenerate ranges map to the middle.
func Project(area Rect, b Bounds, x, y float64) (int, int) {
	col := area.X + scale(x, b.MinX, b.MaxX, area.W-1)
	row := area.Y + (area.H - 1) - scale(y, b.MinY, b.MaxY, area.H-1)
	return col, row
}

func scale(v, lo, hi float64, cells int) int {
	if cells <= 0 {
		return 0
	}
	span := hi - lo
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return cells / 2
	}
	return int(math.Round((v - lo) / span * float64(cells)))
}

// Line draws a straight segment between two cells (Bresenham)
func (c *Canvas) Line(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Series plots (xs[i], ys[i]) inside area, joining consecutive points
func (c *Canvas) Series(area Rect, b Bounds, xs, ys []float64, ch rune, style tcell.Style) {
	n := min(len(xs), len(ys))
	px, py := 0, 0
	for i := 0; i < n; i++ {
		x, y := Project(area, b, xs[i], ys[i])
		if i > 0 {
			c.Line(px, py, x, y, ch, style)
		} else {
			c.Set(x, y, ch, style)
		}
		px, py = x, y
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
