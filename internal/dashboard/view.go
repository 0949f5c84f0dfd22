package dashboard

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"evoopt/internal/curve"
	"evoopt/internal/tour"
)

var (
	styleFrame  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTarget = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBest   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleCity   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// View is one problem rendered by the dashboard
type View interface {
	Title() string
	// Step advances one generation; it reports false once the view stops stepping
	Step() bool
	Generation() int
	History() []float64
	Costs() []float64
	// Draw renders the problem-specific panel inside r
	Draw(c *Canvas, r Rect)
}

// CurveView plots the target curve against the best candidate curve
type CurveView struct {
	engine *curve.Engine
	xs     []float64
	target []float64
}

// NewCurveView wraps a curve engine. It never stops stepping.
func NewCurveView(e *curve.Engine) *CurveView {
	xs := make([]float64, curve.Samples)
	for j := range xs {
		xs[j] = curve.Sample(j)
	}
	return &CurveView{
		engine: e,
		xs:     xs,
		target: curve.Curve(e.Target().Params()),
	}
}

func (v *CurveView) Title() string { return "Curve fitting" }
func (v *CurveView) Generation() int { return v.engine.Generation() }
func (v *CurveView) History() []float64 { return v.engine.History() }
func (v *CurveView) Costs() []float64 { return v.engine.Costs() }

// Step runs one generation
func (v *CurveView) Step() bool {
	v.engine.Step()
	return true
}

// Draw plots both curves over the sampled domain
func (v *CurveView) Draw(c *Canvas, r Rect) {
	best, _ := v.engine.Best()
	ys := curve.Curve(best.Scaled())

	c.Box(r, "y vs x", styleFrame)
	area := r.Inner()
	b := BoundsOf([][]float64{v.xs}, [][]float64{v.target, ys})
	c.Series(area, b, v.xs, v.target, '·', styleTarget)
	c.Series(area, b, v.xs, ys, '•', styleBest)
	c.Text(area.X+1, area.Y, fmt.Sprintf("best %v", best.Ints()), styleBest)
}

// TourView plots the cities and the best route
type TourView struct {
	engine *tour.Engine
	limit  int
	cities []tour.City
	xs, ys []float64
}

// NewTourView wraps a tour engine that stops after limit generations
func NewTourView(e *tour.Engine, limit int) *TourView {
	cities := e.Cities()
	xs := make([]float64, len(cities))
	ys := make([]float64, len(cities))
	for i, city := range cities {
		xs[i] = float64(city.X)
		ys[i] = float64(city.Y)
	}
	return &TourView{engine: e, limit: limit, cities: cities, xs: xs, ys: ys}
}

func (v *TourView) Title() string { return "Traveling salesman" }
func (v *TourView) Generation() int { return v.engine.Generation() }
func (v *TourView) History() []float64 { return v.engine.History() }
func (v *TourView) Costs() []float64 { return v.engine.Costs() }

// Step runs one generation until the limit is reached
func (v *TourView) Step() bool {
	if v.engine.Generation() >= v.limit {
		return false
	}
	v.engine.Run(1)
	return true
}

// Draw plots the best route through the city markers
func (v *TourView) Draw(c *Canvas, r Rect) {
	best, _ := v.engine.Best()

	c.Box(r, "Best route", styleFrame)
	area := r.Inner()
	b := BoundsOf([][]float64{v.xs}, [][]float64{v.ys})

	rx := make([]float64, len(best))
	ry := make([]float64, len(best))
	for i, city := range best {
		rx[i], ry[i] = v.xs[city], v.ys[city]
	}
	c.Series(area, b, rx, ry, '∙', styleBest)

	for i := range v.cities {
		x, y := Project(area, b, v.xs[i], v.ys[i])
		c.Set(x, y, '●', styleCity)
	}
	if len(best) > 0 {
		start := v.cities[best[0]].Name
		end := v.cities[best[len(best)-1]].Name
		c.Text(area.X+1, area.Y, fmt.Sprintf("%s → %s", start, end), styleText)
	}
}
