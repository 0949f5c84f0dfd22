package dashboard

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evoopt/internal/curve"
	"evoopt/internal/tour"
)

// grid records what the canvas draws
type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]rune, h)}
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(" ", w))
	}
	return g
}

func (g *grid) SetContent(x, y int, mainc rune, _ []rune, _ tcell.Style) {
	g.cells[y][x] = mainc
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) row(y int) string { return string(g.cells[y]) }

func (g *grid) count(ch rune) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == ch {
				n++
			}
		}
	}
	return n
}

func TestCanvas_ClipsOffSurface(t *testing.T) {
	g := newGrid(5, 3)
	c := NewCanvas(g)
	c.Text(3, 1, "abcdef", tcell.StyleDefault)
	c.Set(-1, 0, 'x', tcell.StyleDefault)
	c.Set(0, 7, 'x', tcell.StyleDefault)
	assert.Equal(t, "   ab", g.row(1))
	assert.Zero(t, g.count('x'))
}

func TestCanvas_Box(t *testing.T) {
	g := newGrid(6, 3)
	NewCanvas(g).Box(Rect{W: 6, H: 3}, "", tcell.StyleDefault)
	assert.Equal(t, "┌────┐", g.row(0))
	assert.Equal(t, "│    │", g.row(1))
	assert.Equal(t, "└────┘", g.row(2))
}

func TestCanvas_Line(t *testing.T) {
	g := newGrid(5, 5)
	NewCanvas(g).Line(0, 0, 4, 4, '*', tcell.StyleDefault)
	for i := 0; i < 5; i++ {
		assert.Equal(t, '*', g.cells[i][i])
	}
	assert.Equal(t, 5, g.count('*'))
}

func TestProject(t *testing.T) {
	area := Rect{X: 1, Y: 1, W: 11, H: 6}
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5}

	x, y := Project(area, b, 0, 0)
	assert.Equal(t, 1, x)
	assert.Equal(t, 6, y)

	x, y = Project(area, b, 10, 5)
	assert.Equal(t, 11, x)
	assert.Equal(t, 1, y)

	// flat data sits in the middle
	x, y = Project(area, Bounds{MinX: 2, MaxX: 2, MinY: 3, MaxY: 3}, 2, 3)
	assert.Equal(t, 6, x)
	assert.Equal(t, 4, y)
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([][]float64{{1, 5}, {-2}}, [][]float64{{3}, {9, 0}})
	assert.Equal(t, Bounds{MinX: -2, MaxX: 5, MinY: 0, MaxY: 9}, b)
}

func TestTourView_DrawsEveryCity(t *testing.T) {
	e, err := tour.NewEngine(tour.Cities, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	v := NewTourView(e, 3)

	for v.Step() {
	}
	assert.Equal(t, 3, v.Generation())

	g := newGrid(120, 40)
	v.Draw(NewCanvas(g), Rect{W: 120, H: 40})
	// a few cities share a cell at this resolution, so at least most are visible
	assert.GreaterOrEqual(t, g.count('●'), 10)
	assert.Contains(t, g.row(0), "Best route")
}

func TestCurveView_Draw(t *testing.T) {
	e, err := curve.NewEngine(25, true, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	v := NewCurveView(e)
	require.True(t, v.Step())

	g := newGrid(100, 30)
	v.Draw(NewCanvas(g), Rect{W: 100, H: 30})
	assert.Positive(t, g.count('·'))
	assert.Contains(t, g.row(1), "best [")
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(100, 40)
	t.Cleanup(s.Fini)
	return s
}

func TestDashboard_TickStopsAtTourLimit(t *testing.T) {
	e, err := tour.NewEngine(tour.Cities, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	d := New(newSimScreen(t), NewTourView(e, 2), time.Millisecond)

	assert.True(t, d.Tick(), "first generation always sets the best")
	d.Tick()
	assert.True(t, d.Running())
	assert.False(t, d.Tick())
	assert.False(t, d.Running())
	assert.Equal(t, 2, e.Generation())

	d.Draw()
}

func TestDashboard_RunUntilCancelled(t *testing.T) {
	e, err := curve.NewEngine(25, true, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	d := New(newSimScreen(t), NewCurveView(e), 2*time.Millisecond)
	d.SetChime(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err = d.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, e.Generation())
}
