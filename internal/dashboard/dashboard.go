// Package dashboard renders a running engine in the terminal: the problem panel,
// the best-fitness history and a status line, refreshed on a fixed interval.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/stat"
)

const defaultInterval = 200 * time.Millisecond

// Dashboard steps a view on a ticker and redraws it. It owns the view's engine
// for as long as Run is executing.
type Dashboard struct {
	screen   tcell.Screen
	view     View
	interval time.Duration
	chime    *Chime

	best    float64
	running bool
}

// New creates a dashboard over an initialized screen
func New(screen tcell.Screen, view View, interval time.Duration) *Dashboard {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Dashboard{
		screen:   screen,
		view:     view,
		interval: interval,
		best:     math.Inf(1),
		running:  true,
	}
}

// SetChime enables the improvement tone
func (d *Dashboard) SetChime(c *Chime) {
	d.chime = c
}

// Tick advances the view one generation and reports whether the best fitness improved
func (d *Dashboard) Tick() bool {
	if !d.running {
		return false
	}
	if !d.view.Step() {
		d.running = false
		return false
	}

	h := d.view.History()
	if len(h) == 0 {
		return false
	}
	latest := h[len(h)-1]
	if latest >= d.best {
		return false
	}
	first := math.IsInf(d.best, 1)
	d.best = latest
	if !first {
		d.chime.Play()
	}
	return true
}

// Running reports whether the view still steps
func (d *Dashboard) Running() bool {
	return d.running
}

// Draw renders the whole screen
func (d *Dashboard) Draw() {
	d.screen.Clear()
	c := NewCanvas(d.screen)
	w, h := c.Size()
	if w < 20 || h < 10 {
		c.Text(0, 0, "terminal too small", styleText)
		d.screen.Show()
		return
	}

	c.Text(1, 0, d.status(), styleText)

	mainH := (h - 2) * 2 / 3
	main := Rect{X: 0, Y: 1, W: w, H: mainH}
	hist := Rect{X: 0, Y: 1 + mainH, W: w, H: h - 2 - mainH}

	d.view.Draw(c, main)
	drawHistory(c, hist, d.view.History())

	help := "q/Esc quit"
	if !d.running {
		help = "finished · " + help
	}
	c.Text(1, h-1, help, styleFrame)
	d.screen.Show()
}

func (d *Dashboard) status() string {
	s := fmt.Sprintf("%s | gen %d", d.view.Title(), d.view.Generation())
	if costs := d.view.Costs(); len(costs) > 1 {
		mean, std := stat.MeanStdDev(costs, nil)
		s += fmt.Sprintf(" | mean %.2f ± %.2f", mean, std)
	}
	if h := d.view.History(); len(h) > 0 {
		s += fmt.Sprintf(" | fitness %.2f", h[len(h)-1])
	}
	return s
}

func drawHistory(c *Canvas, r Rect, history []float64) {
	c.Box(r, "Fitness vs generation", styleFrame)
	if len(history) == 0 {
		return
	}
	gens := make([]float64, len(history))
	for i := range gens {
		gens[i] = float64(i + 1)
	}
	area := r.Inner()
	b := BoundsOf([][]float64{gens}, [][]float64{history})
	c.Series(area, b, gens, history, '•', styleBest)

	// annotate the latest value next to its point
	x, y := Project(area, b, gens[len(gens)-1], history[len(history)-1])
	label := fmt.Sprintf(" %.2f", history[len(history)-1])
	if x+len(label) > area.X+area.W {
		x = area.X + area.W - len(label)
	}
	c.Text(x, max(area.Y, y-1), label, styleText)
}

// Run steps and draws until ctx is done or the user quits.
// Quitting returns nil; cancellation returns the context error.
func (d *Dashboard) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if quit(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				d.screen.Sync()
				d.Draw()
			}

		case <-ticker.C:
			if d.running {
				d.Tick()
				d.Draw()
			}
		}
	}
}

func quit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
