package tui

import (
	"github.com/vovakirdan/neon-whack/internal/config"
	"github.com/vovakirdan/neon-whack/internal/core"
	"github.com/vovakirdan/neon-whack/internal/whack"
)

// Rows reserved above and below the grid.
const (
	hudRows    = 1
	footerRows = 1
)

// Layout maps between terminal cells and the grid's logical space.
// Terminal cells are about twice as tall as wide, so one logical unit is
// Aspect columns wide and one row tall.
type Layout struct {
	ScreenW, ScreenH int
	Aspect           int
	Top              int // First screen row of the grid space
	spec             whack.GridSpec
}

// NewLayout computes the logical grid surface for a terminal of the given size.
func NewLayout(cfg config.WhackConfig, screenW, screenH int) Layout {
	aspect := max(cfg.Terminal.CellAspect, 1)
	return Layout{
		ScreenW: screenW,
		ScreenH: screenH,
		Aspect:  aspect,
		Top:     hudRows,
		spec: whack.GridSpec{
			Width:   max(screenW/aspect, 0),
			Height:  max(screenH-hudRows-footerRows, 0),
			Cols:    cfg.Grid.Cols,
			Rows:    cfg.Grid.Rows,
			Padding: cfg.Terminal.Padding,
			Inset:   cfg.Terminal.Inset,
		},
	}
}

// Spec returns the grid layout in logical units.
func (l Layout) Spec() whack.GridSpec {
	return l.spec
}

// ToGrid maps a terminal cell to logical grid coordinates.
func (l Layout) ToGrid(cx, cy int) (int, int) {
	return cx / l.Aspect, cy - l.Top
}

// Col returns the first terminal column of logical x.
func (l Layout) Col(x int) int {
	return x * l.Aspect
}

// Row returns the terminal row of logical y.
func (l Layout) Row(y int) int {
	return y + l.Top
}

// ToScreen maps a logical rectangle to the terminal cells it covers.
func (l Layout) ToScreen(r core.Rect) core.Rect {
	return core.NewRect(l.Col(r.X), l.Row(r.Y), r.W*l.Aspect, r.H)
}
