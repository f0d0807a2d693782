// Package whack implements the Neon Whack rules: a grid of squares where a
// colored mole appears, moves on a score-dependent interval, and must be
// clicked when blue and ignored when red.
package whack

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-whack/internal/config"
	"github.com/vovakirdan/neon-whack/internal/core"
)

// ErrGridTooSmall is returned when the surface cannot fit the requested grid.
var ErrGridTooSmall = errors.New("whack: surface too small for grid")

// GridSpec describes how to lay out the grid on a surface.
type GridSpec struct {
	Width, Height int // Surface size
	Cols, Rows    int
	Padding       int // Margin around the play area
	Inset         int // Slot size minus square side
}

// WindowGridSpec returns the grid layout for the desktop window.
func WindowGridSpec(cfg config.WhackConfig) GridSpec {
	return GridSpec{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Cols:    cfg.Grid.Cols,
		Rows:    cfg.Grid.Rows,
		Padding: cfg.Grid.Padding,
		Inset:   cfg.Grid.Inset,
	}
}

// Grid is an immutable, row-major sequence of equally sized squares.
type Grid struct {
	spec   GridSpec
	slotW  int
	slotH  int
	bounds core.Rect
	cells  []core.Rect
}

// BuildGrid lays out Cols x Rows squares inside the padded surface. Each
// square has side min(slotW, slotH) - Inset and is centered in its slot.
func BuildGrid(spec GridSpec) (Grid, error) {
	if spec.Cols <= 0 || spec.Rows <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d cells", ErrGridTooSmall, spec.Cols, spec.Rows)
	}

	playW := spec.Width - 2*spec.Padding
	playH := spec.Height - 2*spec.Padding
	slotW := playW / spec.Cols
	slotH := playH / spec.Rows
	side := min(slotW, slotH) - spec.Inset
	if playW <= 0 || playH <= 0 || side < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d surface, %dx%d cells, padding %d, inset %d",
			ErrGridTooSmall, spec.Width, spec.Height, spec.Cols, spec.Rows, spec.Padding, spec.Inset)
	}

	cells := make([]core.Rect, 0, spec.Cols*spec.Rows)
	for row := 0; row < spec.Rows; row++ {
		for col := 0; col < spec.Cols; col++ {
			slotX := spec.Padding + col*slotW
			slotY := spec.Padding + row*slotH
			cells = append(cells, core.NewRect(
				slotX+(slotW-side)/2,
				slotY+(slotH-side)/2,
				side, side,
			))
		}
	}

	return Grid{
		spec:   spec,
		slotW:  slotW,
		slotH:  slotH,
		bounds: core.NewRect(spec.Padding, spec.Padding, playW, playH),
		cells:  cells,
	}, nil
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return len(g.cells)
}

// Cell returns the i-th cell in row-major order.
func (g Grid) Cell(i int) core.Rect {
	return g.cells[i]
}

// Cells returns a copy of all cells in row-major order.
func (g Grid) Cells() []core.Rect {
	out := make([]core.Rect, len(g.cells))
	copy(out, g.cells)
	return out
}

// CellAt returns the index of the cell containing (x, y), or -1.
func (g Grid) CellAt(x, y int) int {
	for i, c := range g.cells {
		if c.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Bounds returns the padded play area.
func (g Grid) Bounds() core.Rect {
	return g.bounds
}

// Spec returns the layout the grid was built from.
func (g Grid) Spec() GridSpec {
	return g.spec
}

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.spec.Cols }

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.spec.Rows }

// VerticalLines returns the x positions of the slot boundaries, Cols+1 of them.
func (g Grid) VerticalLines() []int {
	xs := make([]int, g.spec.Cols+1)
	for c := range xs {
		xs[c] = g.spec.Padding + c*g.slotW
	}
	return xs
}

// HorizontalLines returns the y positions of the slot boundaries, Rows+1 of them.
func (g Grid) HorizontalLines() []int {
	ys := make([]int, g.spec.Rows+1)
	for r := range ys {
		ys[r] = g.spec.Padding + r*g.slotH
	}
	return ys
}
