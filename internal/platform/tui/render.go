package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-whack/internal/core"
	"github.com/vovakirdan/neon-whack/internal/whack"
)

// moleRune fills the active square.
const moleRune = '█'

// colorStyles maps core.Color to truecolor lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	colors := []core.Color{
		core.ColorDefault, core.ColorGood, core.ColorGoodHit, core.ColorBad,
		core.ColorGrid, core.ColorText, core.ColorGameOver, core.ColorDim,
	}
	styles := make(map[core.Color]lipgloss.Style, len(colors))
	for _, c := range colors {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	styles[core.ColorGameOver] = styles[core.ColorGameOver].Bold(true)
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawFrame draws a game frame into the screen buffer.
func drawFrame(dst *core.Screen, l Layout, f whack.Frame) {
	dst.Clear()

	dst.DrawText(1, 0, f.Score, core.ColorText)
	dst.DrawTextCentered(0, f.Respawn, core.ColorText)
	dst.DrawTextRight(0, 1, f.Health, core.ColorText)

	drawLattice(dst, l, f.VLines, f.HLines)
	dst.DrawRect(l.ToScreen(f.Mole), moleRune, f.MoleColor)

	dst.DrawTextCentered(dst.Height()-1, f.Rule, core.ColorDim)

	if f.GameOver {
		drawOverlay(dst, f)
	}
}

// drawLattice draws the slot boundaries with box-drawing junctions.
func drawLattice(dst *core.Screen, l Layout, xs, ys []int) {
	if len(xs) < 2 || len(ys) < 2 {
		return
	}

	left, right := l.Col(xs[0]), l.Col(xs[len(xs)-1])
	top, bottom := l.Row(ys[0]), l.Row(ys[len(ys)-1])

	for _, y := range ys {
		dst.DrawHLine(left, l.Row(y), right-left+1, '─', core.ColorGrid)
	}
	for _, x := range xs {
		dst.DrawVLine(l.Col(x), top, bottom-top+1, '│', core.ColorGrid)
	}

	for j, y := range ys {
		for i, x := range xs {
			dst.SetCell(l.Col(x), l.Row(y), core.Cell{
				Rune:  junction(i == 0, i == len(xs)-1, j == 0, j == len(ys)-1),
				Color: core.ColorGrid,
			})
		}
	}
}

func junction(first, last, top, bottom bool) rune {
	switch {
	case top && first:
		return '┌'
	case top && last:
		return '┐'
	case bottom && first:
		return '└'
	case bottom && last:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case first:
		return '├'
	case last:
		return '┤'
	default:
		return '┼'
	}
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawOverlay draws the game over text over the middle of the screen.
func drawOverlay(dst *core.Screen, f whack.Frame) {
	var lines []overlayLine
	for i, text := range f.Overlay {
		color := core.ColorText
		if i == 0 {
			color = core.ColorGameOver
		}
		lines = append(lines, overlayLine{text, color})
	}
	if f.Summary != "" {
		lines = append(lines, overlayLine{f.Summary, core.ColorDim})
	}
	if f.Status != "" {
		lines = append(lines, overlayLine{f.Status, core.ColorGood})
	}

	y := dst.Height()/2 - len(lines)/2
	for i, line := range lines {
		dst.DrawTextCentered(y+i, " "+line.text+" ", line.color)
	}
}

// drawTooSmall replaces the game with a resize notice.
func drawTooSmall(dst *core.Screen) {
	dst.Clear()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorGameOver)
	dst.DrawTextCentered(y, "Resize the window or press q", core.ColorText)
}
