package whack

import (
	"fmt"

	"github.com/vovakirdan/neon-whack/internal/core"
)

// Overlay and HUD text.
const (
	RuleLine       = "Blue: click | Red: ignore"
	GameOverTitle  = "Game Over"
	RestartPrompt  = "Press R to restart"
	HighScoreLabel = "New high score!"
)

// Frame is everything a frontend needs to draw one frame. Coordinates are
// in grid space. Frontends draw only what the Frame says.
type Frame struct {
	Bounds core.Rect // Padded play area
	Cols   int
	Rows   int
	VLines []int // Slot boundaries along x, Cols+1 of them
	HLines []int // Slot boundaries along y, Rows+1 of them
	Cells  []core.Rect

	Mole      core.Rect
	MoleColor core.Color

	Score      string
	Health     string
	Respawn    string
	Rule       string
	IntervalMS int64

	GameOver bool
	Overlay  []string // Empty while playing
	Status   string   // Set by the frontend after a game over
	Summary  string   // Hits and misses, set on game over
}

// Describe builds the frame for a session on a grid.
func Describe(g Grid, rules Rules, s Session) Frame {
	interval := rules.Curve.IntervalForScore(s.Score)
	f := Frame{
		Bounds:     g.Bounds(),
		Cols:       g.Cols(),
		Rows:       g.Rows(),
		VLines:     g.VerticalLines(),
		HLines:     g.HorizontalLines(),
		Cells:      g.Cells(),
		Mole:       s.ActiveCell(g),
		MoleColor:  MoleColor(s),
		Score:      fmt.Sprintf("Score: %d", s.Score),
		Health:     fmt.Sprintf("Health: %d", s.Health),
		Respawn:    fmt.Sprintf("Respawn: %.2fs", float64(interval)/1000),
		Rule:       RuleLine,
		IntervalMS: interval,
	}
	if s.Over() {
		f.GameOver = true
		f.Overlay = []string{GameOverTitle, RestartPrompt}
		f.Summary = fmt.Sprintf("Hits: %d  Misses: %d", s.Hits, s.Misses)
	}
	return f
}

// MoleColor returns the color of the mole, using the lighter variant once
// it has been hit.
func MoleColor(s Session) core.Color {
	switch {
	case s.Kind == KindGood && s.HitResolved:
		return core.ColorGoodHit
	case s.Kind == KindGood:
		return core.ColorGood
	default:
		return core.ColorBad
	}
}
