package whack

import (
	"fmt"

	"github.com/vovakirdan/neon-whack/internal/core"
)

// GameOverFunc is called once when a session ends. The returned string is
// shown as the overlay status line.
type GameOverFunc func(s Session) string

// Game owns an engine and its current session. Frontends drive it once per
// frame with the clock and the collected input events.
type Game struct {
	engine   *Engine
	rng      Source
	session  Session
	frame    Frame
	status   string
	reported bool
	onOver   GameOverFunc
}

// NewGame builds the grid, validates the rules and starts the first session.
func NewGame(spec GridSpec, rules Rules, rng Source, now int64) (*Game, error) {
	if err := rules.Curve.Validate(); err != nil {
		return nil, err
	}
	if rules.StartHealth <= 0 {
		return nil, fmt.Errorf("whack: start health must be positive, got %d", rules.StartHealth)
	}

	grid, err := BuildGrid(spec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		engine: NewEngine(grid, rules, rng),
		rng:    rng,
	}
	g.session = g.engine.NewSession(now)
	g.refresh()
	return g, nil
}

// OnGameOver sets the hook called once per finished session.
func (g *Game) OnGameOver(fn GameOverFunc) {
	g.onOver = fn
}

// Update advances the game by one frame and returns the frame to draw.
func (g *Game) Update(now int64, events []core.Event) Frame {
	prev := g.session
	g.session = g.engine.Update(g.session, now, events)

	if prev.Over() && !g.session.Over() {
		g.status = ""
		g.reported = false
	}
	if g.session.Over() && !g.reported {
		g.reported = true
		if g.onOver != nil {
			g.status = g.onOver(g.session)
		}
	}

	g.refresh()
	return g.frame
}

// Resize rebuilds the grid for a new surface. The session carries over
// when the cell count is unchanged and restarts otherwise. On error the
// game is left untouched.
func (g *Game) Resize(spec GridSpec, now int64) error {
	grid, err := BuildGrid(spec)
	if err != nil {
		return err
	}

	sameLayout := grid.Len() == g.engine.Grid().Len()
	g.engine = NewEngine(grid, g.engine.Rules(), g.rng)
	if !sameLayout {
		g.session = g.engine.NewSession(now)
		g.status = ""
		g.reported = false
	}
	g.refresh()
	return nil
}

// Frame returns the most recent frame.
func (g *Game) Frame() Frame {
	return g.frame
}

// Session returns the current session.
func (g *Game) Session() Session {
	return g.session
}

// Grid returns the current grid.
func (g *Game) Grid() Grid {
	return g.engine.Grid()
}

func (g *Game) refresh() {
	g.frame = Describe(g.engine.Grid(), g.engine.Rules(), g.session)
	g.frame.Status = g.status
}
