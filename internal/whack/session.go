package whack

import (
	"github.com/vovakirdan/neon-whack/internal/config"
	"github.com/vovakirdan/neon-whack/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session is the complete mutable state of one game. It is a plain value:
// Engine.Update returns a new Session instead of mutating its argument.
type Session struct {
	Score       int
	Health      int
	Phase       Phase
	Cell        int // Index into the grid
	Kind        Kind
	HitResolved bool  // Current mole was clicked
	LastMove    int64 // Milliseconds of the last relocation

	Hits   int
	Misses int
}

// ActiveCell returns the rectangle holding the mole.
func (s Session) ActiveCell(g Grid) core.Rect {
	return g.Cell(s.Cell)
}

// Over reports whether the session has ended.
func (s Session) Over() bool {
	return s.Phase == PhaseGameOver
}

// Rules are the fixed parameters of a session.
type Rules struct {
	StartHealth int
	Curve       Curve
}

// RulesFromConfig builds the rules from the gameplay and timing constants.
func RulesFromConfig(cfg config.WhackConfig) Rules {
	return Rules{
		StartHealth: cfg.Gameplay.StartHealth,
		Curve:       CurveFromConfig(cfg.Timing),
	}
}

// Engine applies the rules to sessions on a fixed grid.
type Engine struct {
	grid  Grid
	rules Rules
	rng   Source
}

// NewEngine creates an engine. The grid must have at least one cell.
func NewEngine(g Grid, rules Rules, rng Source) *Engine {
	return &Engine{grid: g, rules: rules, rng: rng}
}

// Grid returns the grid the engine plays on.
func (e *Engine) Grid() Grid { return e.grid }

// Rules returns the session rules.
func (e *Engine) Rules() Rules { return e.rules }

// NewSession starts a fresh session with the mole on a random cell.
func (e *Engine) NewSession(now int64) Session {
	return Session{
		Score:    0,
		Health:   e.rules.StartHealth,
		Phase:    PhasePlaying,
		Cell:     e.rng.Intn(e.grid.Len()),
		Kind:     PickKind(e.rng),
		LastMove: now,
	}
}

// Update advances the session by one frame. Clicks are resolved first,
// then the relocation timer, then restart. Restart only applies to a
// session that was already over when the frame began.
func (e *Engine) Update(s Session, now int64, events []core.Event) Session {
	wasOver := s.Phase == PhaseGameOver

	s = e.applyClicks(s, events)
	s = e.tick(s, now)

	if wasOver && core.HasAction(events, core.ActionRestart) {
		return e.NewSession(now)
	}
	return s
}

func (e *Engine) applyClicks(s Session, events []core.Event) Session {
	for _, ev := range events {
		if s.Phase != PhasePlaying || s.HitResolved {
			break
		}
		if ev.Kind != core.EventPointer || ev.Button != core.ButtonPrimary {
			continue
		}
		if e.grid.CellAt(ev.X, ev.Y) != s.Cell {
			continue
		}
		// Clicking a bad mole is a no-op.
		if s.Kind == KindGood {
			s.Score++
			s.Hits++
			s.HitResolved = true
		}
	}
	return s
}

func (e *Engine) tick(s Session, now int64) Session {
	if s.Phase != PhasePlaying {
		return s
	}
	if now-s.LastMove < e.rules.Curve.IntervalForScore(s.Score) {
		return s
	}

	if s.Kind == KindGood && !s.HitResolved {
		s.Health--
		s.Misses++
		if s.Health <= 0 {
			s.Health = 0
			s.Phase = PhaseGameOver
			return s
		}
	}

	s.Cell = PickNext(e.grid, s.Cell, e.rng)
	s.Kind = PickKind(e.rng)
	s.HitResolved = false
	s.LastMove = now
	return s
}
