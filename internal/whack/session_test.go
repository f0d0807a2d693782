package whack

import (
	"testing"

	"github.com/vovakirdan/neon-whack/internal/core"
)

func defaultRules() Rules {
	return Rules{StartHealth: 5, Curve: defaultCurve()}
}

func newTestEngine(t *testing.T, vals ...int) *Engine {
	t.Helper()
	return NewEngine(mustGrid(t, defaultSpec()), defaultRules(), &fakeSource{vals: vals})
}

// playing returns a fresh session with the mole on cell with the given kind.
func playing(cell int, kind Kind) Session {
	return Session{Health: 5, Phase: PhasePlaying, Cell: cell, Kind: kind}
}

func clickCell(e *Engine, cell int) core.Event {
	x, y := e.Grid().Cell(cell).Center()
	return core.PressEvent(x, y)
}

func TestNewSession(t *testing.T) {
	e := newTestEngine(t, 7, 1)
	s := e.NewSession(1234)

	if s.Score != 0 || s.Health != 5 || s.Phase != PhasePlaying {
		t.Errorf("NewSession = %+v, expected score 0, health 5, playing", s)
	}
	if s.Cell != 7 || s.Kind != KindBad {
		t.Errorf("NewSession placed %s mole on cell %d, expected bad on 7", s.Kind, s.Cell)
	}
	if s.HitResolved || s.LastMove != 1234 {
		t.Errorf("NewSession HitResolved=%v LastMove=%d", s.HitResolved, s.LastMove)
	}
}

func TestUpdateClickGood(t *testing.T) {
	e := newTestEngine(t)
	s := playing(3, KindGood)

	s = e.Update(s, 100, []core.Event{clickCell(e, 3)})
	if s.Score != 1 || !s.HitResolved || s.Hits != 1 {
		t.Fatalf("after hit: score=%d hit=%v hits=%d, expected 1 true 1", s.Score, s.HitResolved, s.Hits)
	}
	if s.Health != 5 {
		t.Errorf("hit should not change health, got %d", s.Health)
	}

	// Second click before relocation is ignored.
	s = e.Update(s, 200, []core.Event{clickCell(e, 3)})
	if s.Score != 1 || s.Hits != 1 {
		t.Errorf("second click changed score to %d", s.Score)
	}
}

func TestUpdateDoubleClickSameFrame(t *testing.T) {
	e := newTestEngine(t)
	s := playing(3, KindGood)

	s = e.Update(s, 100, []core.Event{clickCell(e, 3), clickCell(e, 3)})
	if s.Score != 1 {
		t.Errorf("two clicks in one frame scored %d, expected 1", s.Score)
	}
}

func TestUpdateClickBadIsNoop(t *testing.T) {
	e := newTestEngine(t)
	before := playing(3, KindBad)

	after := e.Update(before, 100, []core.Event{clickCell(e, 3)})
	if after != before {
		t.Errorf("clicking a bad mole changed the session:\n%+v\n%+v", before, after)
	}
}

func TestUpdateIgnoredPresses(t *testing.T) {
	e := newTestEngine(t)
	active := e.Grid().Cell(3)
	x, y := active.Center()

	tests := []struct {
		name string
		ev   core.Event
	}{
		{"other cell", clickCell(e, 4)},
		{"just right of cell", core.PressEvent(active.Right(), y)},
		{"just below cell", core.PressEvent(x, active.Bottom())},
		{"gap left of cell", core.PressEvent(active.X-1, y)},
		{"padding above grid", core.PressEvent(x, 10)},
		{"secondary button", core.Event{Kind: core.EventPointer, Button: core.ButtonSecondary, X: x, Y: y}},
		{"key event", core.KeyEvent(core.ActionRestart)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := playing(3, KindGood)
			after := e.Update(before, 100, []core.Event{tc.ev})
			if after != before {
				t.Errorf("session changed:\n%+v\n%+v", before, after)
			}
		})
	}
}

func TestUpdateClickEdgesInclusive(t *testing.T) {
	e := newTestEngine(t)
	active := e.Grid().Cell(3)

	s := e.Update(playing(3, KindGood), 100, []core.Event{core.PressEvent(active.X, active.Y)})
	if s.Score != 1 {
		t.Error("top-left corner of the cell should count as a hit")
	}
	s = e.Update(playing(3, KindGood), 100, []core.Event{core.PressEvent(active.Right()-1, active.Bottom()-1)})
	if s.Score != 1 {
		t.Error("bottom-right pixel of the cell should count as a hit")
	}
}

func TestUpdateMissedGoodMole(t *testing.T) {
	// PickNext draws 4 from 11 (skipping current 3 gives 5), PickKind draws 1.
	e := newTestEngine(t, 4, 1)
	s := playing(3, KindGood)

	s = e.Update(s, 999, nil)
	if s.Health != 5 || s.Cell != 3 {
		t.Fatalf("mole moved before the interval elapsed: %+v", s)
	}

	s = e.Update(s, 1000, nil)
	if s.Health != 4 || s.Misses != 1 {
		t.Errorf("health=%d misses=%d, expected 4 and 1", s.Health, s.Misses)
	}
	if s.Cell != 5 || s.Kind != KindBad {
		t.Errorf("relocated to %s on %d, expected bad on 5", s.Kind, s.Cell)
	}
	if s.HitResolved || s.LastMove != 1000 || s.Phase != PhasePlaying {
		t.Errorf("after relocation: %+v", s)
	}
}

func TestUpdateNoPenaltyCases(t *testing.T) {
	tests := []struct {
		name string
		s    Session
	}{
		{"bad mole ignored", playing(3, KindBad)},
		{"good mole hit", func() Session {
			s := playing(3, KindGood)
			s.HitResolved = true
			return s
		}()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, 0, 0)
			s := e.Update(tc.s, 1000, nil)
			if s.Health != 5 || s.Misses != 0 {
				t.Errorf("health=%d misses=%d, expected no penalty", s.Health, s.Misses)
			}
			if s.Cell == 3 || s.HitResolved || s.LastMove != 1000 {
				t.Errorf("mole should relocate: %+v", s)
			}
		})
	}
}

func TestUpdateHealthReachesZero(t *testing.T) {
	e := newTestEngine(t)
	s := playing(6, KindGood)
	s.Health = 1
	s.Score = 4

	s = e.Update(s, 1000, nil)
	if s.Health != 0 || s.Phase != PhaseGameOver {
		t.Fatalf("health=%d phase=%s, expected 0 and game over", s.Health, s.Phase)
	}
	if s.Cell != 6 || s.LastMove != 0 {
		t.Errorf("mole should stay frozen on cell 6, got %+v", s)
	}

	// Nothing changes until restart.
	frozen := s
	s = e.Update(s, 5000, []core.Event{clickCell(e, 6)})
	s = e.Update(s, 9000, nil)
	if s != frozen {
		t.Errorf("game over session changed:\n%+v\n%+v", frozen, s)
	}
}

func TestUpdateRestart(t *testing.T) {
	e := newTestEngine(t, 2, 0)
	over := playing(6, KindGood)
	over.Health = 0
	over.Score = 12
	over.Phase = PhaseGameOver

	s := e.Update(over, 7000, []core.Event{core.KeyEvent(core.ActionRestart)})
	if s.Score != 0 || s.Health != 5 || s.Phase != PhasePlaying {
		t.Errorf("after restart: %+v, expected score 0 health 5 playing", s)
	}
	if s.Cell != 2 || s.Kind != KindGood || s.LastMove != 7000 || s.Hits != 0 || s.Misses != 0 {
		t.Errorf("after restart: %+v", s)
	}
}

func TestUpdateRestartIgnoredWhilePlaying(t *testing.T) {
	e := newTestEngine(t)
	before := playing(3, KindGood)
	before.Score = 9

	after := e.Update(before, 100, []core.Event{core.KeyEvent(core.ActionRestart)})
	if after != before {
		t.Errorf("restart while playing changed the session:\n%+v\n%+v", before, after)
	}
}

func TestUpdateRestartSameFrameAsGameOver(t *testing.T) {
	e := newTestEngine(t)
	s := playing(3, KindGood)
	s.Health = 1

	s = e.Update(s, 1000, []core.Event{core.KeyEvent(core.ActionRestart)})
	if s.Phase != PhaseGameOver {
		t.Errorf("restart in the frame the game ended should be ignored, phase=%s", s.Phase)
	}
}

func TestUpdateClickBeforeTickUsesNewScore(t *testing.T) {
	e := newTestEngine(t, 0, 0)
	s := playing(3, KindGood)
	s.Score = 34 // Interval 611 before the hit, 600 after.

	s = e.Update(s, 600, []core.Event{clickCell(e, 3)})
	if s.Score != 35 {
		t.Fatalf("score = %d, expected 35", s.Score)
	}
	if s.Cell == 3 || s.LastMove != 600 {
		t.Errorf("mole should relocate on the shorter interval, got %+v", s)
	}
	if s.Health != 5 {
		t.Errorf("hit mole should not cost health, got %d", s.Health)
	}
}

func TestUpdateFullGame(t *testing.T) {
	// Every draw is 0: the mole is always good and nobody clicks.
	e := newTestEngine(t)
	s := e.NewSession(0)

	var now int64
	for s.Phase == PhasePlaying {
		now += 1000
		s = e.Update(s, now, nil)
		if now > 10_000 {
			t.Fatal("game did not end")
		}
	}
	if now != 5000 || s.Misses != 5 || s.Health != 0 {
		t.Errorf("game over at %d with misses=%d health=%d, expected 5000, 5, 0", now, s.Misses, s.Health)
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "playing" || PhaseGameOver.String() != "game over" {
		t.Error("unexpected phase names")
	}
}
