package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-whack/internal/config"
	"github.com/vovakirdan/neon-whack/internal/whack"
)

// zeroSource always draws 0: the mole starts good on cell 0.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

type testClock struct{ now int64 }

func (c *testClock) ms() int64 { return c.now }

func newTestModel(t *testing.T, w, h int, clock *testClock, onOver whack.GameOverFunc) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:        config.DefaultWhackConfig(),
		Width:         w,
		Height:        h,
		TickRate:      60,
		Rng:           zeroSource{},
		OnGameOver:    onOver,
		ScreenshotDir: t.TempDir(),
		Clock:         clock.ms,
	})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func pressMole(m Model) tea.MouseMsg {
	scr := m.layout.ToScreen(m.game.Frame().Mole)
	x, y := scr.Center()
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModelClickScores(t *testing.T) {
	clock := &testClock{}
	m := newTestModel(t, 80, 24, clock, nil)

	m, _ = send(t, m, pressMole(m))
	if m.game.Session().Score != 0 {
		t.Fatal("clicks should wait for the next tick")
	}

	clock.now = 100
	m, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if s := m.game.Session(); s.Score != 1 || !s.HitResolved {
		t.Errorf("after click: %+v", s)
	}
	if len(m.events) != 0 {
		t.Errorf("events should be drained, got %d", len(m.events))
	}
}

func TestModelGameOverAndRestart(t *testing.T) {
	clock := &testClock{}
	calls := 0
	m := newTestModel(t, 80, 24, clock, func(s whack.Session) string {
		calls++
		return whack.HighScoreLabel
	})

	for i := 1; i <= 5; i++ {
		clock.now = int64(i) * 1000
		m, _ = send(t, m, TickMsg{})
	}
	if !m.game.Session().Over() || calls != 1 {
		t.Fatalf("expected game over with one hook call, got over=%v calls=%d", m.game.Session().Over(), calls)
	}

	m.render()
	screen := m.screen.String()
	for _, want := range []string{"Game Over", "Press R to restart", "Hits: 0  Misses: 5", "New high score!", "Health: 0"} {
		if !strings.Contains(screen, want) {
			t.Errorf("screen missing %q:\n%s", want, screen)
		}
	}

	m, _ = send(t, m, runeKey('r'))
	clock.now = 6000
	m, _ = send(t, m, TickMsg{})
	if s := m.game.Session(); s.Over() || s.Health != 5 || s.LastMove != 6000 {
		t.Errorf("after restart: %+v", s)
	}
	if m.game.Frame().Status != "" {
		t.Errorf("status should clear on restart, got %q", m.game.Frame().Status)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 80, 24, &testClock{}, nil)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelTooSmall(t *testing.T) {
	clock := &testClock{}
	m := newTestModel(t, 30, 6, clock, nil)
	if !m.tooSmall || m.game != nil {
		t.Fatal("30x6 terminal should be too small")
	}
	m.render()
	if !strings.Contains(m.screen.String(), "Terminal too small") {
		t.Error("too small notice missing")
	}

	// Ticks are harmless while too small.
	m, _ = send(t, m, TickMsg{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.tooSmall || m.game == nil {
		t.Fatal("game should start once the terminal is large enough")
	}

	// Shrinking keeps the session and shows the notice again.
	m, _ = send(t, m, pressMole(m))
	clock.now = 50
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 6})
	if !m.tooSmall {
		t.Error("shrinking should show the notice")
	}
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.tooSmall || m.game.Session().Score != 1 {
		t.Errorf("growing back should resume the session, tooSmall=%v score=%d", m.tooSmall, m.game.Session().Score)
	}
}

func TestModelPauseStopsTimer(t *testing.T) {
	clock := &testClock{}
	m := newTestModel(t, 80, 24, clock, nil)
	if m.game.Session().Kind != whack.KindGood {
		t.Fatal("zeroSource should start with a good mole")
	}

	clock.now = 400
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 6})
	clock.now = 5400
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = send(t, m, TickMsg{})

	if s := m.game.Session(); s.Health != 5 || s.Misses != 0 || s.LastMove != 0 {
		t.Fatalf("resume should not charge the pause: %+v", s)
	}

	// 400ms ran before the pause; the mole moves 600ms after the resume.
	clock.now = 5999
	m, _ = send(t, m, TickMsg{})
	if m.game.Session().Health != 5 {
		t.Fatal("interval should not have elapsed yet")
	}
	clock.now = 6000
	m, _ = send(t, m, TickMsg{})
	if s := m.game.Session(); s.Health != 4 || s.LastMove != 1000 {
		t.Errorf("after the full interval: %+v", s)
	}
}

func TestModelStartsAfterTooSmallLaunch(t *testing.T) {
	clock := &testClock{}
	m := newTestModel(t, 30, 6, clock, nil)

	clock.now = 3000
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = send(t, m, TickMsg{})
	if s := m.game.Session(); s.Health != 5 || s.LastMove != 3000 {
		t.Errorf("first session should start on the live clock: %+v", s)
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, 80, 24, &testClock{}, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "whack_") {
		t.Fatalf("expected one whack_*.txt screenshot, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Errorf("screenshot should contain the HUD:\n%s", data)
	}
}
