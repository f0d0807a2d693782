package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-whack/internal/config"
	"github.com/vovakirdan/neon-whack/internal/core"
	"github.com/vovakirdan/neon-whack/internal/whack"
)

// Options configures the terminal frontend.
type Options struct {
	Config        config.WhackConfig
	Width, Height int // Initial terminal size
	TickRate      int
	Rng           whack.Source
	OnGameOver    whack.GameOverFunc
	Logger        *log.Logger
	ScreenshotDir string       // Defaults to ~/.whack/screenshots
	Clock         func() int64 // Milliseconds; defaults to time since start
}

// Model is the Bubble Tea model for a Neon Whack session.
type Model struct {
	game     *whack.Game // Nil until the terminal is large enough
	cfg      config.WhackConfig
	opts     Options
	layout   Layout
	screen   *core.Screen
	keys     *KeyMapper
	events   []core.Event // Input collected since the last tick
	logger   *log.Logger
	clock    func() int64
	paused   int64 // Milliseconds spent behind the too-small notice
	pausedAt int64
	tooSmall bool
	quitting bool
}

// NewModel creates the model and starts the first session. A terminal too
// small for the grid is not an error: the model shows a notice until resized.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		start := time.Now()
		opts.Clock = func() int64 { return time.Since(start).Milliseconds() }
	}
	if opts.TickRate <= 0 {
		opts.TickRate = opts.Config.Timing.FPS
	}

	m := Model{
		cfg:    opts.Config,
		opts:   opts,
		layout: NewLayout(opts.Config, opts.Width, opts.Height),
		screen: core.NewScreen(opts.Width, opts.Height),
		keys:   NewKeyMapper(),
		logger: opts.Logger,
		clock:  opts.Clock,
	}
	if err := m.startGame(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startGame creates the game for the current layout. Nothing is paused
// before the first game, so it starts on the live clock.
func (m *Model) startGame() error {
	game, err := whack.NewGame(m.layout.Spec(), whack.RulesFromConfig(m.cfg), m.opts.Rng, m.clock()-m.paused)
	if errors.Is(err, whack.ErrGridTooSmall) {
		m.tooSmall = true
		return nil
	}
	if err != nil {
		return err
	}
	if m.opts.OnGameOver != nil {
		game.OnGameOver(m.opts.OnGameOver)
	}
	m.game = game
	m.tooSmall = false
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keys.MapMouse(msg, m.layout); ok {
			m.events = append(m.events, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case core.ActionNone:
	default:
		m.events = append(m.events, core.KeyEvent(action))
	}
	return m, nil
}

// handleResize rebuilds the grid for the new terminal size. The session
// carries over because the cell count does not change; while the terminal
// is too small the game clock stops.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.layout = NewLayout(m.cfg, msg.Width, msg.Height)
	// Pointer events were mapped with the old layout.
	m.events = nil

	if m.game == nil {
		if err := m.startGame(); err != nil {
			m.logger.Error("cannot start game", "error", err)
		}
		return m, nil
	}

	err := m.game.Resize(m.layout.Spec(), m.now())
	switch {
	case errors.Is(err, whack.ErrGridTooSmall):
		m.pause()
	case err != nil:
		m.logger.Error("resize failed", "error", err)
	default:
		m.resume()
	}
	return m, nil
}

// now returns the game clock, which stands still while paused.
func (m Model) now() int64 {
	if m.tooSmall {
		return m.pausedAt - m.paused
	}
	return m.clock() - m.paused
}

// pause stops the game clock behind the too-small notice.
func (m *Model) pause() {
	if m.tooSmall {
		return
	}
	m.pausedAt = m.clock()
	m.tooSmall = true
	m.logger.Debug("paused, terminal too small")
}

// resume restarts the game clock where it stopped.
func (m *Model) resume() {
	if !m.tooSmall {
		return
	}
	m.paused += m.clock() - m.pausedAt
	m.tooSmall = false
	m.logger.Debug("resumed")
}

// handleTick runs one game frame with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	events := m.events
	m.events = nil

	if m.game != nil && !m.tooSmall {
		wasOver := m.game.Session().Over()
		m.game.Update(m.now(), events)
		if wasOver && !m.game.Session().Over() {
			m.logger.Info("restart")
		}
	}

	return m, tickCmd(m.opts.TickRate)
}

// render draws the current state into the screen buffer.
func (m Model) render() {
	if m.tooSmall || m.game == nil {
		drawTooSmall(m.screen)
		return
	}
	drawFrame(m.screen, m.layout, m.game.Frame())
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".whack", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("whack_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	model.logger.Info("starting terminal frontend", "width", opts.Width, "height", opts.Height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks whack the mole
	)

	_, err = p.Run()
	return err
}
