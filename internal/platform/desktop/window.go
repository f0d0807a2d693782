// Package desktop implements the Ebitengine window frontend. Window pixels
// are grid space: the grid is built for the configured window size and
// Layout keeps that size fixed, letting Ebitengine scale the surface.
package desktop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/neon-whack/internal/config"
	"github.com/vovakirdan/neon-whack/internal/core"
	"github.com/vovakirdan/neon-whack/internal/whack"
)

// Options configures the desktop frontend.
type Options struct {
	Config     config.WhackConfig
	Rng        whack.Source
	OnGameOver whack.GameOverFunc
	Logger     *log.Logger
}

// Window implements ebiten.Game for a Neon Whack session.
type Window struct {
	game       *whack.Game
	width      int
	height     int
	faces      faces
	background *ebiten.Image
	start      time.Time
	logger     *log.Logger
}

// NewWindow builds the grid for the configured window size and starts
// the first session.
func NewWindow(opts Options) (*Window, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ff, err := loadFaces()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	game, err := whack.NewGame(whack.WindowGridSpec(opts.Config), whack.RulesFromConfig(opts.Config), opts.Rng, 0)
	if err != nil {
		return nil, err
	}
	if opts.OnGameOver != nil {
		game.OnGameOver(opts.OnGameOver)
	}

	return &Window{
		game:   game,
		width:  opts.Config.Window.Width,
		height: opts.Config.Window.Height,
		faces:  ff,
		start:  start,
		logger: opts.Logger,
	}, nil
}

// Update runs one game frame with the input of this tick.
func (w *Window) Update() error {
	events := pollInput().events()
	if core.QuitRequested(events) {
		return ebiten.Termination
	}

	wasOver := w.game.Session().Over()
	w.game.Update(time.Since(w.start).Milliseconds(), events)
	if wasOver && !w.game.Session().Over() {
		w.logger.Info("restart")
	}
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.background == nil {
		w.background = newBackground(w.width, w.height)
	}
	drawFrame(screen, w.background, w.faces, w.game.Frame())
}

// Layout keeps the logical screen at the configured window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	win, err := NewWindow(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(win.width, win.height)
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetTPS(opts.Config.Timing.FPS)

	win.logger.Info("window frontend started", "width", win.width, "height", win.height)
	return ebiten.RunGame(win)
}
