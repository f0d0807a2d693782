package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-whack/internal/core"
)

// pointerPress is one mouse button press in window pixels.
type pointerPress struct {
	button core.Button
	x, y   int
}

// frameInput is the input observed during one Update call.
type frameInput struct {
	presses []pointerPress
	restart bool
	quit    bool
}

var mouseButtons = []struct {
	mouse  ebiten.MouseButton
	button core.Button
}{
	{ebiten.MouseButtonLeft, core.ButtonPrimary},
	{ebiten.MouseButtonRight, core.ButtonSecondary},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
}

// pollInput reads the presses that happened since the previous tick.
func pollInput() frameInput {
	var in frameInput

	x, y := ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			in.presses = append(in.presses, pointerPress{button: b.button, x: x, y: y})
		}
	}

	in.restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}

// events converts the frame input into core events. Window pixels are
// grid space, so positions pass through unchanged.
func (in frameInput) events() []core.Event {
	var events []core.Event
	if in.quit {
		events = append(events, core.QuitEvent())
	}
	for _, p := range in.presses {
		events = append(events, core.Event{Kind: core.EventPointer, Button: p.button, X: p.x, Y: p.y})
	}
	if in.restart {
		events = append(events, core.KeyEvent(core.ActionRestart))
	}
	return events
}
