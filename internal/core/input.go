package core

// Action represents a semantic key action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C, Esc - exit the program
	ActionScreenshot        // Ctrl+S - dump the terminal screen buffer
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the discrete input events delivered per frame.
type EventKind int

const (
	EventQuit    EventKind = iota // Window close or quit key
	EventKey                      // Key press mapped to an Action
	EventPointer                  // Pointer button press with a position
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is one discrete input event. Frontends collect events in arrival
// order and hand the whole slice to the game once per frame.
type Event struct {
	Kind   EventKind
	Action Action // Set for EventKey
	Button Button // Set for EventPointer
	X, Y   int    // Pointer position in grid space, set for EventPointer
}

// KeyEvent returns a key-press event for the given action.
func KeyEvent(a Action) Event {
	return Event{Kind: EventKey, Action: a}
}

// PressEvent returns a primary-button press at (x, y).
func PressEvent(x, y int) Event {
	return Event{Kind: EventPointer, Button: ButtonPrimary, X: x, Y: y}
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// HasAction reports whether any key event in events carries the action.
func HasAction(events []Event, a Action) bool {
	for _, ev := range events {
		if ev.Kind == EventKey && ev.Action == a {
			return true
		}
	}
	return false
}

// QuitRequested reports whether events contain a quit request.
func QuitRequested(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventQuit || (ev.Kind == EventKey && ev.Action == ActionQuit) {
			return true
		}
	}
	return false
}
