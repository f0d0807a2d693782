package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorGood})
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorGood {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	a := Cell{Rune: 'A'}
	s.SetCell(-1, 0, a)
	s.SetCell(100, 0, a)
	s.SetCell(0, -1, a)
	s.SetCell(0, 100, a)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorText)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorText {
			t.Errorf("expected %q/text at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello", ColorText)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextAligned(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorText)
	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("DrawTextCentered row = %q", s.Row(2))
	}

	s.DrawTextRight(3, 1, "end", ColorText)
	if !strings.HasSuffix(s.Row(3), "end ") {
		t.Errorf("DrawTextRight row = %q", s.Row(3))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorBad)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorBad {
				t.Errorf("expected '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("resize should clear content, row 0 = %q", s.Row(0))
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("negative width should clamp to 0, got %d", s.Width())
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorGood.Hex(); got != "#23fae6" {
		t.Errorf("ColorGood.Hex() = %q", got)
	}
	if got := ColorBad.Hex(); got != "#ff4678" {
		t.Errorf("ColorBad.Hex() = %q", got)
	}
	if Color(250).RGBA() != ColorDefault.RGBA() {
		t.Error("unknown color should fall back to default")
	}
}

func TestQuitRequested(t *testing.T) {
	if QuitRequested([]Event{PressEvent(1, 1), KeyEvent(ActionRestart)}) {
		t.Error("press and restart are not quit requests")
	}
	if !QuitRequested([]Event{PressEvent(1, 1), QuitEvent()}) {
		t.Error("quit event should be detected")
	}
	if !QuitRequested([]Event{KeyEvent(ActionQuit)}) {
		t.Error("quit key should be detected")
	}
	if !HasAction([]Event{KeyEvent(ActionRestart)}, ActionRestart) {
		t.Error("HasAction should find restart")
	}
}
