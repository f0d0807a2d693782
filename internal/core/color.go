package core

import "image/color"

// Color is a semantic color for a drawable element. Frontends decide how
// to realise it: truecolor hex in the terminal, RGBA in the desktop window.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGood          // Blue mole, must be clicked
	ColorGoodHit       // Blue mole after a successful click
	ColorBad           // Red mole, must be ignored
	ColorGrid
	ColorText
	ColorGameOver
	ColorDim
	ColorBackground    // Top of the background gradient
	ColorBackgroundLow // Bottom of the background gradient
)

var palette = map[Color]color.RGBA{
	ColorDefault:       {R: 245, G: 245, B: 245, A: 255},
	ColorGood:          {R: 35, G: 250, B: 230, A: 255},
	ColorGoodHit:       {R: 160, G: 255, B: 245, A: 255},
	ColorBad:           {R: 255, G: 70, B: 120, A: 255},
	ColorGrid:          {R: 95, G: 225, B: 255, A: 255},
	ColorText:          {R: 245, G: 245, B: 245, A: 255},
	ColorGameOver:      {R: 255, G: 125, B: 150, A: 255},
	ColorDim:           {R: 110, G: 130, B: 150, A: 255},
	ColorBackground:    {R: 8, G: 18, B: 45, A: 255},
	ColorBackgroundLow: {R: 3, G: 42, B: 64, A: 255},
}

// RGBA returns the opaque RGBA value of the color.
// Unknown colors fall back to the default foreground.
func (c Color) RGBA() color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[ColorDefault]
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	v := c.RGBA()
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, ch := range []uint8{v.R, v.G, v.B} {
		b[1+2*i] = digits[ch>>4]
		b[2+2*i] = digits[ch&0x0f]
	}
	return string(b)
}
