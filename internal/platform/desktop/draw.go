package desktop

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/neon-whack/internal/core"
	"github.com/vovakirdan/neon-whack/internal/whack"
)

// Text sizes and placement in pixels.
const (
	hudFontSize   = 14
	titleFontSize = 32
	hudMargin     = 20
	hudTop        = 18
	ruleBottom    = 44

	gridLineWidth = 2
	gridGlowWidth = 8
	gridGlowAlpha = 60
	moleGlow      = 10
	moleGlowAlpha = 70
)

// faces holds the fonts used by the window.
type faces struct {
	hud   text.Face
	title text.Face
	small text.Face
}

func loadFaces() (faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return faces{}, fmt.Errorf("desktop: load font: %w", err)
	}
	return faces{
		hud:   &text.GoTextFace{Source: src, Size: hudFontSize},
		title: &text.GoTextFace{Source: src, Size: titleFontSize},
		small: text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

// newBackground renders the vertical gradient once.
func newBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	top, bottom := core.ColorBackground.RGBA(), core.ColorBackgroundLow.RGBA()
	for y := range h {
		c := lerpColor(top, bottom, float64(y)/float64(max(h-1, 1)))
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 1, c, false)
	}
	return img
}

// lerpColor blends from a to b, t in [0, 1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// withAlpha returns c with a straight (non-premultiplied) alpha.
func withAlpha(c core.Color, a uint8) color.NRGBA {
	v := c.RGBA()
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: a}
}

// drawFrame draws one frame in window pixels.
func drawFrame(dst *ebiten.Image, bg *ebiten.Image, ff faces, f whack.Frame) {
	dst.DrawImage(bg, nil)
	drawGrid(dst, f)

	glow := f.Mole.Inflate(moleGlow)
	vector.DrawFilledRect(dst, float32(glow.X), float32(glow.Y), float32(glow.W), float32(glow.H),
		withAlpha(f.MoleColor, moleGlowAlpha), true)
	vector.DrawFilledRect(dst, float32(f.Mole.X), float32(f.Mole.Y), float32(f.Mole.W), float32(f.Mole.H),
		f.MoleColor.RGBA(), false)

	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	drawText(dst, f.Score, ff.hud, hudMargin, hudTop, text.AlignStart, core.ColorText)
	drawText(dst, f.Respawn, ff.hud, w/2, hudTop, text.AlignCenter, core.ColorText)
	drawText(dst, f.Health, ff.hud, w-hudMargin, hudTop, text.AlignEnd, core.ColorText)
	drawText(dst, f.Rule, ff.hud, w/2, h-ruleBottom, text.AlignCenter, core.ColorText)

	if f.GameOver {
		drawOverlay(dst, ff, f)
	}
}

// drawGrid draws the slot lattice with a soft glow under each line.
func drawGrid(dst *ebiten.Image, f whack.Frame) {
	if len(f.VLines) == 0 || len(f.HLines) == 0 {
		return
	}
	top, bottom := float32(f.HLines[0]), float32(f.HLines[len(f.HLines)-1])
	left, right := float32(f.VLines[0]), float32(f.VLines[len(f.VLines)-1])

	glow := withAlpha(core.ColorGrid, gridGlowAlpha)
	line := core.ColorGrid.RGBA()
	for _, pass := range []struct {
		width float32
		clr   color.Color
	}{
		{gridGlowWidth, glow},
		{gridLineWidth, line},
	} {
		for _, x := range f.VLines {
			vector.StrokeLine(dst, float32(x), top, float32(x), bottom, pass.width, pass.clr, true)
		}
		for _, y := range f.HLines {
			vector.StrokeLine(dst, left, float32(y), right, float32(y), pass.width, pass.clr, true)
		}
	}
}

func drawOverlay(dst *ebiten.Image, ff faces, f whack.Frame) {
	w := float64(dst.Bounds().Dx())
	cy := float64(dst.Bounds().Dy()) / 2

	if len(f.Overlay) > 0 {
		drawText(dst, f.Overlay[0], ff.title, w/2, cy-50, text.AlignCenter, core.ColorGameOver)
	}
	if len(f.Overlay) > 1 {
		drawText(dst, f.Overlay[1], ff.hud, w/2, cy+5, text.AlignCenter, core.ColorText)
	}
	if f.Summary != "" {
		drawText(dst, f.Summary, ff.small, w/2, cy+35, text.AlignCenter, core.ColorDim)
	}
	if f.Status != "" {
		drawText(dst, f.Status, ff.hud, w/2, cy+60, text.AlignCenter, core.ColorGood)
	}
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}
