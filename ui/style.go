package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"photo-board/theme"
)

// Style is what widgets draw with.
type Style struct {
	Palette theme.Palette
	Face    font.Face
}

func (s Style) face() font.Face {
	if s.Face == nil {
		return basicfont.Face7x13
	}
	return s.Face
}

// DrawText draws multiline text with its first line's top at y.
func DrawText(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight, ascent = 16, 12
	}
	for i, line := range splitLines(s) {
		text.Draw(screen, line, face, x, y+ascent+i*lineHeight, clr)
	}
}

// TextWidth is the advance of the widest line of s.
func TextWidth(face font.Face, s string) int {
	if face == nil {
		face = basicfont.Face7x13
	}
	w := 0
	for _, line := range splitLines(s) {
		w = max(w, font.MeasureString(face, line).Ceil())
	}
	return w
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

func fillRect(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
}
