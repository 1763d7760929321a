package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const helpText = `Click a card to pick an image
Drop an image file onto a card
Drag to move, scroll to rotate
Double-tap to rotate 15 degrees
Long-press or right-click to delete
Press H to hide the header`

// HelpPanel lists the gestures in the bottom-right corner.
type HelpPanel struct {
	Visible bool
	rect    image.Rectangle
}

func (h *HelpPanel) Toggle() {
	h.Visible = !h.Visible
}

func (h *HelpPanel) Bounds() image.Rectangle {
	return h.rect
}

func (h *HelpPanel) Layout(screenW, screenH int, s Style) {
	const pad, margin = 10, 12
	face := s.face()
	w := TextWidth(face, helpText) + 2*pad
	lines := len(splitLines(helpText))
	ht := lines*face.Metrics().Height.Ceil() + 2*pad
	h.rect = image.Rect(screenW-w-margin, screenH-ht-margin, screenW-margin, screenH-margin)
}

func (h *HelpPanel) Draw(screen *ebiten.Image, s Style) {
	if !h.Visible {
		return
	}
	r := h.rect
	fillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), s.Palette.Chrome)
	strokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), s.Palette.CardBorder)
	DrawText(screen, s.face(), helpText, r.Min.X+10, r.Min.Y+10, s.Palette.Text)
}
