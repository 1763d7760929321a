package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is one control on a toolbar or panel.
type Widget interface {
	Bounds() image.Rectangle
	SetBounds(r image.Rectangle)
	Press(x, y int)
	Drag(x, y int)
	Release()
	Draw(screen *ebiten.Image, s Style)
}

type Button struct {
	Label   string
	OnClick func()
	rect    image.Rectangle
}

func (b *Button) Bounds() image.Rectangle     { return b.rect }
func (b *Button) SetBounds(r image.Rectangle) { b.rect = r }
func (b *Button) Drag(int, int)               {}
func (b *Button) Release()                    {}

func (b *Button) Press(int, int) {
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Draw(screen *ebiten.Image, s Style) {
	r := b.rect
	fillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), s.Palette.Background)
	strokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), s.Palette.CardBorder)
	drawCentered(screen, s, b.Label, r)
}

// Toggle is an on/off switch bound to a value it does not own.
type Toggle struct {
	Label    string
	Value    func() bool
	OnChange func(on bool)
	rect     image.Rectangle
}

func (t *Toggle) Bounds() image.Rectangle     { return t.rect }
func (t *Toggle) SetBounds(r image.Rectangle) { t.rect = r }
func (t *Toggle) Drag(int, int)               {}
func (t *Toggle) Release()                    {}

func (t *Toggle) Press(int, int) {
	if t.OnChange != nil {
		t.OnChange(!t.Value())
	}
}

func (t *Toggle) Draw(screen *ebiten.Image, s Style) {
	r := t.rect
	const trackW, trackH = 34, 18
	tx := float32(r.Max.X - trackW)
	ty := float32(r.Min.Y + (r.Dy()-trackH)/2)
	track, knobX := s.Palette.CardBorder, tx+trackH/2
	if t.Value() {
		track, knobX = s.Palette.Accent, tx+trackW-trackH/2
	}
	fillRect(screen, tx, ty, trackW, trackH, track)
	vector.DrawFilledCircle(screen, knobX, ty+trackH/2, trackH/2-2, s.Palette.Card, true)
	DrawText(screen, s.face(), t.Label, r.Min.X, r.Min.Y+(r.Dy()-13)/2, s.Palette.Text)
}

// Slider edits a value in [Min, Max] by pressing or dragging along its track.
type Slider struct {
	Label    string
	Min, Max float64
	Value    func() float64
	OnChange func(v float64)
	rect     image.Rectangle
	dragging bool
}

func (sl *Slider) Bounds() image.Rectangle     { return sl.rect }
func (sl *Slider) SetBounds(r image.Rectangle) { sl.rect = r }

func (sl *Slider) Press(x, y int) {
	sl.dragging = true
	sl.set(x)
}

func (sl *Slider) Drag(x, _ int) {
	if sl.dragging {
		sl.set(x)
	}
}

func (sl *Slider) Release() { sl.dragging = false }

// ValueAt maps a screen x onto the slider range.
func (sl *Slider) ValueAt(x int) float64 {
	track := sl.track()
	if track.Dx() <= 0 {
		return sl.Min
	}
	f := float64(x-track.Min.X) / float64(track.Dx())
	f = math.Max(0, math.Min(1, f))
	return math.Round(sl.Min + f*(sl.Max-sl.Min))
}

func (sl *Slider) set(x int) {
	if sl.OnChange != nil {
		sl.OnChange(sl.ValueAt(x))
	}
}

func (sl *Slider) track() image.Rectangle {
	labelW := 90
	if sl.rect.Dx() < 2*labelW {
		labelW = sl.rect.Dx() / 3
	}
	return image.Rect(sl.rect.Min.X+labelW, sl.rect.Min.Y, sl.rect.Max.X-8, sl.rect.Max.Y)
}

func (sl *Slider) Draw(screen *ebiten.Image, s Style) {
	r, track := sl.rect, sl.track()
	v := sl.Value()
	DrawText(screen, s.face(), fmt.Sprintf("%s %d", sl.Label, int(v)), r.Min.X, r.Min.Y+(r.Dy()-13)/2, s.Palette.Text)

	cy := float32(r.Min.Y + r.Dy()/2)
	fillRect(screen, float32(track.Min.X), cy-2, float32(track.Dx()), 4, s.Palette.CardBorder)
	f := (v - sl.Min) / (sl.Max - sl.Min)
	kx := float32(track.Min.X) + float32(f)*float32(track.Dx())
	fillRect(screen, float32(track.Min.X), cy-2, kx-float32(track.Min.X), 4, s.Palette.Accent)
	vector.DrawFilledCircle(screen, kx, cy, 8, s.Palette.Accent, true)
}

func drawCentered(screen *ebiten.Image, s Style, label string, r image.Rectangle) {
	face := s.face()
	w := TextWidth(face, label)
	h := face.Metrics().Height.Ceil()
	DrawText(screen, face, label, r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-h)/2, s.Palette.Text)
}
