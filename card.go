package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"photo-board/board"
	"photo-board/canvas"
	"photo-board/theme"
	"photo-board/ui"
)

var pixel *ebiten.Image

// whitePixel is stretched, rotated and tinted to draw every card quad.
func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// cardPose is a card as it appears on screen: centre, scaled size and
// rotation in radians.
type cardPose struct {
	cx, cy float64
	w, h   float64
	rad    float64
}

func poseOf(c *board.Card, vp canvas.Viewport) cardPose {
	cx, cy := vp.BoardToScreen(c.Center())
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	return cardPose{
		cx:  cx,
		cy:  cy,
		w:   c.Size.Width * scale,
		h:   c.Size.Height * scale,
		rad: c.Rotation * math.Pi / 180,
	}
}

// geoM places a w x h local rectangle centred on (lx, ly) in card space.
func (p cardPose) geoM(w, h, lx, ly float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-w/2+lx, -h/2+ly)
	m.Rotate(p.rad)
	m.Translate(p.cx, p.cy)
	return m
}

func fillQuad(dst *ebiten.Image, p cardPose, w, h, lx, ly float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Concat(p.geoM(w, h, lx, ly))
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(whitePixel(), op)
}

func (g *Game) drawCard(screen *ebiten.Image, c *board.Card, palette theme.Palette) {
	p := poseOf(c, g.vp)

	shadow := ShadowOffset
	if c.Dragging {
		shadow = ShadowLift
	}
	fillQuad(screen, p, p.w, p.h, 0, shadow, palette.Shadow)
	if c.DragOver {
		fillQuad(screen, p, p.w+2*DragOverOutline, p.h+2*DragOverOutline, 0, 0, palette.DragOver)
	}
	fillQuad(screen, p, p.w+2*BorderThickness, p.h+2*BorderThickness, 0, 0, palette.CardBorder)

	if c.Content.Kind == board.ContentImage {
		if tex := g.sprites.Texture(c.Content.URI); tex != nil {
			drawCover(screen, p, tex)
			return
		}
	}
	fillQuad(screen, p, p.w, p.h, 0, 0, palette.Card)
	g.drawPlaceholder(screen, p, palette)
}

// drawCover fills the card with the centre of tex, cropped to the card's
// aspect ratio.
func drawCover(screen *ebiten.Image, p cardPose, tex *ebiten.Image) {
	b := tex.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 || p.w == 0 || p.h == 0 {
		return
	}
	cw, ch := sw, sh
	if sw/sh > p.w/p.h {
		cw = sh * p.w / p.h
	} else {
		ch = sw * p.h / p.w
	}
	x0 := b.Min.X + int((sw-cw)/2)
	y0 := b.Min.Y + int((sh-ch)/2)
	crop := image.Rect(x0, y0, x0+int(cw), y0+int(ch))
	sub := tex.SubImage(crop).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.w/float64(crop.Dx()), p.h/float64(crop.Dy()))
	op.GeoM.Concat(p.geoM(p.w, p.h, 0, 0))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, op)
}

// drawPlaceholder draws a picture-frame glyph with the upload hint below it.
func (g *Game) drawPlaceholder(screen *ebiten.Image, p cardPose, palette theme.Palette) {
	side := math.Min(p.w, p.h) * 0.3
	iconY := -side / 3
	line := math.Max(2, side/16)
	fillQuad(screen, p, side, side*0.8, 0, iconY, palette.Placeholder)
	fillQuad(screen, p, side-2*line, side*0.8-2*line, 0, iconY, palette.Card)
	fillQuad(screen, p, side*0.16, side*0.16, side*0.2, iconY-side*0.15, palette.Placeholder)
	fillQuad(screen, p, side*0.6, side*0.2, -side*0.05, iconY+side*0.2, palette.Placeholder)

	face := g.face
	tw := float64(ui.TextWidth(face, PlaceholderText))
	if tw > p.w-8 {
		return
	}
	ascent := float64(face.Metrics().Ascent.Ceil())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-tw/2, iconY+side*0.4+8+ascent)
	op.GeoM.Rotate(p.rad)
	op.GeoM.Translate(p.cx, p.cy)
	op.ColorScale.ScaleWithColor(palette.Placeholder)
	text.DrawWithOptions(screen, PlaceholderText, face, op)
}
