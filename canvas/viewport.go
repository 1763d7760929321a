package canvas

import (
	"photo-board/board"
	"photo-board/geometry"
)

// Viewport places the cards container on screen. The container starts below
// the header and fills the rest of the window.
type Viewport struct {
	OriginX, OriginY float64 // Screen position of the container's top-left
	Width, Height    float64 // Container size
	ScreenW, ScreenH float64
}

// Fit lays the container out in a screen of the given size, leaving headerH
// pixels for the header and pad pixels around the container.
func Fit(screenW, screenH int, headerH, pad float64) Viewport {
	w := max(0, float64(screenW)-2*pad)
	h := max(0, float64(screenH)-headerH-2*pad)
	return Viewport{
		OriginX: pad,
		OriginY: headerH + pad,
		Width:   w,
		Height:  h,
		ScreenW: float64(screenW),
		ScreenH: float64(screenH),
	}
}

func (v Viewport) ScreenToBoard(sx, sy float64) board.Point {
	return board.Point{X: sx - v.OriginX, Y: sy - v.OriginY}
}

func (v Viewport) BoardToScreen(p board.Point) (float64, float64) {
	return p.X + v.OriginX, p.Y + v.OriginY
}

// Container is the container size as the layout controller sees it.
func (v Viewport) Container() geometry.Bounds {
	return geometry.Bounds{Width: v.Width, Height: v.Height}
}

// Screen is the viewport size used for breakpoint decisions.
func (v Viewport) Screen() geometry.Bounds {
	return geometry.Bounds{Width: v.ScreenW, Height: v.ScreenH}
}
