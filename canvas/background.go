package canvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"photo-board/theme"
)

// GridSpacing is the distance between backdrop dots.
const GridSpacing = 24.0

// DrawBackground fills the screen with the palette backdrop and a dot grid
// aligned to the container origin.
func DrawBackground(screen *ebiten.Image, vp Viewport, p theme.Palette) {
	screen.Fill(p.Background)

	startX := vp.OriginX - math.Floor(vp.OriginX/GridSpacing)*GridSpacing
	startY := vp.OriginY - math.Floor(vp.OriginY/GridSpacing)*GridSpacing
	for y := startY; y < vp.ScreenH; y += GridSpacing {
		if y < vp.OriginY {
			continue
		}
		for x := startX; x < vp.ScreenW; x += GridSpacing {
			vector.DrawFilledCircle(screen, float32(x), float32(y), 1.2, p.Grid, true)
		}
	}
}
