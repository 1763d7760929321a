package input

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State is the per-tick input the translator reads. Ebiten implements it
// against the running game.
type State interface {
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
	Wheel() (xoff, yoff float64)
	JustPressedTouchIDs() []ebiten.TouchID
	IsTouchJustReleased(id ebiten.TouchID) bool
	TouchPosition(id ebiten.TouchID) (int, int)
	IsKeyJustPressed(k ebiten.Key) bool
	IsFocused() bool
	DroppedFiles() fs.FS
}

// Ebiten reads input from the running game.
type Ebiten struct{}

func (Ebiten) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (Ebiten) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (Ebiten) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (Ebiten) Wheel() (float64, float64) { return ebiten.Wheel() }

func (Ebiten) JustPressedTouchIDs() []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(nil)
}

func (Ebiten) IsTouchJustReleased(id ebiten.TouchID) bool {
	return inpututil.IsTouchJustReleased(id)
}

func (Ebiten) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

func (Ebiten) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (Ebiten) IsFocused() bool { return ebiten.IsFocused() }

func (Ebiten) DroppedFiles() fs.FS { return ebiten.DroppedFiles() }
