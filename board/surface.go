package board

//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks

// Flag names a transient visual state of a card.
type Flag string

const (
	FlagDragging Flag = "dragging"
	FlagDragOver Flag = "drag-over"
)

// Surface is the rendering target card state is projected onto.
type Surface interface {
	SetPosition(id CardID, x, y float64)
	SetRotation(id CardID, degrees float64)
	SetScale(id CardID, factor float64)
	SetZIndex(id CardID, z int)
	SetSize(id CardID, size Size)
	SetFlag(id CardID, flag Flag, on bool)
	SetContent(id CardID, content Content)
	Remove(id CardID)
}

// NopSurface discards every command.
type NopSurface struct{}

func (NopSurface) SetPosition(CardID, float64, float64) {}
func (NopSurface) SetRotation(CardID, float64)          {}
func (NopSurface) SetScale(CardID, float64)             {}
func (NopSurface) SetZIndex(CardID, int)                {}
func (NopSurface) SetSize(CardID, Size)                 {}
func (NopSurface) SetFlag(CardID, Flag, bool)           {}
func (NopSurface) SetContent(CardID, Content)           {}
func (NopSurface) Remove(CardID)                        {}
