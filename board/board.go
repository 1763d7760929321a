package board

import (
	"context"
	"io"

	"photo-board/logging"
)

// File is a readable file handed to the board by a picker or a drop.
type File interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// Files hands file work off to the intake layer.
type Files interface {
	// Pick asks the user for a file to load into the card.
	Pick(id CardID)
	// Load decodes f and populates the card when it is an image.
	Load(id CardID, f File)
}

// Board applies gesture intents to the registry.
type Board struct {
	*Registry
	files Files
	ctx   context.Context
}

func New(ctx context.Context, reg *Registry, files Files) *Board {
	return &Board{
		Registry: reg,
		files:    files,
		ctx:      logging.WithComponent(ctx, "board"),
	}
}

// StartDrag lifts the card. Rotation is a separate property and is left as is.
func (b *Board) StartDrag(id CardID) {
	b.SetFlag(id, FlagDragging, true)
	b.SetScale(id, LiftScale)
}

func (b *Board) UpdatePosition(id CardID, p Point) {
	b.Move(id, p)
}

func (b *Board) EndDrag(id CardID) {
	b.SetScale(id, 1)
	b.SetFlag(id, FlagDragging, false)
}

func (b *Board) RotateBy(id CardID, degrees float64) {
	b.Rotate(id, degrees)
}

func (b *Board) DeleteCard(id CardID) {
	if b.Remove(id) {
		logging.FromContext(b.ctx).Debug().Stringer("card", id).Msg("card deleted")
	}
}

func (b *Board) OpenFileForCard(id CardID) {
	if _, ok := b.Get(id); !ok || b.files == nil {
		return
	}
	b.files.Pick(id)
}

func (b *Board) SetDragOver(id CardID, on bool) {
	b.SetFlag(id, FlagDragOver, on)
}

func (b *Board) LoadFile(id CardID, f File) {
	if _, ok := b.Get(id); !ok || b.files == nil {
		return
	}
	b.files.Load(id, f)
}

// Populate shows a decoded image on the card.
func (b *Board) Populate(id CardID, uri string) {
	if b.SetContent(id, Image(uri)) {
		logging.FromContext(b.ctx).Debug().Stringer("card", id).Str("uri", uri).Msg("card populated")
	}
}
