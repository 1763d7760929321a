package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"photo-board/board"
	"photo-board/board/mocks"
)

var portrait = board.CardSize(200, false)

func place(x, y, rot float64, z int) board.Placement {
	return board.Placement{Position: board.Point{X: x, Y: y}, Rotation: rot, ZIndex: z}
}

func TestRegistry_CreateProjectsOntoSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)

	id := board.CardID(1)
	gomock.InOrder(
		surface.EXPECT().SetSize(id, portrait),
		surface.EXPECT().SetPosition(id, 40.0, 60.0),
		surface.EXPECT().SetRotation(id, -12.5),
		surface.EXPECT().SetScale(id, 1.0),
		surface.EXPECT().SetZIndex(id, 7),
		surface.EXPECT().SetContent(id, board.Empty()),
	)

	reg := board.NewRegistry(surface, portrait)
	card := reg.Create(place(40, 60, -12.5, 7))

	assert.Equal(t, id, card.ID)
	assert.True(t, card.Content.IsEmpty())
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_RemoveNotifiesSurfaceAndListeners(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	surface.EXPECT().SetSize(gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().SetPosition(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().SetRotation(gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().SetScale(gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().SetZIndex(gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().SetContent(gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().Remove(board.CardID(1)).Times(1)

	reg := board.NewRegistry(surface, portrait)
	card := reg.Create(place(0, 0, 0, 1))

	var removed []board.CardID
	reg.OnRemove(func(id board.CardID) { removed = append(removed, id) })

	assert.True(t, reg.Remove(card.ID))
	assert.False(t, reg.Remove(card.ID))
	assert.Equal(t, []board.CardID{card.ID}, removed)
	_, ok := reg.Get(card.ID)
	assert.False(t, ok)
}

func TestRegistry_IDsAreNeverReused(t *testing.T) {
	reg := board.NewRegistry(nil, portrait)
	a := reg.Create(place(0, 0, 0, 1))
	b := reg.Create(place(0, 0, 0, 1))
	reg.Clear()
	c := reg.Create(place(0, 0, 0, 1))

	assert.Less(t, int(a.ID), int(b.ID))
	assert.Less(t, int(b.ID), int(c.ID))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_ContentNeverRevertsToEmpty(t *testing.T) {
	reg := board.NewRegistry(nil, portrait)
	card := reg.Create(place(0, 0, 0, 1))

	assert.True(t, reg.SetContent(card.ID, board.Image("file:///a.png")))
	assert.False(t, reg.SetContent(card.ID, board.Empty()))
	assert.Equal(t, board.Image("file:///a.png"), card.Content)

	assert.True(t, reg.SetContent(card.ID, board.Image("file:///b.png")))
	assert.Equal(t, "file:///b.png", card.Content.URI)
}

func TestRegistry_StackAndCardAt(t *testing.T) {
	reg := board.NewRegistry(nil, portrait)
	low := reg.Create(place(0, 0, 0, 50))
	high := reg.Create(place(100, 0, 0, 90))
	tie := reg.Create(place(0, 0, 0, 50))

	stack := reg.Stack()
	require.Len(t, stack, 3)
	assert.Equal(t, []board.CardID{low.ID, tie.ID, high.ID}, []board.CardID{stack[0].ID, stack[1].ID, stack[2].ID})

	// high overlaps both others at x=150
	got, ok := reg.CardAt(board.Point{X: 150, Y: 100})
	require.True(t, ok)
	assert.Equal(t, high.ID, got.ID)

	// equal z: the later card is on top
	got, ok = reg.CardAt(board.Point{X: 50, Y: 100})
	require.True(t, ok)
	assert.Equal(t, tie.ID, got.ID)

	_, ok = reg.CardAt(board.Point{X: 1000, Y: 1000})
	assert.False(t, ok)
}

func TestCard_RotationAwareGeometry(t *testing.T) {
	card := &board.Card{
		Position: board.Point{X: 0, Y: 0},
		Size:     board.Size{Width: 100, Height: 200},
		Rotation: 90,
		Scale:    1,
	}

	b := card.Bounds()
	assert.InDelta(t, -50, b.X, 1e-9)
	assert.InDelta(t, 50, b.Y, 1e-9)
	assert.InDelta(t, 200, b.Width, 1e-9)
	assert.InDelta(t, 100, b.Height, 1e-9)

	// (140, 100) is inside the rotated card but outside the unrotated one
	assert.True(t, card.Contains(board.Point{X: 140, Y: 100}))
	assert.False(t, card.Contains(board.Point{X: 10, Y: 10}))
}

func TestRegistry_ResizeAll(t *testing.T) {
	reg := board.NewRegistry(nil, portrait)
	a := reg.Create(place(0, 0, 0, 1))

	landscape := board.CardSize(200, true)
	reg.ResizeAll(landscape)
	b := reg.Create(place(0, 0, 0, 1))

	assert.Equal(t, board.Size{Width: 300, Height: 200}, a.Size)
	assert.Equal(t, landscape, b.Size)
}

type recordingFiles struct {
	picked []board.CardID
	loaded []string
}

func (f *recordingFiles) Pick(id board.CardID) { f.picked = append(f.picked, id) }
func (f *recordingFiles) Load(id board.CardID, file board.File) {
	f.loaded = append(f.loaded, file.Name())
}

func TestBoard_DragAffordanceKeepsRotation(t *testing.T) {
	reg := board.NewRegistry(nil, portrait)
	b := board.New(context.Background(), reg, &recordingFiles{})
	card := reg.Create(place(10, 10, 17, 3))

	b.StartDrag(card.ID)
	assert.True(t, card.Dragging)
	assert.Equal(t, board.LiftScale, card.Scale)
	assert.Equal(t, 17.0, card.Rotation)

	b.UpdatePosition(card.ID, board.Point{X: 99, Y: 42})
	b.EndDrag(card.ID)
	assert.False(t, card.Dragging)
	assert.Equal(t, 1.0, card.Scale)
	assert.Equal(t, 17.0, card.Rotation)
	assert.Equal(t, board.Point{X: 99, Y: 42}, card.Position)
}

func TestBoard_FileIntentsSkipMissingCards(t *testing.T) {
	files := &recordingFiles{}
	reg := board.NewRegistry(nil, portrait)
	b := board.New(context.Background(), reg, files)
	card := reg.Create(place(0, 0, 0, 1))

	b.OpenFileForCard(card.ID)
	b.OpenFileForCard(card.ID + 100)
	assert.Equal(t, []board.CardID{card.ID}, files.picked)

	b.Populate(card.ID, "file:///x.jpg")
	assert.Equal(t, board.Image("file:///x.jpg"), card.Content)

	b.DeleteCard(card.ID)
	b.Populate(card.ID, "file:///y.jpg")
	assert.Equal(t, 0, reg.Len())
}
