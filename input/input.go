package input

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"photo-board/board"
	"photo-board/canvas"
	"photo-board/gesture"
	"photo-board/intake"
	"photo-board/logging"
)

// Cards is the hit-testing view of the registry.
type Cards interface {
	CardAt(p board.Point) (*board.Card, bool)
	Get(id board.CardID) (*board.Card, bool)
}

// Sink receives gesture events. gesture.Machine implements it.
type Sink interface {
	Dispatch(ev gesture.Event)
}

// Overlay is UI drawn above the cards. A press it claims never reaches a card.
type Overlay interface {
	Blocks(x, y int) bool
}

// Translator turns raw ebiten input into gesture events.
type Translator struct {
	ctx     context.Context
	cards   Cards
	sink    Sink
	overlay Overlay

	// OnKey receives shortcut keys. It reports whether the key was used.
	OnKey func(r rune) bool

	viewport canvas.Viewport

	cursor     [2]int
	haveCursor bool
	focused    bool

	// Card the current mouse press started on, for leave detection.
	pressed    board.CardID
	hasPressed bool
	left       bool

	touch    ebiten.TouchID
	touching bool
	touchPos [2]int
}

func NewTranslator(ctx context.Context, cards Cards, sink Sink, overlay Overlay) *Translator {
	return &Translator{
		ctx:     logging.WithComponent(ctx, "input"),
		cards:   cards,
		sink:    sink,
		overlay: overlay,
		focused: true,
	}
}

// SetViewport updates the screen to board mapping.
func (t *Translator) SetViewport(vp canvas.Viewport) {
	t.viewport = vp
}

func (t *Translator) Update(s State) {
	t.handleFocus(s)
	t.handleKeys(s)
	t.handleDrop(s)
	t.handleMouse(s)
	t.handleTouch(s)
}

func (t *Translator) handleFocus(s State) {
	focused := s.IsFocused()
	if t.focused && !focused {
		t.sink.Dispatch(gesture.Event{Kind: gesture.EventBlur})
		t.hasPressed = false
		t.touching = false
	}
	t.focused = focused
}

func (t *Translator) handleKeys(s State) {
	if t.OnKey != nil && s.IsKeyJustPressed(ebiten.KeyH) {
		t.OnKey('h')
	}
}

// handleDrop loads the first dropped file into the card under the cursor.
func (t *Translator) handleDrop(s State) {
	fsys := s.DroppedFiles()
	if fsys == nil {
		return
	}
	log := logging.FromContext(t.ctx)
	files, err := intake.FilesIn(fsys)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read dropped files")
		return
	}
	if len(files) == 0 {
		return
	}
	x, y := s.CursorPosition()
	card, ok := t.cards.CardAt(t.toBoard(x, y))
	if !ok {
		log.Debug().Int("files", len(files)).Msg("drop outside any card")
		return
	}
	t.sink.Dispatch(gesture.Drop(card.ID, files[0]))
}

func (t *Translator) handleMouse(s State) {
	x, y := s.CursorPosition()
	p := t.toBoard(x, y)

	// The cursor catches up before any press, so a press never sees a move
	// to the spot it started on.
	if moved := !t.haveCursor || t.cursor != [2]int{x, y}; moved {
		if t.haveCursor {
			t.sink.Dispatch(gesture.Move(p, gesture.SourceMouse))
			t.checkLeave(p)
		}
		t.cursor, t.haveCursor = [2]int{x, y}, true
	}

	if s.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !t.blocked(x, y) {
		if card, ok := t.cards.CardAt(p); ok {
			t.sink.Dispatch(gesture.Press(card.ID, card.Position, p, gesture.ButtonLeft, gesture.SourceMouse))
			t.pressed, t.hasPressed, t.left = card.ID, true, false
		}
	}
	if s.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) && !t.blocked(x, y) {
		if card, ok := t.cards.CardAt(p); ok {
			t.sink.Dispatch(gesture.Press(card.ID, card.Position, p, gesture.ButtonMiddle, gesture.SourceMouse))
		}
	}
	if s.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && !t.blocked(x, y) {
		if card, ok := t.cards.CardAt(p); ok {
			t.sink.Dispatch(gesture.ContextMenu(card.ID))
		}
	}

	if _, yoff := s.Wheel(); yoff != 0 && !t.blocked(x, y) {
		if card, ok := t.cards.CardAt(p); ok {
			t.sink.Dispatch(gesture.Wheel(card.ID, -yoff))
		}
	}

	if s.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		t.sink.Dispatch(gesture.Release(gesture.SourceMouse))
		t.hasPressed = false
	}
}

// checkLeave reports the pointer leaving the pressed card once per press.
func (t *Translator) checkLeave(p board.Point) {
	if !t.hasPressed || t.left {
		return
	}
	card, ok := t.cards.Get(t.pressed)
	if ok && card.Contains(p) {
		return
	}
	t.left = true
	t.sink.Dispatch(gesture.Leave(t.pressed))
}

// handleTouch follows the first touch point. Further touches are ignored
// while it is down.
func (t *Translator) handleTouch(s State) {
	if !t.touching {
		for _, id := range s.JustPressedTouchIDs() {
			x, y := s.TouchPosition(id)
			if t.blocked(x, y) {
				continue
			}
			p := t.toBoard(x, y)
			card, ok := t.cards.CardAt(p)
			if !ok {
				continue
			}
			t.sink.Dispatch(gesture.Press(card.ID, card.Position, p, gesture.ButtonLeft, gesture.SourceTouch))
			t.touch, t.touching, t.touchPos = id, true, [2]int{x, y}
			break
		}
		return
	}

	if s.IsTouchJustReleased(t.touch) {
		t.sink.Dispatch(gesture.Release(gesture.SourceTouch))
		t.touching = false
		return
	}
	x, y := s.TouchPosition(t.touch)
	if [2]int{x, y} != t.touchPos {
		t.touchPos = [2]int{x, y}
		t.sink.Dispatch(gesture.Move(t.toBoard(x, y), gesture.SourceTouch))
	}
}

func (t *Translator) toBoard(x, y int) board.Point {
	return t.viewport.ScreenToBoard(float64(x), float64(y))
}

func (t *Translator) blocked(x, y int) bool {
	return t.overlay != nil && t.overlay.Blocks(x, y)
}
