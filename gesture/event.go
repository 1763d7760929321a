package gesture

import (
	"time"

	"photo-board/board"
)

type EventKind int

const (
	EventPress EventKind = iota
	EventMove
	EventRelease
	EventLongPressTimeout
	EventLeave
	EventCancel
	EventBlur
	EventCardRemoved
	EventWheel
	EventContextMenu
	// Drag hover events come only from hosts that report files while they
	// are dragged over the window. The ebiten host sees files on drop only,
	// so it never sends them.
	EventDragOver
	EventDragLeave
	EventDrop
)

var eventNames = map[EventKind]string{
	EventPress:            "press",
	EventMove:             "move",
	EventRelease:          "release",
	EventLongPressTimeout: "long-press-timeout",
	EventLeave:            "leave",
	EventCancel:           "cancel",
	EventBlur:             "blur",
	EventCardRemoved:      "card-removed",
	EventWheel:            "wheel",
	EventContextMenu:      "context-menu",
	EventDragOver:         "drag-over",
	EventDragLeave:        "drag-leave",
	EventDrop:             "drop",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one low-level input fed to the state machine.
type Event struct {
	Kind    EventKind
	Card    board.CardID
	HasCard bool
	Pointer board.Point
	// CardPosition is where the card is rendered when it is pressed.
	CardPosition board.Point
	Button       Button
	Source       Source
	At           time.Time
	Token        TimerToken
	DeltaY       float64
	File         board.File
}

func Press(card board.CardID, cardPos, pointer board.Point, button Button, source Source) Event {
	return Event{Kind: EventPress, Card: card, HasCard: true, CardPosition: cardPos, Pointer: pointer, Button: button, Source: source}
}

func Move(pointer board.Point, source Source) Event {
	return Event{Kind: EventMove, Pointer: pointer, Source: source}
}

func Release(source Source) Event {
	return Event{Kind: EventRelease, Source: source}
}

func Leave(card board.CardID) Event {
	return Event{Kind: EventLeave, Card: card, HasCard: true}
}

func Wheel(card board.CardID, deltaY float64) Event {
	return Event{Kind: EventWheel, Card: card, HasCard: true, DeltaY: deltaY}
}

func ContextMenu(card board.CardID) Event {
	return Event{Kind: EventContextMenu, Card: card, HasCard: true}
}

func CardRemoved(card board.CardID) Event {
	return Event{Kind: EventCardRemoved, Card: card, HasCard: true}
}

func DragOver(card board.CardID) Event {
	return Event{Kind: EventDragOver, Card: card, HasCard: true}
}

func DragLeave(card board.CardID) Event {
	return Event{Kind: EventDragLeave, Card: card, HasCard: true}
}

func Drop(card board.CardID, f board.File) Event {
	return Event{Kind: EventDrop, Card: card, HasCard: true, File: f}
}

type IntentKind int

const (
	IntentStartDrag IntentKind = iota
	IntentUpdatePosition
	IntentEndDrag
	IntentRotateBy
	IntentDeleteCard
	IntentOpenFileForCard
	IntentSetDragOver
	IntentLoadFile
	IntentScheduleLongPress
	IntentCancelLongPress
)

// Intent is a discrete command produced by a transition.
type Intent struct {
	Kind     IntentKind
	Card     board.CardID
	Position board.Point
	Degrees  float64
	On       bool
	File     board.File
	Token    TimerToken
	Delay    time.Duration
}
