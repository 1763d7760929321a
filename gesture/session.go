package gesture

import (
	"time"

	"photo-board/board"
)

// Phase is the stage of the in-flight press/drag interaction.
type Phase int

const (
	Idle Phase = iota
	Pressed
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Source tells mouse and touch input apart.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// TimerToken identifies one scheduled long-press. Zero means no timer.
type TimerToken uint64

// Thresholds are the timing and step constants of the gesture rules.
type Thresholds struct {
	LongPress     time.Duration
	DoubleTap     time.Duration
	WheelStep     float64
	DoubleTapStep float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		LongPress:     800 * time.Millisecond,
		DoubleTap:     500 * time.Millisecond,
		WheelStep:     5,
		DoubleTapStep: 15,
	}
}

// Session is the single in-flight interaction on the board.
type Session struct {
	Phase     Phase
	Target    board.CardID
	HasTarget bool
	// Offset is the pointer position minus the card position at press time.
	Offset    board.Point
	PressedAt time.Time
	Moved     bool
	Timer     TimerToken
	Source    Source
}

type tap struct {
	card  board.CardID
	at    time.Time
	valid bool
}

// State is everything Step reads and writes.
type State struct {
	Session Session

	thresholds Thresholds
	lastToken  TimerToken
	lastTap    tap
}

func NewState(t Thresholds) State {
	return State{thresholds: t}
}

func (s State) Thresholds() Thresholds {
	return s.thresholds
}
