package gesture

import (
	"context"
	"time"

	"photo-board/board"
	"photo-board/logging"
)

//go:generate mockgen -source=machine.go -destination=mocks/mock_handler.go -package=mocks

// Handler carries out the card-level intents. board.Board implements it.
type Handler interface {
	StartDrag(id board.CardID)
	UpdatePosition(id board.CardID, p board.Point)
	EndDrag(id board.CardID)
	RotateBy(id board.CardID, degrees float64)
	DeleteCard(id board.CardID)
	OpenFileForCard(id board.CardID)
	SetDragOver(id board.CardID, on bool)
	LoadFile(id board.CardID, f board.File)
}

// Machine owns the gesture state and its long-press timers and applies
// intents to a Handler.
//
// Events dispatched while intents are being applied (for example the
// CardRemoved that follows a DeleteCard) are queued and processed after the
// current event, so every transition runs to completion.
type Machine struct {
	ctx     context.Context
	state   State
	handler Handler
	sched   *Scheduler
	timers  map[TimerToken]*Task

	queue       []Event
	dispatching bool
}

func NewMachine(ctx context.Context, handler Handler, sched *Scheduler, t Thresholds) *Machine {
	return &Machine{
		ctx:     logging.WithComponent(ctx, "gesture"),
		state:   NewState(t),
		handler: handler,
		sched:   sched,
		timers:  make(map[TimerToken]*Task),
	}
}

func (m *Machine) Session() Session {
	return m.state.Session
}

// Tick advances the timer clock and fires any due long-press.
func (m *Machine) Tick(now time.Time) {
	m.sched.Advance(now)
}

// Dispatch feeds one event through Step. Events without a timestamp take
// the scheduler's current time.
func (m *Machine) Dispatch(ev Event) {
	if ev.At.IsZero() {
		ev.At = m.sched.Now()
	}
	m.queue = append(m.queue, ev)
	if m.dispatching {
		return
	}
	m.dispatching = true
	defer func() { m.dispatching = false }()

	for len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		m.step(next)
	}
}

func (m *Machine) step(ev Event) {
	log := logging.FromContext(m.ctx)
	if ev.Kind == EventLongPressTimeout {
		delete(m.timers, ev.Token)
	}

	before := m.state.Session.Phase
	var intents []Intent
	m.state, intents = Step(m.state, ev)
	if after := m.state.Session.Phase; after != before {
		log.Debug().
			Stringer("event", ev.Kind).
			Stringer("from", before).
			Stringer("to", after).
			Msg("gesture transition")
	}

	for _, in := range intents {
		m.apply(in)
	}
}

func (m *Machine) apply(in Intent) {
	switch in.Kind {
	case IntentScheduleLongPress:
		token := in.Token
		m.timers[token] = m.sched.After(in.Delay, func() {
			m.Dispatch(Event{Kind: EventLongPressTimeout, Token: token})
		})
	case IntentCancelLongPress:
		if t, ok := m.timers[in.Token]; ok {
			m.sched.Cancel(t)
			delete(m.timers, in.Token)
		}
	case IntentStartDrag:
		m.handler.StartDrag(in.Card)
	case IntentUpdatePosition:
		m.handler.UpdatePosition(in.Card, in.Position)
	case IntentEndDrag:
		m.handler.EndDrag(in.Card)
	case IntentRotateBy:
		m.handler.RotateBy(in.Card, in.Degrees)
	case IntentDeleteCard:
		m.handler.DeleteCard(in.Card)
	case IntentOpenFileForCard:
		m.handler.OpenFileForCard(in.Card)
	case IntentSetDragOver:
		m.handler.SetDragOver(in.Card, in.On)
	case IntentLoadFile:
		m.handler.LoadFile(in.Card, in.File)
	}
}

// PendingTimers is the number of live long-press timers.
func (m *Machine) PendingTimers() int {
	return len(m.timers)
}
