package gesture

import (
	"photo-board/board"
)

// Step applies one event to the state and returns the new state together
// with the intents the host must carry out, in order. It has no side effects.
func Step(s State, ev Event) (State, []Intent) {
	switch ev.Kind {
	case EventPress:
		return s.press(ev)
	case EventMove:
		return s.move(ev)
	case EventRelease:
		return s.release(ev)
	case EventLongPressTimeout:
		return s.longPress(ev)
	case EventLeave:
		return s.leave(ev)
	case EventCancel, EventBlur:
		return s.abort()
	case EventCardRemoved:
		return s.cardRemoved(ev)
	case EventWheel:
		return s.wheel(ev)
	case EventContextMenu:
		return s.contextMenu(ev)
	case EventDragOver:
		if !ev.HasCard || s.Session.Phase == Dragging {
			return s, nil
		}
		return s, []Intent{{Kind: IntentSetDragOver, Card: ev.Card, On: true}}
	case EventDragLeave:
		if !ev.HasCard {
			return s, nil
		}
		return s, []Intent{{Kind: IntentSetDragOver, Card: ev.Card, On: false}}
	case EventDrop:
		if !ev.HasCard {
			return s, nil
		}
		out := []Intent{{Kind: IntentSetDragOver, Card: ev.Card, On: false}}
		if ev.File != nil {
			out = append(out, Intent{Kind: IntentLoadFile, Card: ev.Card, File: ev.File})
		}
		return s, out
	}
	return s, nil
}

func (s State) press(ev Event) (State, []Intent) {
	if !ev.HasCard || s.Session.Phase != Idle {
		return s, nil
	}
	if ev.Source == SourceMouse && ev.Button != ButtonLeft {
		return s, nil
	}
	s.lastToken++
	s.Session = Session{
		Phase:     Pressed,
		Target:    ev.Card,
		HasTarget: true,
		Offset:    ev.Pointer.Sub(ev.CardPosition),
		PressedAt: ev.At,
		Timer:     s.lastToken,
		Source:    ev.Source,
	}
	return s, []Intent{{
		Kind:  IntentScheduleLongPress,
		Card:  ev.Card,
		Token: s.lastToken,
		Delay: s.thresholds.LongPress,
	}}
}

// foreign reports an event from a device other than the one holding the
// session.
func (s State) foreign(ev Event) bool {
	return s.Session.Phase != Idle && ev.Source != s.Session.Source
}

func (s State) move(ev Event) (State, []Intent) {
	if s.foreign(ev) {
		return s, nil
	}
	switch s.Session.Phase {
	case Pressed:
		var out []Intent
		s, out = s.cancelTimer(out)
		s.Session.Moved = true
		s.Session.Phase = Dragging
		id := s.Session.Target
		return s, append(out,
			Intent{Kind: IntentStartDrag, Card: id},
			Intent{Kind: IntentUpdatePosition, Card: id, Position: ev.Pointer.Sub(s.Session.Offset)},
		)
	case Dragging:
		id := s.Session.Target
		return s, []Intent{{Kind: IntentUpdatePosition, Card: id, Position: ev.Pointer.Sub(s.Session.Offset)}}
	}
	return s, nil
}

func (s State) release(ev Event) (State, []Intent) {
	if s.foreign(ev) {
		return s, nil
	}
	var out []Intent
	switch s.Session.Phase {
	case Idle:
		return s, nil
	case Pressed:
		s, out = s.cancelTimer(out)
		if !s.Session.Moved {
			out = append(out, Intent{Kind: IntentOpenFileForCard, Card: s.Session.Target})
		}
	case Dragging:
		out = append(out, Intent{Kind: IntentEndDrag, Card: s.Session.Target})
	}
	target, source := s.Session.Target, s.Session.Source
	s.Session = Session{}
	if source == SourceTouch {
		s, out = s.tap(target, ev, out)
	}
	return s, out
}

// tap tracks touch releases for the double-tap rotation.
func (s State) tap(id board.CardID, ev Event, out []Intent) (State, []Intent) {
	last := s.lastTap
	if last.valid && last.card == id && ev.At.Sub(last.at) <= s.thresholds.DoubleTap {
		s.lastTap = tap{}
		return s, append(out, Intent{Kind: IntentRotateBy, Card: id, Degrees: s.thresholds.DoubleTapStep})
	}
	s.lastTap = tap{card: id, at: ev.At, valid: true}
	return s, out
}

func (s State) longPress(ev Event) (State, []Intent) {
	if s.Session.Phase != Pressed || s.Session.Timer == 0 || ev.Token != s.Session.Timer {
		return s, nil
	}
	id := s.Session.Target
	s.Session = Session{}
	return s, []Intent{{Kind: IntentDeleteCard, Card: id}}
}

func (s State) leave(ev Event) (State, []Intent) {
	if s.Session.Phase == Idle || (ev.HasCard && ev.Card != s.Session.Target) {
		return s, nil
	}
	return s.cancelTimer(nil)
}

func (s State) abort() (State, []Intent) {
	if s.Session.Phase == Idle {
		return s, nil
	}
	var out []Intent
	s, out = s.cancelTimer(out)
	if s.Session.Phase == Dragging {
		out = append(out, Intent{Kind: IntentEndDrag, Card: s.Session.Target})
	}
	s.Session = Session{}
	return s, out
}

func (s State) cardRemoved(ev Event) (State, []Intent) {
	if s.lastTap.valid && s.lastTap.card == ev.Card {
		s.lastTap = tap{}
	}
	if !s.Session.HasTarget || s.Session.Target != ev.Card {
		return s, nil
	}
	var out []Intent
	s, out = s.cancelTimer(out)
	s.Session = Session{}
	return s, out
}

func (s State) wheel(ev Event) (State, []Intent) {
	if !ev.HasCard || ev.DeltaY == 0 {
		return s, nil
	}
	step := s.thresholds.WheelStep
	if ev.DeltaY < 0 {
		step = -step
	}
	return s, []Intent{{Kind: IntentRotateBy, Card: ev.Card, Degrees: step}}
}

func (s State) contextMenu(ev Event) (State, []Intent) {
	if !ev.HasCard {
		return s, nil
	}
	var out []Intent
	if s.Session.HasTarget && s.Session.Target == ev.Card {
		s, out = s.cancelTimer(out)
		s.Session = Session{}
	}
	return s, append(out, Intent{Kind: IntentDeleteCard, Card: ev.Card})
}

func (s State) cancelTimer(out []Intent) (State, []Intent) {
	if s.Session.Timer == 0 {
		return s, out
	}
	out = append(out, Intent{Kind: IntentCancelLongPress, Card: s.Session.Target, Token: s.Session.Timer})
	s.Session.Timer = 0
	return s, out
}
