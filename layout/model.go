package layout

import (
	"photo-board/board"
)

const (
	MinSize     = 120.0
	MaxSize     = 320.0
	DefaultSize = 200.0
)

// Settings are the board-wide values both control surfaces edit.
type Settings struct {
	SizeValue float64
	Landscape bool
	Dark      bool
}

func DefaultSettings() Settings {
	return Settings{SizeValue: DefaultSize}
}

// CardSize is the size every card takes under these settings.
func (s Settings) CardSize() board.Size {
	return board.CardSize(s.SizeValue, s.Landscape)
}

// Listener observes a settings change.
type Listener func(prev, next Settings)

// Model is the single source of truth for Settings. The desktop toolbar and
// the mobile panel both render from it and write to it. It is not safe for
// concurrent use; all access happens on the UI goroutine.
type Model struct {
	settings  Settings
	listeners map[int]Listener
	order     []int
	nextID    int
}

func NewModel(s Settings) *Model {
	s.SizeValue = clampSize(s.SizeValue)
	return &Model{settings: s, listeners: make(map[int]Listener)}
}

func (m *Model) Settings() Settings {
	return m.settings
}

// Subscribe registers fn and returns a function that removes it.
func (m *Model) Subscribe(fn Listener) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.order = append(m.order, id)
	return func() {
		delete(m.listeners, id)
		for i, v := range m.order {
			if v == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

// Update applies fn to a copy of the settings and notifies subscribers when
// anything changed.
func (m *Model) Update(fn func(*Settings)) {
	prev := m.settings
	next := prev
	fn(&next)
	next.SizeValue = clampSize(next.SizeValue)
	if next == prev {
		return
	}
	m.settings = next
	for _, id := range append([]int(nil), m.order...) {
		if l, ok := m.listeners[id]; ok {
			l(prev, next)
		}
	}
}

func (m *Model) SetSize(v float64) {
	m.Update(func(s *Settings) { s.SizeValue = v })
}

func (m *Model) SetLandscape(on bool) {
	m.Update(func(s *Settings) { s.Landscape = on })
}

func (m *Model) SetDark(on bool) {
	m.Update(func(s *Settings) { s.Dark = on })
}

func clampSize(v float64) float64 {
	switch {
	case v == 0:
		return DefaultSize
	case v < MinSize:
		return MinSize
	case v > MaxSize:
		return MaxSize
	}
	return v
}
