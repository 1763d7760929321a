package board

import (
	"sort"
)

// Registry owns the live cards and projects every change onto a Surface.
// It is not safe for concurrent use; all calls come from the UI loop.
type Registry struct {
	cards   map[CardID]*Card
	order   []CardID
	lastID  CardID
	size    Size
	surface Surface

	removeListeners []func(CardID)
}

func NewRegistry(surface Surface, size Size) *Registry {
	if surface == nil {
		surface = NopSurface{}
	}
	return &Registry{
		cards:   make(map[CardID]*Card),
		size:    size,
		surface: surface,
	}
}

// OnRemove registers fn to run after a card has been removed.
func (r *Registry) OnRemove(fn func(CardID)) {
	r.removeListeners = append(r.removeListeners, fn)
}

// Create adds an empty card at the given placement, sized from the current settings.
func (r *Registry) Create(p Placement) *Card {
	r.lastID++
	card := &Card{
		ID:       r.lastID,
		Position: p.Position,
		Rotation: p.Rotation,
		Scale:    1,
		ZIndex:   p.ZIndex,
		Size:     r.size,
		Content:  Empty(),
	}
	r.cards[card.ID] = card
	r.order = append(r.order, card.ID)

	r.surface.SetSize(card.ID, card.Size)
	r.surface.SetPosition(card.ID, card.Position.X, card.Position.Y)
	r.surface.SetRotation(card.ID, card.Rotation)
	r.surface.SetScale(card.ID, card.Scale)
	r.surface.SetZIndex(card.ID, card.ZIndex)
	r.surface.SetContent(card.ID, card.Content)
	return card
}

func (r *Registry) Get(id CardID) (*Card, bool) {
	c, ok := r.cards[id]
	return c, ok
}

func (r *Registry) Len() int {
	return len(r.order)
}

// All returns the cards in creation order.
func (r *Registry) All() []*Card {
	out := make([]*Card, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.cards[id])
	}
	return out
}

// Stack returns the cards in paint order: ascending z, ties broken by creation order.
func (r *Registry) Stack() []*Card {
	out := r.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

// CardAt returns the topmost card under p.
func (r *Registry) CardAt(p Point) (*Card, bool) {
	stack := r.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Contains(p) {
			return stack[i], true
		}
	}
	return nil, false
}

// Remove deletes a card. It reports false when the card does not exist.
func (r *Registry) Remove(id CardID) bool {
	if _, ok := r.cards[id]; !ok {
		return false
	}
	delete(r.cards, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.surface.Remove(id)
	for _, fn := range r.removeListeners {
		fn(id)
	}
	return true
}

// Clear removes every card. IDs keep counting up afterwards.
func (r *Registry) Clear() {
	ids := append([]CardID(nil), r.order...)
	for _, id := range ids {
		r.Remove(id)
	}
}

func (r *Registry) Move(id CardID, p Point) {
	c, ok := r.cards[id]
	if !ok {
		return
	}
	c.Position = p
	r.surface.SetPosition(id, p.X, p.Y)
}

// Rotate adds delta degrees to the card rotation without normalizing.
func (r *Registry) Rotate(id CardID, delta float64) {
	c, ok := r.cards[id]
	if !ok {
		return
	}
	c.Rotation += delta
	r.surface.SetRotation(id, c.Rotation)
}

func (r *Registry) SetScale(id CardID, factor float64) {
	c, ok := r.cards[id]
	if !ok {
		return
	}
	c.Scale = factor
	r.surface.SetScale(id, factor)
}

func (r *Registry) SetFlag(id CardID, flag Flag, on bool) {
	c, ok := r.cards[id]
	if !ok {
		return
	}
	switch flag {
	case FlagDragging:
		c.Dragging = on
	case FlagDragOver:
		c.DragOver = on
	}
	r.surface.SetFlag(id, flag, on)
}

// SetContent stores an image on the card. Populated cards never revert to Empty,
// so empty content is ignored.
func (r *Registry) SetContent(id CardID, content Content) bool {
	c, ok := r.cards[id]
	if !ok || content.IsEmpty() {
		return false
	}
	c.Content = content
	r.surface.SetContent(id, content)
	return true
}

// Size returns the size applied to new cards.
func (r *Registry) Size() Size {
	return r.size
}

// ResizeAll applies size to every card and to cards created later.
func (r *Registry) ResizeAll(size Size) {
	r.size = size
	for _, id := range r.order {
		r.cards[id].Size = size
		r.surface.SetSize(id, size)
	}
}
