package layout

import (
	"context"

	"photo-board/board"
	"photo-board/geometry"
	"photo-board/logging"
)

// Mode is which control surface the viewport calls for.
type Mode int

const (
	ModeDesktop Mode = iota
	ModeMobile
)

func (m Mode) String() string {
	if m == ModeMobile {
		return "mobile"
	}
	return "desktop"
}

func ModeFor(viewportWidth float64) Mode {
	if geometry.Classify(viewportWidth) == geometry.ViewportNarrow {
		return ModeMobile
	}
	return ModeDesktop
}

// ModeListener builds and tears down the mobile panel.
type ModeListener interface {
	EnterMobile()
	LeaveMobile()
}

// Controller keeps cards inside the container as the viewport changes and
// applies settings changes to every card.
type Controller struct {
	ctx    context.Context
	reg    *board.Registry
	placer geometry.Placer
	model  *Model
	modes  ModeListener

	viewport  geometry.Bounds
	container geometry.Bounds
	mode      Mode
	sized     bool
}

func NewController(ctx context.Context, reg *board.Registry, placer geometry.Placer, model *Model, modes ModeListener) *Controller {
	c := &Controller{
		ctx:    logging.WithComponent(ctx, "layout"),
		reg:    reg,
		placer: placer,
		model:  model,
		modes:  modes,
	}
	reg.ResizeAll(model.Settings().CardSize())
	model.Subscribe(func(prev, next Settings) {
		if prev.SizeValue != next.SizeValue || prev.Landscape != next.Landscape {
			reg.ResizeAll(next.CardSize())
		}
	})
	return c
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Container() geometry.Bounds {
	return c.container
}

// SetPlacer swaps the placement strategy used for new cards and reflow.
func (c *Controller) SetPlacer(p geometry.Placer) {
	c.placer = p
}

// Resize records new viewport and container sizes, switches mode when the
// breakpoint is crossed and reflows cards that no longer fit.
func (c *Controller) Resize(viewport, container geometry.Bounds) {
	if c.sized && viewport == c.viewport && container == c.container {
		return
	}
	c.viewport = viewport
	c.container = container

	mode := ModeFor(viewport.Width)
	if !c.sized || mode != c.mode {
		c.switchMode(mode)
	}
	c.sized = true
	c.Reflow()
}

func (c *Controller) switchMode(mode Mode) {
	prev := c.mode
	c.mode = mode
	logging.FromContext(c.ctx).Debug().Stringer("from", prev).Stringer("to", mode).Msg("layout mode")
	if c.modes == nil {
		return
	}
	switch {
	case mode == ModeMobile:
		c.modes.EnterMobile()
	case c.sized:
		c.modes.LeaveMobile()
	}
}

// Reflow re-places every card whose right or bottom edge lies outside the
// container. Only the position changes; cards that fit are left alone.
// It returns the ids of the moved cards.
func (c *Controller) Reflow() []board.CardID {
	cards := c.reg.All()
	class := geometry.Classify(c.viewport.Width)
	var moved []board.CardID
	for i, card := range cards {
		b := card.Bounds()
		if b.Right() <= c.container.Width && b.Bottom() <= c.container.Height {
			continue
		}
		p := c.placer.Place(i, len(cards), c.container, class)
		c.reg.Move(card.ID, p.Position)
		moved = append(moved, card.ID)
	}
	if len(moved) > 0 {
		logging.FromContext(c.ctx).Debug().Int("cards", len(moved)).Msg("reflowed")
	}
	return moved
}

// AddCards scatters n new empty cards over the container.
func (c *Controller) AddCards(n int) []*board.Card {
	existing := c.reg.Len()
	class := geometry.Classify(c.viewport.Width)
	out := make([]*board.Card, 0, n)
	for i := 0; i < n; i++ {
		p := c.placer.Place(existing+i, existing+n, c.container, class)
		out = append(out, c.reg.Create(p))
	}
	return out
}
