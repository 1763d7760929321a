package geometry

import (
	"context"
	"fmt"
	"sync"

	"photo-board/board"
	"photo-board/engine"
	"photo-board/logging"
)

// Scripted places cards with a Starlark script. The script sees index, total,
// width, height, card_width, card_height, margin and a random() builtin, and
// assigns x and y. rotation and z are optional. Anything missing or failing
// falls back to random placement.
type Scripted struct {
	mu       sync.RWMutex
	name     string
	script   string
	rng      RNG
	fallback *Random
	ctx      context.Context
}

func NewScripted(ctx context.Context, name, script string, rng RNG) (*Scripted, error) {
	if rng == nil {
		rng = stdRNG{}
	}
	s := &Scripted{
		name:     name,
		rng:      rng,
		fallback: NewRandom(rng),
		ctx:      logging.WithComponent(ctx, "placer"),
	}
	if err := s.SetScript(script); err != nil {
		return nil, err
	}
	return s, nil
}

// SetScript swaps the layout script. It is called on config reload.
func (s *Scripted) SetScript(script string) error {
	if err := engine.Compile(s.name, script); err != nil {
		return fmt.Errorf("layout script %s: %w", s.name, err)
	}
	s.mu.Lock()
	s.script = script
	s.mu.Unlock()
	return nil
}

func (s *Scripted) Place(index, total int, container Bounds, class ViewportClass) board.Placement {
	s.mu.RLock()
	script := s.script
	s.mu.RUnlock()

	log := logging.FromContext(s.ctx)
	fp := Footprint(class)
	inputs := map[string]interface{}{
		"index":       index,
		"total":       total,
		"width":       container.Width,
		"height":      container.Height,
		"card_width":  fp.Width,
		"card_height": fp.Height,
		"margin":      Margin,
	}
	out, err := engine.ExecuteStarlark(s.name, script, inputs, map[string]engine.Builtin{
		"random": s.rng.Float64,
	})
	if err != nil {
		log.Warn().Err(err).Int("index", index).Msg("layout script failed, using random placement")
		return s.fallback.Place(index, total, container, class)
	}

	x, okX := engine.Number(out["x"])
	y, okY := engine.Number(out["y"])
	if !okX || !okY {
		log.Warn().Int("index", index).Msg("layout script did not set x and y, using random placement")
		return s.fallback.Place(index, total, container, class)
	}

	p := board.Placement{
		Position: board.Point{X: x, Y: y},
		Rotation: s.fallback.Rotation(),
		ZIndex:   s.fallback.ZIndex(),
	}
	if rot, ok := engine.Number(out["rotation"]); ok {
		p.Rotation = rot
	}
	if z, ok := out["z"].(int); ok {
		p.ZIndex = z
	}
	return p
}
