package geometry

import (
	"math/rand/v2"

	"photo-board/board"
)

const (
	// Margin keeps scattered cards away from the container edges.
	Margin = 20.0

	// NarrowBreakpoint is the widest viewport still treated as narrow.
	NarrowBreakpoint = 768.0

	MaxRotation = 20.0
	MaxZIndex   = 100
)

// ViewportClass is the coarse breakpoint a placement is computed for.
type ViewportClass int

const (
	ViewportNormal ViewportClass = iota
	ViewportNarrow
)

func (c ViewportClass) String() string {
	if c == ViewportNarrow {
		return "narrow"
	}
	return "normal"
}

// Classify returns the viewport class for a viewport width.
func Classify(viewportWidth float64) ViewportClass {
	if viewportWidth <= NarrowBreakpoint {
		return ViewportNarrow
	}
	return ViewportNormal
}

// Footprint is the card size placement reserves room for. It depends only on
// the viewport class, not on the current card size settings.
func Footprint(class ViewportClass) board.Size {
	if class == ViewportNarrow {
		return board.Size{Width: 180, Height: 270}
	}
	return board.Size{Width: 250, Height: 375}
}

// Bounds is the size of the cards container.
type Bounds struct {
	Width, Height float64
}

// RNG is the random source placements draw from.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Float64() float64 { return rand.Float64() }
func (stdRNG) IntN(n int) int   { return rand.IntN(n) }

// Placer computes the initial geometry of a card.
// index and total describe the card's slot in the batch being placed.
type Placer interface {
	Place(index, total int, container Bounds, class ViewportClass) board.Placement
}

// Random scatters cards uniformly over the container. Overlap is allowed.
type Random struct {
	rng RNG
}

// NewRandom returns a Random placer. A nil rng uses math/rand/v2.
func NewRandom(rng RNG) *Random {
	if rng == nil {
		rng = stdRNG{}
	}
	return &Random{rng: rng}
}

// Place ignores index and total. When the container is smaller than the
// footprint the position may be negative; it is not clamped.
func (r *Random) Place(_, _ int, container Bounds, class ViewportClass) board.Placement {
	return board.Placement{
		Position: r.Position(container, class),
		Rotation: r.Rotation(),
		ZIndex:   r.ZIndex(),
	}
}

func (r *Random) Position(container Bounds, class ViewportClass) board.Point {
	fp := Footprint(class)
	return board.Point{
		X: r.rng.Float64()*(container.Width-fp.Width-Margin*2) + Margin,
		Y: r.rng.Float64()*(container.Height-fp.Height-Margin*2) + Margin,
	}
}

// Rotation returns an angle in [-20, 20) degrees.
func (r *Random) Rotation() float64 {
	return (r.rng.Float64() - 0.5) * MaxRotation * 2
}

// ZIndex returns a stacking order in [1, 100].
func (r *Random) ZIndex() int {
	return r.rng.IntN(MaxZIndex) + 1
}
