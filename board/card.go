package board

import (
	"fmt"
	"math"
)

// CardID identifies a card for its whole lifetime. IDs are never reused.
type CardID int

func (id CardID) String() string {
	return fmt.Sprintf("card-%d", int(id))
}

// Point is a position in container-relative coordinates.
type Point struct {
	X, Y float64
}

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// ContentKind distinguishes placeholder cards from populated ones.
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentImage
)

// Content is what a card displays. Image content references a decoded image by URI.
type Content struct {
	Kind ContentKind
	URI  string
}

func Empty() Content { return Content{Kind: ContentEmpty} }

func Image(uri string) Content { return Content{Kind: ContentImage, URI: uri} }

func (c Content) IsEmpty() bool { return c.Kind == ContentEmpty }

// Placement is the initial geometry assigned to a new card.
type Placement struct {
	Position Point
	Rotation float64
	ZIndex   int
}

const (
	// LiftScale is the scale applied while a card is being dragged.
	LiftScale = 1.05
)

// Card represents a photo card on the board
type Card struct {
	ID       CardID
	Position Point
	Rotation float64 // degrees, unbounded
	Scale    float64
	ZIndex   int
	Size     Size
	Content  Content

	Dragging bool
	DragOver bool
}

// Center returns the rotation pivot of the card.
func (c *Card) Center() Point {
	return Point{
		X: c.Position.X + c.Size.Width/2,
		Y: c.Position.Y + c.Size.Height/2,
	}
}

// Corners returns the four corners of the card after scale and rotation,
// in top-left, top-right, bottom-right, bottom-left order.
func (c *Card) Corners() [4]Point {
	center := c.Center()
	hw := c.Size.Width * c.scale() / 2
	hh := c.Size.Height * c.scale() / 2
	sin, cos := math.Sincos(c.Rotation * math.Pi / 180)

	local := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Point
	for i, p := range local {
		out[i] = Point{
			X: center.X + p.X*cos - p.Y*sin,
			Y: center.Y + p.X*sin + p.Y*cos,
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the rendered card.
func (c *Card) Bounds() Rect {
	corners := c.Corners()
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, p := range corners[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether p lies on the rendered card, accounting for rotation and scale.
func (c *Card) Contains(p Point) bool {
	center := c.Center()
	dx, dy := p.X-center.X, p.Y-center.Y
	sin, cos := math.Sincos(-c.Rotation * math.Pi / 180)
	lx := dx*cos - dy*sin
	ly := dx*sin + dy*cos

	hw := c.Size.Width * c.scale() / 2
	hh := c.Size.Height * c.scale() / 2
	return lx >= -hw && lx <= hw && ly >= -hh && ly <= hh
}

func (c *Card) scale() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

// CardSize derives the card dimensions from the shared size settings.
func CardSize(sizeValue float64, landscape bool) Size {
	if landscape {
		return Size{Width: sizeValue * 3 / 2, Height: sizeValue}
	}
	return Size{Width: sizeValue, Height: sizeValue * 3 / 2}
}
