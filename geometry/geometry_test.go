package geometry

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRNG struct {
	f float64
	n int
}

func (r fixedRNG) Float64() float64 { return r.f }
func (r fixedRNG) IntN(n int) int   { return r.n % n }

func TestRandom_PlacementStaysInBounds(t *testing.T) {
	placer := NewRandom(rand.New(rand.NewPCG(1, 2)))
	container := Bounds{Width: 1200, Height: 900}

	for _, class := range []ViewportClass{ViewportNormal, ViewportNarrow} {
		fp := Footprint(class)
		for i := 0; i < 10000; i++ {
			p := placer.Place(0, 1, container, class)

			if p.Position.X < Margin || p.Position.X > container.Width-fp.Width-Margin {
				t.Fatalf("%s: x=%f out of range", class, p.Position.X)
			}
			if p.Position.Y < Margin || p.Position.Y > container.Height-fp.Height-Margin {
				t.Fatalf("%s: y=%f out of range", class, p.Position.Y)
			}
			if p.Rotation < -MaxRotation || p.Rotation > MaxRotation {
				t.Fatalf("rotation %f out of range", p.Rotation)
			}
			if p.ZIndex < 1 || p.ZIndex > MaxZIndex {
				t.Fatalf("z-index %d out of range", p.ZIndex)
			}
		}
	}
}

func TestRandom_Extremes(t *testing.T) {
	container := Bounds{Width: 1000, Height: 1000}

	low := NewRandom(fixedRNG{f: 0, n: 0}).Place(0, 1, container, ViewportNormal)
	assert.Equal(t, Margin, low.Position.X)
	assert.Equal(t, Margin, low.Position.Y)
	assert.Equal(t, -20.0, low.Rotation)
	assert.Equal(t, 1, low.ZIndex)

	high := NewRandom(fixedRNG{f: 1, n: 99}).Place(0, 1, container, ViewportNormal)
	assert.Equal(t, 1000-250-Margin, high.Position.X)
	assert.Equal(t, 1000-375-Margin, high.Position.Y)
	assert.Equal(t, 20.0, high.Rotation)
	assert.Equal(t, 100, high.ZIndex)
}

func TestRandom_SmallContainerIsNotClamped(t *testing.T) {
	p := NewRandom(fixedRNG{f: 1}).Place(0, 1, Bounds{Width: 200, Height: 300}, ViewportNormal)
	assert.Less(t, p.Position.X, Margin)
	assert.Less(t, p.Position.Y, Margin)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ViewportNarrow, Classify(768))
	assert.Equal(t, ViewportNormal, Classify(769))
	assert.Equal(t, 180.0, Footprint(ViewportNarrow).Width)
	assert.Equal(t, 375.0, Footprint(ViewportNormal).Height)
}

func TestScripted_GridLayout(t *testing.T) {
	script := `
cols = 3
x = margin + (index % cols) * (card_width + margin)
y = margin + (index // cols) * (card_height + margin)
rotation = 0
z = index + 1
`
	placer, err := NewScripted(context.Background(), "grid.star", script, fixedRNG{f: 0.5, n: 3})
	require.NoError(t, err)

	p := placer.Place(4, 6, Bounds{Width: 1200, Height: 900}, ViewportNormal)
	assert.Equal(t, 20.0+250+20, p.Position.X)
	assert.Equal(t, 20.0+375+20, p.Position.Y)
	assert.Equal(t, 0.0, p.Rotation)
	assert.Equal(t, 5, p.ZIndex)
}

func TestScripted_FallsBackWhenOutputsMissing(t *testing.T) {
	placer, err := NewScripted(context.Background(), "partial.star", "x = 5\n", fixedRNG{f: 0, n: 0})
	require.NoError(t, err)

	p := placer.Place(0, 1, Bounds{Width: 1000, Height: 1000}, ViewportNormal)
	assert.Equal(t, Margin, p.Position.X)
	assert.Equal(t, Margin, p.Position.Y)
}

func TestScripted_RuntimeErrorFallsBack(t *testing.T) {
	placer, err := NewScripted(context.Background(), "boom.star", "x = 1 // 0\ny = 1\n", fixedRNG{f: 0})
	require.NoError(t, err)

	p := placer.Place(0, 1, Bounds{Width: 1000, Height: 1000}, ViewportNormal)
	assert.Equal(t, Margin, p.Position.X)
}

func TestScripted_RandomBuiltinAndDefaults(t *testing.T) {
	placer, err := NewScripted(context.Background(), "rand.star", "x = random() * 100\ny = 7\n", fixedRNG{f: 0.25, n: 41})
	require.NoError(t, err)

	p := placer.Place(0, 1, Bounds{Width: 1000, Height: 1000}, ViewportNormal)
	assert.Equal(t, 25.0, p.Position.X)
	assert.Equal(t, 7.0, p.Position.Y)
	assert.Equal(t, -10.0, p.Rotation)
	assert.Equal(t, 42, p.ZIndex)
}

func TestScripted_RejectsSyntaxErrors(t *testing.T) {
	_, err := NewScripted(context.Background(), "bad.star", "x = = 1", nil)
	assert.Error(t, err)

	placer, err := NewScripted(context.Background(), "ok.star", "x = 1\ny = 1\n", nil)
	require.NoError(t, err)
	assert.Error(t, placer.SetScript("y = ("))
}
