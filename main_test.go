package main

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-board/board"
	"photo-board/config"
	"photo-board/geometry"
)

func TestNewPlacer_RandomWithoutScript(t *testing.T) {
	cfg := config.DefaultConfig()

	p, err := newPlacer(context.Background(), cfg, "", nil)
	require.NoError(t, err)
	r, ok := p.(*geometry.Random)
	require.True(t, ok)

	again, err := newPlacer(context.Background(), cfg, "", r)
	require.NoError(t, err)
	assert.Same(t, r, again)
}

func TestNewPlacer_ScriptReloadKeepsPlacer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.Script = "x = margin\ny = margin\n"

	p, err := newPlacer(context.Background(), cfg, "", geometry.NewRandom(nil))
	require.NoError(t, err)
	s, ok := p.(*geometry.Scripted)
	require.True(t, ok)

	cfg.Layout.Script = "x = index * 10\ny = margin\n"
	again, err := newPlacer(context.Background(), cfg, "", s)
	require.NoError(t, err)
	assert.Same(t, s, again)

	cfg.Layout.Script = "x = ("
	_, err = newPlacer(context.Background(), cfg, "", s)
	assert.Error(t, err)
}

func TestNewPlacer_ScriptFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grid.star"), []byte("x = 1\ny = 2\n"), 0o644))
	cfg := config.DefaultConfig()
	cfg.Layout.ScriptFile = "grid.star"

	p, err := newPlacer(context.Background(), cfg, filepath.Join(dir, "photo-board.yaml"), nil)
	require.NoError(t, err)
	_, ok := p.(*geometry.Scripted)
	assert.True(t, ok)
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album")
	require.NoError(t, os.Mkdir(sub, 0o755))
	for _, name := range []string{"a.png", "b.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(sub, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(sub, "nested"), 0o755))
	single := filepath.Join(dir, "c.gif")
	require.NoError(t, os.WriteFile(single, nil, 0o644))

	files, err := collectFiles([]string{single, sub})
	require.NoError(t, err)
	var names []string
	for _, f := range files {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"c.gif", "a.png", "b.jpg"}, names)

	_, err = collectFiles([]string{filepath.Join(dir, "missing.png")})
	assert.Error(t, err)
}

func TestSprites_ReleasesUnreferencedImages(t *testing.T) {
	s := NewSprites()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	s.Add("image:1/a.png", img)
	s.SetContent(1, board.Image("image:1/a.png"))
	s.Add("image:2/b.png", img)
	s.SetContent(2, board.Image("image:2/b.png"))
	assert.Equal(t, 2, s.Held())

	// Re-upload replaces the old image.
	s.Add("image:3/c.png", img)
	s.SetContent(1, board.Image("image:3/c.png"))
	assert.Equal(t, 2, s.Held())

	s.Remove(2)
	assert.Equal(t, 1, s.Held())
	s.Remove(2)
	s.Remove(1)
	assert.Equal(t, 0, s.Held())
}

func TestThresholdsFromConfig(t *testing.T) {
	th := thresholds(config.DefaultConfig().Gesture)
	assert.Equal(t, int64(800), th.LongPress.Milliseconds())
	assert.Equal(t, int64(500), th.DoubleTap.Milliseconds())
	assert.Equal(t, 5.0, th.WheelStep)
	assert.Equal(t, 15.0, th.DoubleTapStep)
}
