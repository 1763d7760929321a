package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"photo-board/board"
	"photo-board/intake"
)

// Sprites is the board surface behind the ebiten renderer. Card geometry is
// read from the registry at draw time, so only content is tracked here:
// decoded images wait in pending until their first draw uploads them.
type Sprites struct {
	board.NopSurface

	textures map[string]*ebiten.Image
	pending  map[string]image.Image
	bound    map[board.CardID]string
}

func NewSprites() *Sprites {
	return &Sprites{
		textures: make(map[string]*ebiten.Image),
		pending:  make(map[string]image.Image),
		bound:    make(map[board.CardID]string),
	}
}

// Add registers a decoded image under uri.
func (s *Sprites) Add(uri string, img image.Image) {
	s.pending[uri] = img
}

// Texture returns the texture for uri, uploading it on first use. It must be
// called from the game goroutine.
func (s *Sprites) Texture(uri string) *ebiten.Image {
	if t, ok := s.textures[uri]; ok {
		return t
	}
	img, ok := s.pending[uri]
	if !ok {
		return nil
	}
	delete(s.pending, uri)
	t := ebiten.NewImageFromImage(intake.Downscale(img, intake.MaxTextureSide))
	s.textures[uri] = t
	return t
}

func (s *Sprites) SetContent(id board.CardID, content board.Content) {
	prev := s.bound[id]
	s.bound[id] = content.URI
	if prev != "" && prev != content.URI {
		s.release(prev)
	}
}

func (s *Sprites) Remove(id board.CardID) {
	uri, ok := s.bound[id]
	if !ok {
		return
	}
	delete(s.bound, id)
	s.release(uri)
}

// Held is the number of images kept alive, uploaded or not.
func (s *Sprites) Held() int {
	return len(s.textures) + len(s.pending)
}

func (s *Sprites) release(uri string) {
	for _, u := range s.bound {
		if u == uri {
			return
		}
	}
	delete(s.pending, uri)
	if t, ok := s.textures[uri]; ok {
		t.Deallocate()
		delete(s.textures, uri)
	}
}
