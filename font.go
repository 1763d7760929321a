package main

import (
	"context"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"photo-board/logging"
)

// LoadUIFont loads fonts/Roboto-Regular.ttf when present, then the embedded
// Go Regular face, then basicfont.Face7x13.
func LoadUIFont(ctx context.Context, size float64) font.Face {
	log := logging.FromContext(ctx)
	data, err := os.ReadFile("fonts/Roboto-Regular.ttf")
	if err != nil {
		log.Debug().Err(err).Msg("fonts/Roboto-Regular.ttf not found, using Go Regular")
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Warn().Err(err).Msg("font parse error, using basic font")
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Warn().Err(err).Msg("font face error, using basic font")
		return basicfont.Face7x13
	}
	return face
}
