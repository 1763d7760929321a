package theme

import "image/color"

// Palette holds the colors the board is drawn with.
type Palette struct {
	Background  color.RGBA // Board backdrop
	Grid        color.RGBA // Dot grid over the backdrop
	Card        color.RGBA // Card face
	CardBorder  color.RGBA
	Placeholder color.RGBA // Icon and hint on empty cards
	Shadow      color.RGBA
	DragOver    color.RGBA // Outline while a file hovers a card
	Chrome      color.RGBA // Toolbar and mobile panel
	Text        color.RGBA
	Muted       color.RGBA
	Accent      color.RGBA // Active toggles, slider knob
}

func LightPalette() Palette {
	return Palette{
		Background:  color.RGBA{0xf3, 0xf4, 0xf6, 0xff},
		Grid:        color.RGBA{0xd1, 0xd5, 0xdb, 0xff},
		Card:        color.RGBA{0xff, 0xff, 0xff, 0xff},
		CardBorder:  color.RGBA{0xd1, 0xd5, 0xdb, 0xff},
		Placeholder: color.RGBA{0x9c, 0xa3, 0xaf, 0xff},
		Shadow:      color.RGBA{0x00, 0x00, 0x00, 0x26},
		DragOver:    color.RGBA{0x3b, 0x82, 0xf6, 0xff},
		Chrome:      color.RGBA{0xff, 0xff, 0xff, 0xf0},
		Text:        color.RGBA{0x1f, 0x29, 0x37, 0xff},
		Muted:       color.RGBA{0x6b, 0x72, 0x80, 0xff},
		Accent:      color.RGBA{0x3b, 0x82, 0xf6, 0xff},
	}
}

func DarkPalette() Palette {
	return Palette{
		Background:  color.RGBA{0x11, 0x18, 0x27, 0xff},
		Grid:        color.RGBA{0x37, 0x41, 0x51, 0xff},
		Card:        color.RGBA{0x1f, 0x29, 0x37, 0xff},
		CardBorder:  color.RGBA{0x4b, 0x55, 0x63, 0xff},
		Placeholder: color.RGBA{0x6b, 0x72, 0x80, 0xff},
		Shadow:      color.RGBA{0x00, 0x00, 0x00, 0x59},
		DragOver:    color.RGBA{0x60, 0xa5, 0xfa, 0xff},
		Chrome:      color.RGBA{0x1f, 0x29, 0x37, 0xf0},
		Text:        color.RGBA{0xf9, 0xfa, 0xfb, 0xff},
		Muted:       color.RGBA{0x9c, 0xa3, 0xaf, 0xff},
		Accent:      color.RGBA{0x60, 0xa5, 0xfa, 0xff},
	}
}

// PaletteFor returns the palette for the given scheme.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette()
	}
	return LightPalette()
}
