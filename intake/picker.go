package intake

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"photo-board/board"
)

// ErrCanceled is returned by a Picker when the user dismissed it.
var ErrCanceled = errors.New("intake: picker canceled")

// Picker asks the user for one file.
type Picker interface {
	Pick() (board.File, error)
}

// DialogPicker opens the native open-file dialog.
type DialogPicker struct {
	Title string
}

var imageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp"}

func (p DialogPicker) Pick() (board.File, error) {
	b := dialog.File().Filter("Images", imageExtensions...)
	if p.Title != "" {
		b = b.Title(p.Title)
	}
	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) || (err == nil && path == "") {
		return nil, ErrCanceled
	}
	if err != nil {
		return nil, fmt.Errorf("file dialog: %w", err)
	}
	return FromPath(path), nil
}
