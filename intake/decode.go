// Package intake turns picked or dropped files into images for cards.
package intake

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"net/http"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"photo-board/board"
)

// ErrNotImage marks a file whose content is not an image. Callers drop such
// files without telling the user.
var ErrNotImage = errors.New("intake: not an image")

// MaxTextureSide bounds the larger side of a decoded image.
const MaxTextureSide = 2048

const sniffLen = 512

// Sniff returns the MIME type of a file from its leading bytes.
func Sniff(head []byte) string {
	mime := http.DetectContentType(head)
	if strings.HasPrefix(mime, "image/") {
		return mime
	}
	// DetectContentType has no TIFF signature.
	if bytes.HasPrefix(head, []byte("II*\x00")) || bytes.HasPrefix(head, []byte("MM\x00*")) {
		return "image/tiff"
	}
	return mime
}

// Decoded is an image ready to be shown on a card.
type Decoded struct {
	Name   string
	MIME   string
	Format string
	Image  image.Image
}

// Decode sniffs r and decodes it when it holds an image.
func Decode(r io.Reader) (Decoded, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Decoded{}, fmt.Errorf("failed to read file: %w", err)
	}
	head = head[:n]

	mime := Sniff(head)
	if !strings.HasPrefix(mime, "image/") {
		return Decoded{MIME: mime}, fmt.Errorf("%w: %s", ErrNotImage, mime)
	}

	img, format, err := image.Decode(io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return Decoded{MIME: mime}, fmt.Errorf("failed to decode %s: %w", mime, err)
	}
	return Decoded{MIME: mime, Format: format, Image: Downscale(img, MaxTextureSide)}, nil
}

// DecodeFile opens f and decodes it.
func DecodeFile(f board.File) (Decoded, error) {
	rc, err := f.Open()
	if err != nil {
		return Decoded{}, fmt.Errorf("failed to open %s: %w", f.Name(), err)
	}
	defer func() { _ = rc.Close() }()

	d, err := Decode(rc)
	d.Name = f.Name()
	return d, err
}

// Downscale shrinks img so neither side exceeds maxSide, keeping the aspect
// ratio. Smaller images are returned as is.
func Downscale(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}
	scale := float64(maxSide) / float64(max(w, h))
	dw := max(1, int(float64(w)*scale+0.5))
	dh := max(1, int(float64(h)*scale+0.5))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
