package intake_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"photo-board/board"
	"photo-board/intake"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{0x40, 0x80, 0xc0, 0xff})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(w, h)))
	return buf.Bytes()
}

func TestDecode_Formats(t *testing.T) {
	var bmpBuf, tiffBuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpBuf, solid(8, 4)))
	require.NoError(t, tiff.Encode(&tiffBuf, solid(8, 4), nil))

	tests := []struct {
		name   string
		data   []byte
		mime   string
		format string
	}{
		{name: "png", data: pngBytes(t, 8, 4), mime: "image/png", format: "png"},
		{name: "bmp", data: bmpBuf.Bytes(), mime: "image/bmp", format: "bmp"},
		{name: "tiff", data: tiffBuf.Bytes(), mime: "image/tiff", format: "tiff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := intake.Decode(bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.mime, d.MIME)
			assert.Equal(t, tt.format, d.Format)
			assert.Equal(t, image.Rect(0, 0, 8, 4), d.Image.Bounds())
		})
	}
}

func TestDecode_RejectsNonImages(t *testing.T) {
	_, err := intake.Decode(bytes.NewReader([]byte("just some notes\n")))
	assert.ErrorIs(t, err, intake.ErrNotImage)

	_, err = intake.Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, intake.ErrNotImage)
}

func TestDecode_CorruptImageIsAnError(t *testing.T) {
	data := pngBytes(t, 4, 4)[:40]
	_, err := intake.Decode(bytes.NewReader(data))
	require.Error(t, err)
	assert.NotErrorIs(t, err, intake.ErrNotImage)
}

func TestDownscale(t *testing.T) {
	small := solid(10, 10)
	assert.Same(t, small, intake.Downscale(small, 64).(*image.RGBA))

	out := intake.Downscale(solid(400, 100), 200)
	assert.Equal(t, image.Rect(0, 0, 200, 50), out.Bounds())

	tall := intake.Downscale(solid(30, 300), 100)
	assert.Equal(t, image.Rect(0, 0, 10, 100), tall.Bounds())
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"cat.png":   {Data: pngBytes(t, 16, 24)},
		"notes.txt": {Data: []byte("not an image")},
		"dog.png":   {Data: pngBytes(t, 24, 16)},
	}
}

func TestAdapter_LoadDeliversThroughDrain(t *testing.T) {
	fsys := testFS(t)
	a := intake.NewAdapter(context.Background(), nil)

	a.Load(1, intake.FromFS(fsys, "cat.png"))
	a.Load(2, intake.FromFS(fsys, "notes.txt"))
	a.Wait()

	results := a.Drain()
	require.Len(t, results, 1)
	assert.Equal(t, board.CardID(1), results[0].Card)
	assert.Equal(t, "cat.png", results[0].Name)
	assert.Contains(t, results[0].URI, "cat.png")
	assert.Equal(t, image.Rect(0, 0, 16, 24), results[0].Image.Bounds())

	assert.Empty(t, a.Drain())
}

func TestAdapter_ReuploadGetsFreshURI(t *testing.T) {
	fsys := testFS(t)
	a := intake.NewAdapter(context.Background(), nil)

	a.Load(1, intake.FromFS(fsys, "cat.png"))
	a.Wait()
	a.Load(1, intake.FromFS(fsys, "cat.png"))
	a.Wait()

	results := a.Drain()
	require.Len(t, results, 2)
	assert.NotEqual(t, results[0].URI, results[1].URI)
}

type stubPicker struct {
	file board.File
	err  error
}

func (p stubPicker) Pick() (board.File, error) { return p.file, p.err }

func TestAdapter_Pick(t *testing.T) {
	fsys := testFS(t)

	a := intake.NewAdapter(context.Background(), stubPicker{file: intake.FromFS(fsys, "dog.png")})
	a.Pick(7)
	a.Wait()
	results := a.Drain()
	require.Len(t, results, 1)
	assert.Equal(t, board.CardID(7), results[0].Card)

	canceled := intake.NewAdapter(context.Background(), stubPicker{err: intake.ErrCanceled})
	canceled.Pick(7)
	canceled.Wait()
	assert.Empty(t, canceled.Drain())
}

// gatedPicker blocks until release is closed and counts how often it was shown.
type gatedPicker struct {
	file    board.File
	release chan struct{}
	shown   *atomic.Int32
}

func (p gatedPicker) Pick() (board.File, error) {
	p.shown.Add(1)
	<-p.release
	return p.file, nil
}

func TestAdapter_OnePickerAtATime(t *testing.T) {
	fsys := testFS(t)
	p := gatedPicker{file: intake.FromFS(fsys, "dog.png"), release: make(chan struct{}), shown: &atomic.Int32{}}
	a := intake.NewAdapter(context.Background(), p)

	a.Pick(1)
	a.Pick(2)
	close(p.release)
	a.Wait()

	assert.Equal(t, int32(1), p.shown.Load())
	results := a.Drain()
	require.Len(t, results, 1)
	assert.Equal(t, board.CardID(1), results[0].Card)

	a.Pick(3)
	a.Wait()
	assert.Equal(t, int32(2), p.shown.Load())
}

func TestAdapter_CloseDoesNotWaitForDrain(t *testing.T) {
	fsys := testFS(t)
	a := intake.NewAdapter(context.Background(), nil)
	for i := 0; i < 80; i++ {
		a.Load(board.CardID(i+1), intake.FromFS(fsys, "cat.png"))
	}

	done := make(chan struct{})
	go func() {
		a.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Close blocked on undrained results")
	}
}

func TestLoadAll(t *testing.T) {
	fsys := testFS(t)
	files, err := intake.FilesIn(fsys)
	require.NoError(t, err)
	require.Len(t, files, 3)

	decoded, err := intake.LoadAll(context.Background(), files, 2)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "cat.png", decoded[0].Name)
	assert.Equal(t, "dog.png", decoded[1].Name)

	_, err = intake.LoadAll(context.Background(), []board.File{intake.FromFS(fsys, "missing.png")}, 1)
	assert.Error(t, err)
}
