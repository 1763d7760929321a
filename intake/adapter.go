package intake

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"photo-board/board"
	"photo-board/logging"
)

// Result is a decoded image bound for a card.
type Result struct {
	Card  board.CardID
	URI   string
	Name  string
	Image image.Image
}

// Adapter decodes files off the UI goroutine and hands results back through
// Drain. It implements board.Files.
type Adapter struct {
	ctx     context.Context
	cancel  context.CancelFunc
	picker  Picker
	picking atomic.Bool
	results chan Result
	wg      sync.WaitGroup
	seq     atomic.Uint64
}

func NewAdapter(ctx context.Context, picker Picker) *Adapter {
	ctx, cancel := context.WithCancel(logging.WithComponent(ctx, "intake"))
	return &Adapter{
		ctx:     ctx,
		cancel:  cancel,
		picker:  picker,
		results: make(chan Result, 64),
	}
}

// Pick shows the picker and loads the chosen file into the card. Only one
// picker is open at a time; picks requested meanwhile are dropped.
func (a *Adapter) Pick(id board.CardID) {
	if a.picker == nil {
		return
	}
	if !a.picking.CompareAndSwap(false, true) {
		logging.FromContext(a.ctx).Debug().Stringer("card", id).Msg("file picker already open")
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		f, err := a.picker.Pick()
		a.picking.Store(false)
		if errors.Is(err, ErrCanceled) {
			return
		}
		if err != nil {
			logging.FromContext(a.ctx).Warn().Err(err).Stringer("card", id).Msg("file picker failed")
			return
		}
		a.load(id, f)
	}()
}

// Load decodes f in the background.
func (a *Adapter) Load(id board.CardID, f board.File) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.load(id, f)
	}()
}

func (a *Adapter) load(id board.CardID, f board.File) {
	log := logging.FromContext(a.ctx)
	d, err := DecodeFile(f)
	if errors.Is(err, ErrNotImage) {
		log.Debug().Str("file", f.Name()).Str("mime", d.MIME).Msg("ignoring non-image file")
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("file", f.Name()).Msg("failed to load image")
		return
	}

	r := Result{
		Card:  id,
		URI:   fmt.Sprintf("image:%d/%s", a.seq.Add(1), d.Name),
		Name:  d.Name,
		Image: d.Image,
	}
	select {
	case a.results <- r:
		log.Debug().Stringer("card", id).Str("file", d.Name).Str("format", d.Format).Msg("image decoded")
	case <-a.ctx.Done():
	}
}

// Drain returns every result ready so far without blocking.
func (a *Adapter) Drain() []Result {
	var out []Result
	for {
		select {
		case r := <-a.results:
			out = append(out, r)
		default:
			return out
		}
	}
}

// Wait blocks until all pending loads have finished.
func (a *Adapter) Wait() {
	a.wg.Wait()
}

// Close abandons undelivered results and waits for the workers to exit.
// An open picker still has to be dismissed before Close returns.
func (a *Adapter) Close() {
	a.cancel()
	a.wg.Wait()
}

// LoadAll decodes files concurrently, at most limit at a time, and returns
// the images in input order. Non-image files are skipped. Any other failure
// cancels the rest.
func LoadAll(ctx context.Context, files []board.File, limit int) ([]Decoded, error) {
	out := make([]Decoded, len(files))
	ok := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := DecodeFile(f)
			if errors.Is(err, ErrNotImage) {
				logging.FromContext(ctx).Debug().Str("file", f.Name()).Msg("skipping non-image file")
				return nil
			}
			if err != nil {
				return err
			}
			out[i], ok[i] = d, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	decoded := out[:0]
	for i, d := range out {
		if ok[i] {
			decoded = append(decoded, d)
		}
	}
	return decoded, nil
}
