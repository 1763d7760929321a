package theme

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"photo-board/logging"
)

// PreferenceKey is where the explicit light/dark choice is stored.
const PreferenceKey = "darkMode"

// Store is the key-value store the preference lives in.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Controller resolves the effective scheme from the stored preference and
// the OS signal. A stored preference wins until it is cleared.
type Controller struct {
	ctx   context.Context
	store Store

	mu         sync.Mutex
	systemDark bool
	stored     bool
	dark       bool
	subs       map[int]func(dark bool)
	nextSub    int
}

func NewController(ctx context.Context, store Store, systemDark bool) *Controller {
	c := &Controller{
		ctx:        logging.WithComponent(ctx, "theme"),
		store:      store,
		systemDark: systemDark,
		dark:       systemDark,
		subs:       make(map[int]func(bool)),
	}
	log := logging.FromContext(c.ctx)

	v, ok, err := store.Get(c.ctx, PreferenceKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read theme preference")
	}
	if err == nil && ok {
		c.stored = true
		c.dark = v == "true"
	}
	log.Debug().
		Bool("system_dark", systemDark).
		Bool("stored", c.stored).
		Bool("dark", c.dark).
		Msg("theme controller initialized")
	return c
}

func (c *Controller) Dark() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dark
}

// Following reports whether no preference is stored and the OS signal applies.
func (c *Controller) Following() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.stored
}

func (c *Controller) Palette() Palette {
	return PaletteFor(c.Dark())
}

func (c *Controller) Toggle() {
	c.SetDark(!c.Dark())
}

// SetDark applies and persists an explicit choice.
func (c *Controller) SetDark(dark bool) {
	if err := c.store.Set(c.ctx, PreferenceKey, strconv.FormatBool(dark)); err != nil {
		logging.FromContext(c.ctx).Warn().Err(err).Msg("failed to persist theme preference")
	}
	c.mu.Lock()
	c.stored = true
	c.mu.Unlock()
	c.apply(dark)
}

// SystemChanged reports a new OS scheme. It only takes effect while no
// preference is stored.
func (c *Controller) SystemChanged(dark bool) {
	c.mu.Lock()
	c.systemDark = dark
	follow := !c.stored
	c.mu.Unlock()
	if follow {
		c.apply(dark)
	}
}

// ClearPreference forgets the stored choice and follows the OS again.
func (c *Controller) ClearPreference() {
	if err := c.store.Delete(c.ctx, PreferenceKey); err != nil {
		logging.FromContext(c.ctx).Warn().Err(err).Msg("failed to clear theme preference")
	}
	c.mu.Lock()
	c.stored = false
	system := c.systemDark
	c.mu.Unlock()
	c.apply(system)
}

// Subscribe registers fn for scheme changes and returns a function that
// removes it.
func (c *Controller) Subscribe(fn func(dark bool)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Controller) apply(dark bool) {
	c.mu.Lock()
	if c.dark == dark {
		c.mu.Unlock()
		return
	}
	c.dark = dark
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(bool), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.subs[id])
	}
	c.mu.Unlock()

	logging.FromContext(c.ctx).Info().Bool("dark", dark).Msg("theme changed")
	for _, fn := range fns {
		fn(dark)
	}
}
