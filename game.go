package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"photo-board/board"
	"photo-board/canvas"
	"photo-board/config"
	"photo-board/geometry"
	"photo-board/gesture"
	"photo-board/input"
	"photo-board/intake"
	"photo-board/layout"
	"photo-board/logging"
	"photo-board/theme"
	"photo-board/ui"
)

// GameOptions are the collaborators main builds before the window opens.
type GameOptions struct {
	Config     config.Config
	ConfigFile string
	Theme      *theme.Controller
	Placer     geometry.Placer
	Picker     intake.Picker
	Preload    []intake.Decoded
	Face       font.Face
}

type Game struct {
	ctx        context.Context
	cfg        config.Config
	configFile string

	reg     *board.Registry
	board   *board.Board
	sprites *Sprites
	machine *gesture.Machine
	intake  *intake.Adapter

	model  *layout.Model
	chrome *layout.Chrome
	layout *layout.Controller
	theme  *theme.Controller
	ui     *ui.System
	input  *input.Translator
	face   font.Face

	placer     geometry.Placer
	preload    []intake.Decoded
	seeded     bool
	reloads    chan config.Config
	systemDark bool
	lastPoll   time.Time

	vp           canvas.Viewport
	screenWidth  int
	screenHeight int
}

func NewGame(ctx context.Context, opts GameOptions) *Game {
	cfg := opts.Config
	g := &Game{
		ctx:        logging.WithComponent(ctx, "game"),
		cfg:        cfg,
		configFile: opts.ConfigFile,
		theme:      opts.Theme,
		face:       opts.Face,
		placer:     opts.Placer,
		preload:    opts.Preload,
		reloads:    make(chan config.Config, 1),
		systemDark: theme.ResolveColorScheme(cfg.Appearance.ColorScheme),
		lastPoll:   time.Now(),
	}

	g.model = layout.NewModel(layout.Settings{
		SizeValue: cfg.Board.CardSize,
		Landscape: cfg.Board.Landscape,
		Dark:      opts.Theme.Dark(),
	})
	g.sprites = NewSprites()
	g.reg = board.NewRegistry(g.sprites, g.model.Settings().CardSize())
	g.intake = intake.NewAdapter(ctx, opts.Picker)
	g.board = board.New(ctx, g.reg, g.intake)

	g.machine = gesture.NewMachine(ctx, g.board, gesture.NewScheduler(time.Now()), thresholds(cfg.Gesture))
	g.reg.OnRemove(func(id board.CardID) {
		g.machine.Dispatch(gesture.CardRemoved(id))
	})

	g.chrome = layout.NewChrome()
	g.chrome.OnChange(func(visible bool) {
		logging.FromContext(g.ctx).Debug().Bool("visible", visible).Msg("header toggled")
	})
	g.ui = ui.NewSystem(g.model, g.chrome, g, opts.Face)
	g.layout = layout.NewController(ctx, g.reg, opts.Placer, g.model, g.ui)
	layout.BindTheme(g.model, opts.Theme)

	g.input = input.NewTranslator(ctx, g.reg, g.machine, g.ui)
	g.input.OnKey = func(r rune) bool {
		return g.chrome.HandleKey(r, false)
	}
	return g
}

func thresholds(c config.GestureConfig) gesture.Thresholds {
	return gesture.Thresholds{
		LongPress:     time.Duration(c.LongPressMS) * time.Millisecond,
		DoubleTap:     time.Duration(c.DoubleTapMS) * time.Millisecond,
		WheelStep:     c.WheelStep,
		DoubleTapStep: c.DoubleTapStep,
	}
}

// AddCards scatters one batch of empty cards.
func (g *Game) AddCards() {
	g.layout.AddCards(g.cfg.Board.AddBatch)
}

func (g *Game) ClearAll() {
	g.reg.Clear()
}

// FollowSystemTheme drops the stored preference.
func (g *Game) FollowSystemTheme() {
	g.theme.ClearPreference()
}

// ConfigChanged queues a reloaded configuration for the next tick. It may
// be called from any goroutine.
func (g *Game) ConfigChanged(cfg *config.Config) {
	select {
	case g.reloads <- *cfg:
	default:
		// A reload is already queued; replace it with the newer one.
		select {
		case <-g.reloads:
		default:
		}
		g.reloads <- *cfg
	}
}

func (g *Game) Update() error {
	now := time.Now()
	g.applyReloads()
	g.machine.Tick(now)
	g.pollSystemTheme(now)

	g.ui.Resize(g.screenWidth, g.screenHeight)
	g.vp = canvas.Fit(g.screenWidth, g.screenHeight, g.ui.HeaderHeight(), ContainerPadding)
	g.layout.Resize(g.vp.Screen(), g.vp.Container())
	g.seed()
	g.drainIntake()

	g.ui.Update()
	g.input.SetViewport(g.vp)
	g.input.Update(input.Ebiten{})
	return nil
}

// seed scatters the initial cards once the container size is known, and
// fills the first of them with the images given on the command line.
func (g *Game) seed() {
	if g.seeded {
		return
	}
	g.seeded = true

	n := max(g.cfg.Board.InitialCards, len(g.preload))
	cards := g.layout.AddCards(n)
	for i, d := range g.preload {
		uri := fmt.Sprintf("file:%d/%s", i+1, d.Name)
		g.sprites.Add(uri, d.Image)
		g.board.Populate(cards[i].ID, uri)
	}
	logging.FromContext(g.ctx).Info().
		Int("cards", n).
		Int("images", len(g.preload)).
		Stringer("mode", g.layout.Mode()).
		Msg("board ready")
	g.preload = nil
}

func (g *Game) drainIntake() {
	for _, r := range g.intake.Drain() {
		if _, ok := g.reg.Get(r.Card); !ok {
			logging.FromContext(g.ctx).Debug().Stringer("card", r.Card).Msg("dropping image for removed card")
			continue
		}
		g.sprites.Add(r.URI, r.Image)
		g.board.Populate(r.Card, r.URI)
	}
}

func (g *Game) pollSystemTheme(now time.Time) {
	if now.Sub(g.lastPoll) < SystemThemePoll {
		return
	}
	g.lastPoll = now
	dark := theme.ResolveColorScheme(g.cfg.Appearance.ColorScheme)
	if dark != g.systemDark {
		g.systemDark = dark
		g.theme.SystemChanged(dark)
	}
}

func (g *Game) applyReloads() {
	select {
	case cfg := <-g.reloads:
		g.applyConfig(cfg)
	default:
	}
}

func (g *Game) applyConfig(cfg config.Config) {
	log := logging.FromContext(g.ctx)
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))

	placer, err := newPlacer(g.ctx, &cfg, g.configFile, g.placer)
	if err != nil {
		log.Warn().Err(err).Msg("keeping previous layout script")
	} else if placer != g.placer {
		g.placer = placer
		g.layout.SetPlacer(placer)
	}

	g.cfg.Board.AddBatch = cfg.Board.AddBatch
	g.cfg.Appearance = cfg.Appearance
	g.cfg.Logging = cfg.Logging
	log.Info().Str("level", cfg.Logging.Level).Msg("configuration reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.theme.Palette()
	canvas.DrawBackground(screen, g.vp, palette)

	var lifted []*board.Card
	for _, c := range g.reg.Stack() {
		if c.Dragging {
			lifted = append(lifted, c)
			continue
		}
		g.drawCard(screen, c, palette)
	}
	for _, c := range lifted {
		g.drawCard(screen, c, palette)
	}

	g.ui.Draw(screen, palette)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
