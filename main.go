package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"photo-board/board"
	"photo-board/config"
	"photo-board/geometry"
	"photo-board/intake"
	"photo-board/logging"
	"photo-board/prefs"
	"photo-board/theme"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "photo-board [images...]",
		Short: "A board of photo cards you can scatter, drag and rotate",
		Long: `photo-board opens a window of placeholder cards. Click a card to pick an
image, drop a file on it, drag it around, scroll to rotate it and long-press
or right-click to delete it. Image files or directories given on the command
line are loaded into the first cards.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.NewManager(configFile)
			if err != nil {
				return err
			}
			flags := map[string]string{
				"board.initial_cards": "cards",
				"board.landscape":     "landscape",
				"logging.level":       "log-level",
			}
			for key, name := range flags {
				if err := m.Viper().BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return fmt.Errorf("failed to bind --%s: %w", name, err)
				}
			}
			if err := m.Load(); err != nil {
				return err
			}
			return run(cmd.Context(), m, args)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/photo-board/photo-board.yaml)")
	cmd.Flags().Int("cards", config.DefaultConfig().Board.InitialCards, "number of cards on startup")
	cmd.Flags().Bool("landscape", false, "start with landscape cards")
	cmd.Flags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	return cmd
}

func run(ctx context.Context, m *config.Manager, args []string) error {
	cfg := m.Get()

	// Component loggers are built once, so the root logger lets everything
	// through and the global level does the filtering. A config reload can
	// then move the level either way.
	logger := logging.NewFromConfigValues("trace", cfg.Logging.Format)
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	ctx = logging.WithContext(ctx, logger)
	log := logging.FromContext(ctx)
	if f := m.File(); f != "" {
		log.Debug().Str("file", f).Msg("configuration loaded")
	}

	store, err := prefs.Open(ctx, cfg.Preferences.Backend, cfg.Preferences.Path)
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close preferences")
		}
	}()
	themes := theme.NewController(ctx, store, theme.ResolveColorScheme(cfg.Appearance.ColorScheme))

	placer, err := newPlacer(ctx, &cfg, m.File(), nil)
	if err != nil {
		return err
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	images, err := intake.LoadAll(ctx, files, cfg.Intake.Concurrency)
	if err != nil {
		return fmt.Errorf("failed to load images: %w", err)
	}

	game := NewGame(ctx, GameOptions{
		Config:     cfg,
		ConfigFile: m.File(),
		Theme:      themes,
		Placer:     placer,
		Picker:     intake.DialogPicker{Title: "Choose an image"},
		Preload:    images,
		Face:       LoadUIFont(ctx, 14),
	})
	if m.File() != "" {
		m.OnChange(game.ConfigChanged)
		m.Watch()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	game.intake.Close()
	return nil
}

// newPlacer returns the placer for cfg, reusing prev when it is of the
// right kind so a reload keeps its random source.
func newPlacer(ctx context.Context, cfg *config.Config, configFile string, prev geometry.Placer) (geometry.Placer, error) {
	script, err := cfg.LayoutScript(configFile)
	if err != nil {
		return nil, err
	}
	if script == "" {
		if r, ok := prev.(*geometry.Random); ok {
			return r, nil
		}
		return geometry.NewRandom(nil), nil
	}
	if s, ok := prev.(*geometry.Scripted); ok {
		if err := s.SetScript(script); err != nil {
			return nil, err
		}
		return s, nil
	}
	return geometry.NewScripted(ctx, "layout", script, nil)
}

// collectFiles expands directories one level deep into the files inside.
func collectFiles(paths []string) ([]board.File, error) {
	var files []board.File
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, intake.FromPath(p))
			continue
		}
		inDir, err := intake.FilesIn(os.DirFS(filepath.Clean(p)))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", p, err)
		}
		files = append(files, inDir...)
	}
	return files, nil
}
