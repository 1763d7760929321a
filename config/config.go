// Package config loads photo-board settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window      WindowConfig      `mapstructure:"window"`
	Board       BoardConfig       `mapstructure:"board"`
	Gesture     GestureConfig     `mapstructure:"gesture"`
	Layout      LayoutConfig      `mapstructure:"layout"`
	Appearance  AppearanceConfig  `mapstructure:"appearance"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Intake      IntakeConfig      `mapstructure:"intake"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type BoardConfig struct {
	// InitialCards are scattered on startup.
	InitialCards int `mapstructure:"initial_cards"`
	// AddBatch is how many cards the add button creates.
	AddBatch  int     `mapstructure:"add_batch"`
	CardSize  float64 `mapstructure:"card_size"`
	Landscape bool    `mapstructure:"landscape"`
}

type GestureConfig struct {
	LongPressMS   int     `mapstructure:"long_press_ms"`
	DoubleTapMS   int     `mapstructure:"double_tap_ms"`
	WheelStep     float64 `mapstructure:"wheel_step"`
	DoubleTapStep float64 `mapstructure:"double_tap_step"`
}

// LayoutConfig selects the placement strategy. An empty script keeps the
// random scatter.
type LayoutConfig struct {
	Script     string `mapstructure:"script"`
	ScriptFile string `mapstructure:"script_file"`
}

type AppearanceConfig struct {
	// ColorScheme is "default", "prefer-dark" or "prefer-light".
	ColorScheme string `mapstructure:"color_scheme"`
}

type PreferencesConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type IntakeConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 800, Title: "Photo Board"},
		Board: BoardConfig{
			InitialCards: 6,
			AddBatch:     3,
			CardSize:     200,
		},
		Gesture: GestureConfig{
			LongPressMS:   800,
			DoubleTapMS:   500,
			WheelStep:     5,
			DoubleTapStep: 15,
		},
		Appearance:  AppearanceConfig{ColorScheme: "default"},
		Preferences: PreferencesConfig{Backend: "yaml"},
		Intake:      IntakeConfig{Concurrency: 4},
		Logging:     LoggingConfig{Level: "info", Format: "console"},
	}
}

func validate(c *Config) error {
	var problems []string
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, "window.width and window.height must be positive")
	}
	if c.Board.InitialCards < 0 {
		problems = append(problems, "board.initial_cards must be non-negative")
	}
	if c.Board.AddBatch <= 0 {
		problems = append(problems, "board.add_batch must be positive")
	}
	if c.Board.CardSize <= 0 {
		problems = append(problems, "board.card_size must be positive")
	}
	if c.Gesture.LongPressMS <= 0 || c.Gesture.DoubleTapMS <= 0 {
		problems = append(problems, "gesture thresholds must be positive")
	}
	switch strings.ToLower(c.Appearance.ColorScheme) {
	case "", "default", "prefer-dark", "dark", "prefer-light", "light":
	default:
		problems = append(problems, fmt.Sprintf("appearance.color_scheme %q is not one of default, prefer-dark, prefer-light", c.Appearance.ColorScheme))
	}
	switch c.Preferences.Backend {
	case "", "yaml", "sqlite", "memory":
	default:
		problems = append(problems, fmt.Sprintf("preferences.backend %q is not one of yaml, sqlite, memory", c.Preferences.Backend))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of console, json", c.Logging.Format))
	}
	if c.Intake.Concurrency < 0 {
		problems = append(problems, "intake.concurrency must be non-negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(problems, "\n  - "))
	}
	return nil
}
