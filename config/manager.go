package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"photo-board/logging"
)

// Manager loads the configuration and reloads it when the file changes.
type Manager struct {
	viper     *viper.Viper
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

// NewManager reads configFile when given, otherwise photo-board.yaml from
// the user config directory or the working directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("photo-board")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "photo-board"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PHOTOBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("logging.level", "PHOTOBOARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PHOTOBOARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PHOTOBOARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PHOTOBOARD_LOG_FORMAT: %w", err)
	}

	m := &Manager{viper: v, explicit: configFile != ""}
	m.setDefaults()
	return m, nil
}

// Viper exposes the underlying instance for flag binding.
func (m *Manager) Viper() *viper.Viper {
	return m.viper
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()
	m.viper.SetDefault("window.width", d.Window.Width)
	m.viper.SetDefault("window.height", d.Window.Height)
	m.viper.SetDefault("window.title", d.Window.Title)
	m.viper.SetDefault("board.initial_cards", d.Board.InitialCards)
	m.viper.SetDefault("board.add_batch", d.Board.AddBatch)
	m.viper.SetDefault("board.card_size", d.Board.CardSize)
	m.viper.SetDefault("board.landscape", d.Board.Landscape)
	m.viper.SetDefault("gesture.long_press_ms", d.Gesture.LongPressMS)
	m.viper.SetDefault("gesture.double_tap_ms", d.Gesture.DoubleTapMS)
	m.viper.SetDefault("gesture.wheel_step", d.Gesture.WheelStep)
	m.viper.SetDefault("gesture.double_tap_step", d.Gesture.DoubleTapStep)
	m.viper.SetDefault("layout.script", d.Layout.Script)
	m.viper.SetDefault("layout.script_file", d.Layout.ScriptFile)
	m.viper.SetDefault("appearance.color_scheme", d.Appearance.ColorScheme)
	m.viper.SetDefault("preferences.backend", d.Preferences.Backend)
	m.viper.SetDefault("preferences.path", d.Preferences.Path)
	m.viper.SetDefault("intake.concurrency", d.Intake.Concurrency)
	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
}

// Load reads the file (a missing file means defaults), the environment and
// any bound flags, and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reload()
}

func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || m.explicit {
			return fmt.Errorf("failed to read config file %s: %w", m.viper.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", m.viper.ConfigFileUsed(), err)
	}
	if err := validate(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	return *m.config
}

// File is the config file in use, empty when running on defaults.
func (m *Manager) File() string {
	return m.viper.ConfigFileUsed()
}

// OnChange registers fn to run after every successful reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Reload re-reads the configuration and notifies callbacks. A failed reload
// keeps the previous configuration.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	cfg := *m.config
	callbacks := append(([]func(*Config))(nil), m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(&cfg)
	}
	return nil
}

// Watch reloads the configuration whenever the file changes on disk.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return
	}
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromConfigValues(m.Get().Logging.Level, m.Get().Logging.Format)
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")
		if err := m.Reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
		}
	})
	m.viper.WatchConfig()
	m.watching = true
}

// LayoutScript returns the placement script, reading layout.script_file
// relative to the config file when set.
func (c *Config) LayoutScript(configFile string) (string, error) {
	if c.Layout.Script != "" || c.Layout.ScriptFile == "" {
		return c.Layout.Script, nil
	}
	path := c.Layout.ScriptFile
	if !filepath.IsAbs(path) && configFile != "" {
		path = filepath.Join(filepath.Dir(configFile), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read layout script: %w", err)
	}
	return string(data), nil
}
