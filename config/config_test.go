package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-board/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo-board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestManager_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m, err := config.NewManager("")
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, *config.DefaultConfig(), cfg)
	assert.Empty(t, m.File())
}

func TestManager_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
board:
  initial_cards: 9
  card_size: 240
  landscape: true
gesture:
  long_press_ms: 600
layout:
  script: |
    x = margin
    y = margin
appearance:
  color_scheme: prefer-dark
preferences:
  backend: sqlite
`)
	m, err := config.NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 9, cfg.Board.InitialCards)
	assert.Equal(t, 240.0, cfg.Board.CardSize)
	assert.True(t, cfg.Board.Landscape)
	assert.Equal(t, 600, cfg.Gesture.LongPressMS)
	assert.Equal(t, 500, cfg.Gesture.DoubleTapMS)
	assert.Equal(t, "prefer-dark", cfg.Appearance.ColorScheme)
	assert.Equal(t, "sqlite", cfg.Preferences.Backend)
	assert.Equal(t, path, m.File())

	script, err := cfg.LayoutScript(m.File())
	require.NoError(t, err)
	assert.Contains(t, script, "x = margin")
}

func TestManager_MissingExplicitFileFails(t *testing.T) {
	m, err := config.NewManager(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Error(t, m.Load())
}

func TestManager_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")
	t.Setenv("PHOTOBOARD_LOG_LEVEL", "debug")
	t.Setenv("PHOTOBOARD_BOARD_ADD_BATCH", "5")

	m, err := config.NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, "debug", m.Get().Logging.Level)
	assert.Equal(t, 5, m.Get().Board.AddBatch)
}

func TestManager_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
board:
  add_batch: 0
appearance:
  color_scheme: sepia
preferences:
  backend: etcd
`)
	m, err := config.NewManager(path)
	require.NoError(t, err)

	err = m.Load()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "board.add_batch")
	assert.Contains(t, err.Error(), "sepia")
	assert.Contains(t, err.Error(), "etcd")
}

func TestManager_ReloadNotifiesAndKeepsLastGood(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")
	m, err := config.NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var seen []string
	m.OnChange(func(c *config.Config) { seen = append(seen, c.Logging.Level) })

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600))
	require.NoError(t, m.Reload())
	assert.Equal(t, []string{"debug"}, seen)

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o600))
	assert.ErrorIs(t, m.Reload(), config.ErrInvalid)
	assert.Equal(t, "debug", m.Get().Logging.Level)
	assert.Len(t, seen, 1)
}

func TestConfig_LayoutScriptFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grid.star"), []byte("x = 1\ny = 2\n"), 0o600))

	cfg := config.DefaultConfig()
	cfg.Layout.ScriptFile = "grid.star"
	script, err := cfg.LayoutScript(filepath.Join(dir, "photo-board.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1\ny = 2\n", script)

	cfg.Layout.ScriptFile = "missing.star"
	_, err = cfg.LayoutScript(filepath.Join(dir, "photo-board.yaml"))
	assert.Error(t, err)
}
