package prefs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-board/prefs"
)

func backends(t *testing.T) map[string]func() prefs.Store {
	t.Helper()
	ctx := context.Background()
	return map[string]func() prefs.Store{
		"memory": func() prefs.Store { return prefs.NewMemory() },
		"yaml": func() prefs.Store {
			s, err := prefs.NewFile(ctx, filepath.Join(t.TempDir(), "nested", "preferences.yaml"))
			require.NoError(t, err)
			return s
		},
		"sqlite": func() prefs.Store {
			s, err := prefs.NewSQLite(ctx, filepath.Join(t.TempDir(), "preferences.db"))
			require.NoError(t, err)
			return s
		},
	}
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open()

			_, ok, err := s.Get(ctx, "darkMode")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, "darkMode", "true"))
			v, ok, err := s.Get(ctx, "darkMode")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "true", v)

			require.NoError(t, s.Set(ctx, "darkMode", "false"))
			v, _, _ = s.Get(ctx, "darkMode")
			assert.Equal(t, "false", v)

			require.NoError(t, s.Delete(ctx, "darkMode"))
			require.NoError(t, s.Delete(ctx, "darkMode"))
			_, ok, err = s.Get(ctx, "darkMode")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Close())
			_, _, err = s.Get(ctx, "darkMode")
			assert.ErrorIs(t, err, prefs.ErrClosed)
			assert.ErrorIs(t, s.Set(ctx, "darkMode", "true"), prefs.ErrClosed)
		})
	}
}

func TestFile_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "preferences.yaml")

	s, err := prefs.NewFile(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "darkMode", "true"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "darkMode: \"true\"")

	reopened, err := prefs.NewFile(ctx, path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFile_RejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preferences: [unclosed"), 0o600))

	_, err := prefs.NewFile(context.Background(), path)
	assert.Error(t, err)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "preferences.db")

	s, err := prefs.NewSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "darkMode", "true"))
	require.NoError(t, s.Close())

	reopened, err := prefs.NewSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	v, ok, err := reopened.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := prefs.Open(ctx, prefs.BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &prefs.Memory{}, s)

	s, err = prefs.Open(ctx, "", filepath.Join(dir, "p.yaml"))
	require.NoError(t, err)
	assert.IsType(t, &prefs.File{}, s)

	_, err = prefs.Open(ctx, "etcd", filepath.Join(dir, "p"))
	assert.Error(t, err)
}
