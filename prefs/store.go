// Package prefs stores small string preferences such as the theme choice.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrClosed is returned by a store used after Close.
var ErrClosed = errors.New("prefs: store closed")

// Store is a string key-value store. A missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultDir is $XDG_CONFIG_HOME/photo-board, or the OS equivalent.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "photo-board"), nil
}

// Open returns the store for backend. An empty path selects the default
// file inside DefaultDir.
func Open(ctx context.Context, backend, path string) (Store, error) {
	if backend == BackendMemory {
		return NewMemory(), nil
	}
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		name := "preferences.yaml"
		if backend == BackendSQLite {
			name = "preferences.db"
		}
		path = filepath.Join(dir, name)
	}
	switch backend {
	case "", BackendYAML:
		return NewFile(ctx, path)
	case BackendSQLite:
		return NewSQLite(ctx, path)
	}
	return nil, fmt.Errorf("unknown preference backend %q", backend)
}
