package theme_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-board/prefs"
	"photo-board/theme"
)

func TestController_StoredPreferenceWins(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemory()
	require.NoError(t, store.Set(ctx, theme.PreferenceKey, "false"))

	c := theme.NewController(ctx, store, true)
	assert.False(t, c.Dark())
	assert.False(t, c.Following())

	c.SystemChanged(false)
	c.SystemChanged(true)
	assert.False(t, c.Dark())
}

func TestController_FollowsSystemWithoutPreference(t *testing.T) {
	c := theme.NewController(context.Background(), prefs.NewMemory(), true)
	assert.True(t, c.Dark())

	var seen []bool
	c.Subscribe(func(dark bool) { seen = append(seen, dark) })

	c.SystemChanged(false)
	c.SystemChanged(false)
	assert.False(t, c.Dark())
	assert.Equal(t, []bool{false}, seen)
}

func TestController_TogglePersists(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemory()
	c := theme.NewController(ctx, store, false)

	c.Toggle()
	assert.True(t, c.Dark())
	v, ok, err := store.Get(ctx, theme.PreferenceKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	c.Toggle()
	v, _, _ = store.Get(ctx, theme.PreferenceKey)
	assert.Equal(t, "false", v)

	c.SystemChanged(true)
	assert.False(t, c.Dark())
}

func TestController_ClearPreferenceReturnsToSystem(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemory()
	c := theme.NewController(ctx, store, false)
	c.SetDark(true)
	c.SystemChanged(false)

	c.ClearPreference()
	assert.False(t, c.Dark())
	assert.True(t, c.Following())
	_, ok, _ := store.Get(ctx, theme.PreferenceKey)
	assert.False(t, ok)

	c.SystemChanged(true)
	assert.True(t, c.Dark())
}

func TestController_UnsubscribeStopsNotifications(t *testing.T) {
	c := theme.NewController(context.Background(), prefs.NewMemory(), false)
	calls := 0
	stop := c.Subscribe(func(bool) { calls++ })
	c.Toggle()
	stop()
	c.Toggle()
	assert.Equal(t, 1, calls)
}

type brokenStore struct{}

var errBroken = errors.New("disk on fire")

func (brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, errBroken }
func (brokenStore) Set(context.Context, string, string) error        { return errBroken }
func (brokenStore) Delete(context.Context, string) error             { return errBroken }

func TestController_StoreErrorsAreNotFatal(t *testing.T) {
	c := theme.NewController(context.Background(), brokenStore{}, true)
	assert.True(t, c.Dark())

	c.Toggle()
	assert.False(t, c.Dark())
	c.ClearPreference()
	assert.True(t, c.Dark())
}

func TestDetectSystemDark(t *testing.T) {
	tests := []struct {
		name   string
		scheme string
		gtk    string
		want   bool
	}{
		{name: "nothing set", want: false},
		{name: "gtk dark", gtk: "Adwaita:dark", want: true},
		{name: "gtk light", gtk: "Adwaita", want: false},
		{name: "override beats gtk", scheme: "light", gtk: "Adwaita-dark", want: false},
		{name: "override dark", scheme: "prefer-dark", want: true},
		{name: "unknown override ignored", scheme: "sepia", gtk: "Yaru-dark", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(theme.SchemeEnv, tt.scheme)
			t.Setenv("GTK_THEME", tt.gtk)
			assert.Equal(t, tt.want, theme.DetectSystemDark())
		})
	}
}

func TestResolveColorScheme(t *testing.T) {
	t.Setenv(theme.SchemeEnv, "")
	t.Setenv("GTK_THEME", "Adwaita-dark")

	assert.True(t, theme.ResolveColorScheme("default"))
	assert.False(t, theme.ResolveColorScheme("prefer-light"))
	assert.True(t, theme.ResolveColorScheme("DARK"))
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, theme.DarkPalette(), theme.PaletteFor(true))
	assert.Equal(t, theme.LightPalette(), theme.PaletteFor(false))
	assert.NotEqual(t, theme.LightPalette().Background, theme.DarkPalette().Background)
}
