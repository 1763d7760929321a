package layout

// Theme is the part of the theme controller the settings model talks to.
type Theme interface {
	Dark() bool
	SetDark(dark bool)
	Subscribe(fn func(dark bool)) func()
}

// BindTheme keeps Settings.Dark and the theme in step. A change made through
// a control surface is handed to the theme, which persists it; a change that
// comes from the theme itself (for example the OS switching schemes) only
// updates the model and is not written back.
func BindTheme(m *Model, t Theme) func() {
	m.SetDark(t.Dark())
	stopTheme := t.Subscribe(func(dark bool) {
		m.SetDark(dark)
	})
	stopModel := m.Subscribe(func(prev, next Settings) {
		if prev.Dark != next.Dark && t.Dark() != next.Dark {
			t.SetDark(next.Dark)
		}
	})
	return func() {
		stopTheme()
		stopModel()
	}
}
