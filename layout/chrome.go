package layout

import "unicode"

// Chrome tracks whether the header with the control surface is shown.
type Chrome struct {
	visible   bool
	listeners []func(visible bool)
}

func NewChrome() *Chrome {
	return &Chrome{visible: true}
}

func (c *Chrome) Visible() bool {
	return c.visible
}

func (c *Chrome) OnChange(fn func(visible bool)) {
	c.listeners = append(c.listeners, fn)
}

// HandleKey toggles the header on 'h'. Keys typed into a focused text input
// never toggle it. It reports whether the key was consumed.
func (c *Chrome) HandleKey(r rune, textFocused bool) bool {
	if textFocused || unicode.ToLower(r) != 'h' {
		return false
	}
	c.visible = !c.visible
	for _, fn := range c.listeners {
		fn(c.visible)
	}
	return true
}
