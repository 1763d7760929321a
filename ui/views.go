package ui

import (
	"image"

	"photo-board/layout"
)

// Actions are the board commands the control surfaces trigger.
type Actions interface {
	AddCards()
	ClearAll()
	FollowSystemTheme()
}

// controls builds one set of widgets bound to the shared model. The toolbar
// and the mobile panel each get their own set; neither holds settings state.
func controls(model *layout.Model, actions Actions, toggleHelp func()) []Widget {
	return []Widget{
		&Button{Label: "Add cards", OnClick: actions.AddCards},
		&Button{Label: "Clear all", OnClick: actions.ClearAll},
		&Toggle{
			Label:    "Landscape",
			Value:    func() bool { return model.Settings().Landscape },
			OnChange: model.SetLandscape,
		},
		&Slider{
			Label:    "Size",
			Min:      layout.MinSize,
			Max:      layout.MaxSize,
			Value:    func() float64 { return model.Settings().SizeValue },
			OnChange: model.SetSize,
		},
		&Toggle{
			Label:    "Dark",
			Value:    func() bool { return model.Settings().Dark },
			OnChange: model.SetDark,
		},
		&Button{Label: "Auto theme", OnClick: actions.FollowSystemTheme},
		&Button{Label: "?", OnClick: toggleHelp},
	}
}

func preferredWidth(w Widget, s Style) int {
	switch w := w.(type) {
	case *Button:
		return TextWidth(s.face(), w.Label) + 24
	case *Toggle:
		return TextWidth(s.face(), w.Label) + 50
	case *Slider:
		return 220
	}
	return 100
}

// Toolbar lays the controls out in a row across the header.
type Toolbar struct {
	Widgets []Widget
}

func (t *Toolbar) Layout(screenW int, s Style) {
	const pad, gap, h = 12, 10, ToolbarHeight - 20
	x := pad
	for _, w := range t.Widgets {
		width := preferredWidth(w, s)
		w.SetBounds(image.Rect(x, 10, x+width, 10+h))
		x += width + gap
	}
}

// MobilePanel is a menu button in a slim header that opens a column of the
// same controls.
type MobilePanel struct {
	Menu    *Button
	Widgets []Widget
	Open    bool
	panel   image.Rectangle
}

func NewMobilePanel(widgets []Widget) *MobilePanel {
	m := &MobilePanel{Widgets: widgets}
	m.Menu = &Button{Label: "Menu", OnClick: func() { m.Open = !m.Open }}
	return m
}

func (m *MobilePanel) Layout(screenW int, s Style) {
	const pad, rowH, gap = 12, 40, 6
	menuW := TextWidth(s.face(), m.Menu.Label) + 24
	m.Menu.SetBounds(image.Rect(screenW-pad-menuW, 8, screenW-pad, MobileBarHeight-8))

	width := min(screenW-2*pad, 320)
	left := screenW - pad - width
	y := MobileBarHeight + pad
	for _, w := range m.Widgets {
		w.SetBounds(image.Rect(left+pad, y, left+width-pad, y+rowH))
		y += rowH + gap
	}
	m.panel = image.Rect(left, MobileBarHeight, left+width, y+pad)
}

// Active is what currently takes pointer input.
func (m *MobilePanel) Active() []Widget {
	if !m.Open {
		return []Widget{m.Menu}
	}
	return append([]Widget{m.Menu}, m.Widgets...)
}

func (m *MobilePanel) Panel() image.Rectangle {
	if !m.Open {
		return image.Rectangle{}
	}
	return m.panel
}
