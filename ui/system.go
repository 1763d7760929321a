package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"photo-board/layout"
	"photo-board/theme"
)

const (
	ToolbarHeight   = 56
	MobileBarHeight = 48
)

// Pointer is one tick of the primary pointer.
type Pointer struct {
	X, Y         int
	JustPressed  bool
	Pressed      bool
	JustReleased bool
}

// System owns the header: the desktop toolbar, or the mobile bar and panel,
// and the help overlay.
type System struct {
	model   *layout.Model
	chrome  *layout.Chrome
	toolbar *Toolbar
	mobile  *MobilePanel
	help    *HelpPanel
	actions Actions

	active  Widget
	screenW int
	screenH int
	face    font.Face
}

func NewSystem(model *layout.Model, chrome *layout.Chrome, actions Actions, face font.Face) *System {
	s := &System{
		model:   model,
		chrome:  chrome,
		actions: actions,
		help:    &HelpPanel{},
		face:    face,
	}
	s.toolbar = &Toolbar{Widgets: controls(model, actions, s.help.Toggle)}
	return s
}

// EnterMobile builds the mobile panel.
func (s *System) EnterMobile() {
	s.mobile = NewMobilePanel(controls(s.model, s.actions, s.help.Toggle))
	s.active = nil
}

// LeaveMobile tears the mobile panel down.
func (s *System) LeaveMobile() {
	s.mobile = nil
	s.active = nil
}

func (s *System) Mobile() *MobilePanel {
	return s.mobile
}

func (s *System) Help() *HelpPanel {
	return s.help
}

func (s *System) Resize(w, h int) {
	s.screenW, s.screenH = w, h
}

// HeaderHeight is the screen height the header takes from the board.
func (s *System) HeaderHeight() float64 {
	switch {
	case !s.chrome.Visible():
		return 0
	case s.mobile != nil:
		return MobileBarHeight
	default:
		return ToolbarHeight
	}
}

func (s *System) style(p theme.Palette) Style {
	return Style{Palette: p, Face: s.face}
}

func (s *System) layout() {
	st := Style{Face: s.face}
	s.toolbar.Layout(s.screenW, st)
	if s.mobile != nil {
		s.mobile.Layout(s.screenW, st)
	}
	s.help.Layout(s.screenW, s.screenH, st)
}

func (s *System) widgets() []Widget {
	if !s.chrome.Visible() {
		return nil
	}
	if s.mobile != nil {
		return s.mobile.Active()
	}
	return s.toolbar.Widgets
}

// Blocks reports whether the header or an overlay covers (x, y).
func (s *System) Blocks(x, y int) bool {
	pt := image.Pt(x, y)
	if s.help.Visible && pt.In(s.help.Bounds()) {
		return true
	}
	if !s.chrome.Visible() {
		return false
	}
	if float64(y) < s.HeaderHeight() {
		return true
	}
	return s.mobile != nil && pt.In(s.mobile.Panel())
}

// HandlePointer routes the pointer to the widget under it and keeps
// delivering drags to that widget until release. It reports whether the UI
// took the input.
func (s *System) HandlePointer(p Pointer) bool {
	s.layout()

	if s.active != nil {
		if p.Pressed {
			s.active.Drag(p.X, p.Y)
		}
		if p.JustReleased || !p.Pressed {
			s.active.Release()
			s.active = nil
		}
		return true
	}
	if !p.JustPressed {
		return false
	}

	pt := image.Pt(p.X, p.Y)
	for _, w := range s.widgets() {
		if pt.In(w.Bounds()) {
			s.active = w
			w.Press(p.X, p.Y)
			return true
		}
	}
	if s.help.Visible && !pt.In(s.help.Bounds()) {
		s.help.Visible = false
	}
	return s.Blocks(p.X, p.Y)
}

// Update polls the mouse, or the first touch when no button is down.
func (s *System) Update() bool {
	x, y := ebiten.CursorPosition()
	p := Pointer{
		X:            x,
		Y:            y,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	if !p.JustPressed && !p.Pressed && !p.JustReleased {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			p.X, p.Y = ebiten.TouchPosition(ids[0])
			p.JustPressed, p.Pressed = true, true
		} else if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
			p.X, p.Y = ebiten.TouchPosition(ids[0])
			p.Pressed = true
		}
	}
	return s.HandlePointer(p)
}

func (s *System) Draw(screen *ebiten.Image, palette theme.Palette) {
	s.layout()
	st := s.style(palette)

	if s.chrome.Visible() {
		fillRect(screen, 0, 0, float32(s.screenW), float32(s.HeaderHeight()), palette.Chrome)
		if s.mobile != nil && s.mobile.Open {
			r := s.mobile.Panel()
			fillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), palette.Chrome)
			strokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), palette.CardBorder)
		}
		for _, w := range s.widgets() {
			w.Draw(screen, st)
		}
	}
	s.help.Draw(screen, st)
}
