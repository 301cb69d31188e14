// Package ui is a small retained-mode widget layer drawn onto a
// core.Surface: buttons, labels, text boxes, text inputs, and modal
// dialogs, plus the Manager that routes input to them.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-clangen/internal/core"
)

// Widget is anything the manager can draw and hit-test.
type Widget interface {
	Rect() core.Rect
	Draw(s *core.Surface, theme Theme, focused bool)
}

// focusable widgets take part in keyboard navigation.
type focusable interface {
	Widget
	CanFocus() bool
}

// Button runs OnPress on the frame's UI update after it is activated.
type Button struct {
	Text     string
	Area     core.Rect
	OnPress  func()
	Disabled bool
}

// NewButton places a button at x,y sized to its text.
func NewButton(x, y int, text string, onPress func()) *Button {
	return &Button{
		Text:    text,
		Area:    core.NewRect(x, y, ansi.StringWidth(text)+4, 1),
		OnPress: onPress,
	}
}

// NewCenteredButton places a button horizontally centered in width.
func NewCenteredButton(width, y int, text string, onPress func()) *Button {
	w := ansi.StringWidth(text) + 4
	return &Button{
		Text:    text,
		Area:    core.NewRect((width-w)/2, y, w, 1),
		OnPress: onPress,
	}
}

func (b *Button) Rect() core.Rect { return b.Area }

func (b *Button) CanFocus() bool { return !b.Disabled }

func (b *Button) Draw(s *core.Surface, theme Theme, focused bool) {
	fg := theme.Text
	left, right := "[ ", " ]"
	switch {
	case b.Disabled:
		fg = theme.Muted
	case focused:
		fg = theme.Focus
		left, right = "> ", " <"
	}
	s.DrawText(b.Area.X, b.Area.Y, left+b.Text+right, fg)
}

// Label is a single line of text.
type Label struct {
	Text     string
	X, Y     int
	Width    int // used when Centered; 0 means the surface width
	Centered bool
	Color    *core.Color // nil uses the theme text color
}

func (l *Label) Rect() core.Rect {
	w := ansi.StringWidth(l.Text)
	x := l.X
	if l.Centered && l.Width > 0 {
		x = l.X + (l.Width-w)/2
	}
	return core.NewRect(x, l.Y, w, 1)
}

func (l *Label) Draw(s *core.Surface, theme Theme, _ bool) {
	fg := theme.Text
	if l.Color != nil {
		fg = *l.Color
	}
	if l.Centered && l.Width == 0 {
		s.DrawTextCentered(l.Y, l.Text, fg)
		return
	}
	r := l.Rect()
	s.DrawText(r.X, r.Y, l.Text, fg)
}

// ColorRef returns a pointer for Label.Color.
func ColorRef(c core.Color) *core.Color { return &c }

// TextBox draws word-wrapped text inside an area, clipping extra lines.
type TextBox struct {
	Text  string
	Area  core.Rect
	Muted bool
}

func (t *TextBox) Rect() core.Rect { return t.Area }

// Lines returns the wrapped lines that fit in the area.
func (t *TextBox) Lines() []string {
	if t.Area.W <= 0 || t.Area.H <= 0 {
		return nil
	}
	lines := strings.Split(ansi.Wrap(t.Text, t.Area.W, ""), "\n")
	if len(lines) > t.Area.H {
		lines = lines[:t.Area.H]
	}
	return lines
}

func (t *TextBox) Draw(s *core.Surface, theme Theme, _ bool) {
	fg := theme.Text
	if t.Muted {
		fg = theme.Muted
	}
	for i, line := range t.Lines() {
		s.DrawText(t.Area.X, t.Area.Y+i, line, fg)
	}
}

// TextInput is a single-line editable field backed by a bubbles textinput.
type TextInput struct {
	Area  core.Rect
	Model textinput.Model
}

// NewTextInput creates an input at x,y with room for width characters.
func NewTextInput(x, y, width int, placeholder string) *TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = width
	m.Prompt = ""
	return &TextInput{
		Area:  core.NewRect(x, y, width+2, 1),
		Model: m,
	}
}

func (t *TextInput) Rect() core.Rect { return t.Area }

func (t *TextInput) CanFocus() bool { return true }

// Value returns the current text.
func (t *TextInput) Value() string { return t.Model.Value() }

// SetValue replaces the text.
func (t *TextInput) SetValue(v string) { t.Model.SetValue(v) }

// HandleKey feeds a key press to the field.
func (t *TextInput) HandleKey(msg tea.KeyMsg) {
	t.Model, _ = t.Model.Update(msg)
}

func (t *TextInput) setFocus(on bool) {
	if on && !t.Model.Focused() {
		t.Model.Focus()
	} else if !on && t.Model.Focused() {
		t.Model.Blur()
	}
}

func (t *TextInput) Draw(s *core.Surface, theme Theme, focused bool) {
	frame := theme.Muted
	if focused {
		frame = theme.Focus
	}
	s.Set(t.Area.X, t.Area.Y, '[', frame)
	s.Set(t.Area.Right()-1, t.Area.Y, ']', frame)

	x := t.Area.X + 1
	value := t.Model.Value()
	if value == "" && !focused {
		s.DrawText(x, t.Area.Y, t.Model.Placeholder, theme.Muted)
		return
	}
	s.DrawText(x, t.Area.Y, value, theme.Text)
	if focused {
		cx := x + ansi.StringWidth(string([]rune(value)[:t.Model.Position()]))
		if cx < t.Area.Right()-1 {
			r := s.Get(cx, t.Area.Y)
			if r == ' ' {
				r = '_'
			}
			s.Set(cx, t.Area.Y, r, theme.Focus)
		}
	}
}

// Dialog is a modal box with a message and a row of buttons.
type Dialog struct {
	Title   string
	Message string
	Buttons []*Button
	Area    core.Rect
	OnClose func()
}

// NewDialog centers a dialog of the given size inside a w x h area and lays
// out the buttons along its bottom row.
func NewDialog(areaW, areaH, w, h int, title, message string, buttons ...*Button) *Dialog {
	d := &Dialog{
		Title:   title,
		Message: message,
		Buttons: buttons,
		Area:    core.CenteredRect(areaW, areaH, w, h),
	}
	d.layout()
	return d
}

func (d *Dialog) layout() {
	total := 0
	for _, b := range d.Buttons {
		total += b.Area.W + 1
	}
	x := d.Area.X + (d.Area.W-total+1)/2
	y := d.Area.Bottom() - 2
	for _, b := range d.Buttons {
		b.Area.X, b.Area.Y = x, y
		x += b.Area.W + 1
	}
}

func (d *Dialog) Rect() core.Rect { return d.Area }

func (d *Dialog) Draw(s *core.Surface, theme Theme, _ bool) {
	s.FillRect(d.Area, theme.Background)
	s.DrawBox(d.Area, theme.Accent)
	if d.Title != "" {
		title := " " + d.Title + " "
		s.DrawText(d.Area.X+(d.Area.W-ansi.StringWidth(title))/2, d.Area.Y, title, theme.Accent)
	}
	body := &TextBox{Text: d.Message, Area: core.NewRect(d.Area.X+2, d.Area.Y+2, d.Area.W-4, d.Area.H-5)}
	body.Draw(s, theme, false)
}
