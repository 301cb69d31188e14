package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-clangen/internal/core"
)

// Manager owns the widgets of the active screen, routes input to them,
// and draws them each frame. Button callbacks fire from Update, never from
// ProcessEvent, so screens observe presses after event dispatch.
type Manager struct {
	widgets []Widget
	modal   *Dialog
	focus   int
	pending []*Button

	theme       Theme
	keys        KeyMap
	visualDebug bool
	version     string
	width       int
	height      int
}

// NewManager creates a manager for a w x h surface.
func NewManager(w, h int, theme Theme, version string) *Manager {
	return &Manager{
		theme:   theme,
		keys:    DefaultKeyMap,
		version: version,
		width:   w,
		height:  h,
	}
}

// Size returns the last known surface size.
func (m *Manager) Size() (int, int) { return m.width, m.height }

// Theme returns the active theme.
func (m *Manager) Theme() Theme { return m.theme }

// SetTheme switches colors, e.g. after the dark-mode setting changes.
func (m *Manager) SetTheme(t Theme) { m.theme = t }

// SetVisualDebugMode turns widget outlines on or off.
func (m *Manager) SetVisualDebugMode(on bool) { m.visualDebug = on }

// VisualDebugActive reports whether widget outlines are drawn.
func (m *Manager) VisualDebugActive() bool { return m.visualDebug }

// Add appends widgets. The first focusable widget added gets focus.
func (m *Manager) Add(ws ...Widget) {
	m.widgets = append(m.widgets, ws...)
	m.syncFocus()
}

// Clear removes every widget, the modal, and any queued presses.
// Screens call it when they deactivate.
func (m *Manager) Clear() {
	m.widgets = nil
	m.modal = nil
	m.pending = nil
	m.focus = 0
}

// Relayout replaces the widgets with the ones build adds, keeping the open
// dialog and the focus position. Screens use it after a resize.
func (m *Manager) Relayout(build func()) {
	modal, focus := m.modal, m.focus
	m.widgets, m.modal = nil, nil
	build()
	m.modal, m.focus = modal, focus
	m.syncFocus()
}

// Widgets returns the widgets in draw order.
func (m *Manager) Widgets() []Widget { return m.widgets }

// PushModal shows a dialog; input goes only to it until it closes.
func (m *Manager) PushModal(d *Dialog) {
	m.modal = d
	m.focus = 0
	m.syncFocus()
}

// CloseModal hides the dialog and runs its OnClose hook.
func (m *Manager) CloseModal() {
	d := m.modal
	if d == nil {
		return
	}
	m.modal = nil
	m.focus = 0
	m.syncFocus()
	if d.OnClose != nil {
		d.OnClose()
	}
}

// Modal returns the open dialog, or nil.
func (m *Manager) Modal() *Dialog { return m.modal }

// Focused returns the widget with keyboard focus, or nil.
func (m *Manager) Focused() Widget {
	f := m.focusables()
	if len(f) == 0 {
		return nil
	}
	return f[m.focus]
}

func (m *Manager) focusables() []focusable {
	var src []Widget
	if m.modal != nil {
		for _, b := range m.modal.Buttons {
			src = append(src, b)
		}
	} else {
		src = m.widgets
	}
	var out []focusable
	for _, w := range src {
		if f, ok := w.(focusable); ok && f.CanFocus() {
			out = append(out, f)
		}
	}
	return out
}

// syncFocus clamps the focus index and updates text input cursors.
func (m *Manager) syncFocus() {
	f := m.focusables()
	if len(f) == 0 {
		m.focus = 0
	} else {
		m.focus = core.Clamp(m.focus, 0, len(f)-1)
	}
	for _, w := range m.widgets {
		if ti, ok := w.(*TextInput); ok {
			ti.setFocus(m.modal == nil && len(f) > 0 && f[m.focus] == ti)
		}
	}
}

func (m *Manager) moveFocus(delta int) {
	f := m.focusables()
	if len(f) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(f)) % len(f)
	m.syncFocus()
}

// press queues a button for the next Update.
func (m *Manager) press(b *Button) {
	if b.Disabled {
		return
	}
	m.pending = append(m.pending, b)
}

// ProcessEvent routes one input event and reports whether a widget used it.
func (m *Manager) ProcessEvent(ev core.Event) bool {
	switch msg := ev.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.modal != nil {
			m.modal.Area = core.CenteredRect(m.width, m.height, m.modal.Area.W, m.modal.Area.H)
			m.modal.layout()
		}
		return false

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return false
		}
		for i, f := range m.focusables() {
			if f.Rect().Contains(msg.X, msg.Y) {
				m.focus = i
				m.syncFocus()
				if b, ok := f.(*Button); ok {
					m.press(b)
				}
				return true
			}
		}
		return false

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return false
}

func (m *Manager) handleKey(msg tea.KeyMsg) bool {
	focused := m.Focused()
	input, typing := focused.(*TextInput)

	switch {
	case m.modal != nil && key.Matches(msg, m.keys.Back):
		m.CloseModal()
		return true
	case key.Matches(msg, m.keys.Next) && !(typing && msg.Type == tea.KeyRight):
		m.moveFocus(1)
		return true
	case key.Matches(msg, m.keys.Prev) && !(typing && msg.Type == tea.KeyLeft):
		m.moveFocus(-1)
		return true
	case key.Matches(msg, m.keys.Press) && !(typing && msg.Type == tea.KeySpace):
		if b, ok := focused.(*Button); ok {
			m.press(b)
			return true
		}
		if typing {
			m.moveFocus(1)
			return true
		}
		return false
	}

	if typing {
		input.HandleKey(msg)
		return true
	}
	return false
}

// Update fires queued button presses.
func (m *Manager) Update(_ time.Duration) {
	pending := m.pending
	m.pending = nil
	for _, b := range pending {
		if b.OnPress != nil {
			b.OnPress()
		}
	}
}

// Draw renders widgets, the modal, the footer, and debug outlines.
func (m *Manager) Draw(s *core.Surface) {
	focused := m.Focused()
	for _, w := range m.widgets {
		w.Draw(s, m.theme, m.modal == nil && w == focused)
	}

	if m.modal != nil {
		m.modal.Draw(s, m.theme, false)
		for _, b := range m.modal.Buttons {
			b.Draw(s, m.theme, Widget(b) == focused)
		}
	}

	bottom := s.Height() - 1
	s.DrawText(1, bottom, m.helpLine(), m.theme.Muted)
	if m.version != "" {
		s.DrawText(s.Width()-ansi.StringWidth(m.version)-1, bottom, m.version, m.theme.Muted)
	}

	if m.visualDebug {
		m.drawDebug(s)
	}
}

func (m *Manager) helpLine() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func (m *Manager) drawDebug(s *core.Surface) {
	outline := func(r core.Rect) {
		s.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), m.theme.Debug)
	}
	for _, w := range m.widgets {
		outline(w.Rect())
	}
	if m.modal != nil {
		for _, b := range m.modal.Buttons {
			outline(b.Rect())
		}
	}
	s.DrawText(0, 0, "DEBUG", m.theme.Debug)
}
