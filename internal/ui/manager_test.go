package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-clangen/internal/core"
)

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestButtonPressDeferredToUpdate(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	pressed := 0
	b := NewButton(10, 5, "Continue", func() { pressed++ })
	m.Add(b)

	if !m.ProcessEvent(keyMsg(tea.KeyEnter)) {
		t.Fatal("enter on focused button not consumed")
	}
	if pressed != 0 {
		t.Fatal("button fired during ProcessEvent")
	}

	m.Update(0)
	if pressed != 1 {
		t.Errorf("pressed = %d after Update, want 1", pressed)
	}

	m.Update(0)
	if pressed != 1 {
		t.Errorf("press fired twice")
	}
}

func TestMouseHitTest(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	var got string
	a := NewButton(0, 1, "A", func() { got = "a" })
	b := NewButton(0, 3, "B", func() { got = "b" })
	m.Add(a, b)

	if m.ProcessEvent(click(50, 20)) {
		t.Error("click on empty space consumed")
	}
	if !m.ProcessEvent(click(2, 3)) {
		t.Fatal("click on button B not consumed")
	}
	if m.Focused() != Widget(b) {
		t.Error("clicked button did not take focus")
	}
	m.Update(0)
	if got != "b" {
		t.Errorf("pressed %q, want b", got)
	}
}

func TestMouseReleaseIgnored(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	fired := false
	m.Add(NewButton(0, 0, "X", func() { fired = true }))

	release := tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if m.ProcessEvent(release) {
		t.Error("mouse release consumed")
	}
	m.Update(0)
	if fired {
		t.Error("release fired button")
	}
}

func TestFocusNavigationSkipsDisabled(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	a := NewButton(0, 0, "A", nil)
	b := NewButton(0, 1, "B", nil)
	b.Disabled = true
	c := NewButton(0, 2, "C", nil)
	m.Add(a, &Label{Text: "title"}, b, c)

	if m.Focused() != Widget(a) {
		t.Fatal("first button not focused")
	}
	m.ProcessEvent(keyMsg(tea.KeyTab))
	if m.Focused() != Widget(c) {
		t.Error("tab did not skip disabled button")
	}
	m.ProcessEvent(keyMsg(tea.KeyTab))
	if m.Focused() != Widget(a) {
		t.Error("focus did not wrap around")
	}
	m.ProcessEvent(keyMsg(tea.KeyUp))
	if m.Focused() != Widget(c) {
		t.Error("up did not move focus backwards")
	}
}

func TestTextInputReceivesKeys(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	in := NewTextInput(5, 5, 10, "name")
	done := NewButton(5, 7, "Done", nil)
	m.Add(in, done)

	for _, s := range []string{"T", "h", "u"} {
		m.ProcessEvent(runeMsg(s))
	}
	m.ProcessEvent(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if in.Value() != "Thu " {
		t.Errorf("space not typed: %q", in.Value())
	}
	m.ProcessEvent(keyMsg(tea.KeyBackspace))

	if in.Value() != "Thu" {
		t.Errorf("Value() = %q, want Thu", in.Value())
	}

	// Enter in a text field moves on to the next widget.
	m.ProcessEvent(keyMsg(tea.KeyEnter))
	if m.Focused() != Widget(done) {
		t.Error("enter did not move focus off the text input")
	}
	if in.Model.Focused() {
		t.Error("text input still focused")
	}

	m.ProcessEvent(runeMsg("x"))
	if in.Value() != "Thu" {
		t.Errorf("unfocused input changed to %q", in.Value())
	}
}

func TestModalCapturesInput(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	var got []string
	m.Add(NewButton(0, 0, "Behind", func() { got = append(got, "behind") }))

	closed := false
	yes := NewButton(0, 0, "Yes", func() { got = append(got, "yes") })
	no := NewButton(0, 0, "No", func() { got = append(got, "no") })
	d := NewDialog(80, 24, 40, 9, "Quit?", "Really?", yes, no)
	d.OnClose = func() { closed = true }
	m.PushModal(d)

	if m.Focused() != Widget(yes) {
		t.Fatal("modal button not focused")
	}
	m.ProcessEvent(keyMsg(tea.KeyTab))
	m.ProcessEvent(keyMsg(tea.KeyEnter))
	m.Update(0)
	if len(got) != 1 || got[0] != "no" {
		t.Errorf("pressed %v, want [no]", got)
	}

	m.ProcessEvent(keyMsg(tea.KeyEsc))
	if m.Modal() != nil || !closed {
		t.Error("esc did not close the modal")
	}
}

func TestDialogLayoutCentered(t *testing.T) {
	a := NewButton(0, 0, "Save", nil)
	b := NewButton(0, 0, "Quit", nil)
	d := NewDialog(80, 24, 40, 9, "t", "m", a, b)

	if d.Area != core.CenteredRect(80, 24, 40, 9) {
		t.Errorf("dialog area = %+v", d.Area)
	}
	if a.Area.Y != d.Area.Bottom()-2 || b.Area.Y != a.Area.Y {
		t.Error("buttons not on the dialog's bottom row")
	}
	if !d.Area.Contains(a.Area.X, a.Area.Y) || !d.Area.Contains(b.Area.Right()-1, b.Area.Y) {
		t.Error("buttons outside dialog")
	}
	if b.Area.X <= a.Area.Right()-1 {
		t.Error("buttons overlap")
	}
}

func TestDrawVersionAndDebug(t *testing.T) {
	m := NewManager(40, 10, LightTheme(), "a1b2c3d4")
	m.Add(NewButton(5, 4, "Go", nil))
	s := core.NewSurface(40, 10)

	m.Draw(s)
	if !strings.HasSuffix(strings.TrimRight(s.Row(9), " "), "a1b2c3d4") {
		t.Errorf("version label missing: %q", s.Row(9))
	}
	if strings.Contains(s.String(), "DEBUG") {
		t.Error("debug overlay drawn while disabled")
	}

	m.SetVisualDebugMode(true)
	if !m.VisualDebugActive() {
		t.Fatal("VisualDebugActive() = false")
	}
	s.Clear()
	m.Draw(s)
	if !strings.HasPrefix(s.Row(0), "DEBUG") {
		t.Errorf("debug label missing: %q", s.Row(0))
	}
	if s.Get(4, 3) != '┌' {
		t.Errorf("widget outline missing, got %q", s.Get(4, 3))
	}
}

func TestButtonDrawFocus(t *testing.T) {
	s := core.NewSurface(20, 1)
	b := NewButton(0, 0, "Ok", nil)

	b.Draw(s, LightTheme(), false)
	if got := strings.TrimRight(s.Row(0), " "); got != "[ Ok ]" {
		t.Errorf("unfocused = %q", got)
	}
	b.Draw(s, LightTheme(), true)
	if got := strings.TrimRight(s.Row(0), " "); got != "> Ok <" {
		t.Errorf("focused = %q", got)
	}
}

func TestTextBoxWrapsAndClips(t *testing.T) {
	tb := &TextBox{Text: "one two three four five six", Area: core.NewRect(0, 0, 9, 2)}
	lines := tb.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %q, want 2", lines)
	}
	if strings.TrimSpace(lines[0]) != "one two" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestClearDropsEverything(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	fired := false
	b := NewButton(0, 0, "X", func() { fired = true })
	m.Add(b)
	m.ProcessEvent(keyMsg(tea.KeyEnter))
	m.PushModal(NewDialog(80, 24, 20, 7, "", ""))

	m.Clear()
	m.Update(0)

	if fired {
		t.Error("queued press fired after Clear")
	}
	if len(m.Widgets()) != 0 || m.Modal() != nil || m.Focused() != nil {
		t.Error("Clear left state behind")
	}
}

func TestResizeRecentersModal(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	m.PushModal(NewDialog(80, 24, 20, 7, "", "", NewButton(0, 0, "Ok", nil)))

	m.ProcessEvent(tea.WindowSizeMsg{Width: 100, Height: 40})

	if w, h := m.Size(); w != 100 || h != 40 {
		t.Errorf("Size() = %d,%d", w, h)
	}
	if m.Modal().Area != core.CenteredRect(100, 40, 20, 7) {
		t.Errorf("modal not recentered: %+v", m.Modal().Area)
	}
}

func TestRelayoutKeepsFocusAndModal(t *testing.T) {
	m := NewManager(80, 24, LightTheme(), "")
	build := func(y int) func() {
		return func() {
			m.Add(NewButton(0, y, "A", nil), NewButton(0, y+2, "B", nil))
		}
	}
	build(1)()
	m.ProcessEvent(keyMsg(tea.KeyTab))

	m.Relayout(build(5))
	b, ok := m.Focused().(*Button)
	if !ok || b.Text != "B" || b.Area.Y != 7 {
		t.Fatalf("Focused() = %#v, want the new B button", m.Focused())
	}

	d := NewDialog(80, 24, 20, 7, "", "", NewButton(0, 0, "Ok", nil))
	m.PushModal(d)
	m.Relayout(build(9))
	if m.Modal() != d {
		t.Error("Relayout closed the dialog")
	}
	if len(m.Widgets()) != 2 || m.Widgets()[0].Rect().Y != 9 {
		t.Errorf("widgets not rebuilt: %d", len(m.Widgets()))
	}
}
