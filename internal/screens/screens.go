// Package screens implements every page of the game on top of the ui
// widget layer and assembles them into the screen registry.
package screens

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-clangen/internal/core"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/registry"
	"github.com/vovakirdan/tui-clangen/internal/ui"
)

// Env is what screens share: the widget manager and the frame surface.
type Env struct {
	UI      *ui.Manager
	Surface *core.Surface
}

// Build creates one instance of every screen.
func Build(env *Env) *registry.Registry {
	return registry.New(
		registry.Entry{ID: game.StartScreen, Screen: &StartScreen{base{env}}},
		registry.Entry{ID: game.SettingsScreen, Screen: &SettingsScreen{base: base{env}}},
		registry.Entry{ID: game.SwitchClanScreen, Screen: &SwitchClanScreen{base: base{env}}},
		registry.Entry{ID: game.MakeClanScreen, Screen: &MakeClanScreen{base: base{env}}},
		registry.Entry{ID: game.InfoScreen, Screen: &InfoScreen{base{env}}},
		registry.Entry{ID: game.CampScreen, Screen: &CampScreen{base: base{env}}},
		registry.Entry{ID: game.ListScreen, Screen: &ListScreen{base{env}}},
		registry.Entry{ID: game.ProfileScreen, Screen: &ProfileScreen{base{env}}},
	)
}

var keys = struct {
	Back     key.Binding
	TimeSkip key.Binding
}{
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	TimeSkip: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timeskip")),
}

// base holds the pieces every screen needs.
type base struct {
	env *Env
}

func (b base) HandleEvent(*game.State, core.Event) {}

// ExitScreen drops the screen's widgets.
func (b base) ExitScreen(*game.State) {
	b.env.UI.Clear()
}

func (b base) size() (int, int) {
	return b.env.UI.Size()
}

func (b base) theme() ui.Theme {
	return b.env.UI.Theme()
}

// backOnEsc switches to target when esc arrives and no dialog is open.
func (b base) backOnEsc(s *game.State, ev core.Event, target game.ScreenID) {
	msg, ok := ev.(tea.KeyMsg)
	if !ok || b.env.UI.Modal() != nil {
		return
	}
	if key.Matches(msg, keys.Back) {
		s.ChangeScreen(target)
	}
}

// menu lays out buttons in a centered column starting at row y.
func (b base) menu(y int, buttons ...*ui.Button) []ui.Widget {
	w, _ := b.size()
	out := make([]ui.Widget, 0, len(buttons))
	for i, btn := range buttons {
		width := btn.Area.W
		btn.Area = core.NewRect((w-width)/2, y+i*2, width, 1)
		out = append(out, btn)
	}
	return out
}

// heading draws a centered title line.
func (b base) heading(y int, text string) {
	b.env.Surface.DrawTextCentered(y, text, b.theme().Accent)
}
