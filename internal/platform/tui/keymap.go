package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-clangen/internal/core"
)

// quitKey closes the game the way closing the window would.
var quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

// translate turns a Bubble Tea message into a loop event.
// Messages the loop has no use for are dropped.
func translate(msg tea.Msg) (core.Event, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return core.QuitEvent{}, true
		}
		return msg, true
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			return nil, false
		}
		return msg, true
	case tea.WindowSizeMsg:
		return msg, true
	}
	return nil, false
}
