package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the keys the manager reacts to.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding
	Back  key.Binding
}

// DefaultKeyMap is the standard widget navigation.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down", "right"),
		key.WithHelp("tab/↓", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up", "left"),
		key.WithHelp("shift+tab/↑", "prev"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press}
}
