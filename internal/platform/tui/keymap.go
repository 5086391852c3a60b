package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings shown in the help line.
// Only Submit and Interrupt are matched directly; the steering letters are
// typed into the prompt like any other text.
type KeyMap struct {
	Steer     key.Binding
	QuitLine  key.Binding
	Submit    key.Binding
	Interrupt key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Steer, k.Submit, k.QuitLine, k.Interrupt}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Steer, k.Submit},
		{k.QuitLine, k.Interrupt},
	}
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Steer: key.NewBinding(
			key.WithKeys("w", "a", "s", "d"),
			key.WithHelp("w/a/s/d", "steer"),
		),
		QuitLine: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play turn"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}
