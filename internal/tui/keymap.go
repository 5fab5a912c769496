package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings shown in the footer. Any key quits; Quit only
// names the usual ones for the help line.
type keyMap struct {
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", " ", "ctrl+c"),
			key.WithHelp(quitHelpKey, quitHelpDesc),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
