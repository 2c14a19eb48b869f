package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the keyboard bindings of the timer screen.
type keyMap struct {
	Quit  key.Binding
	Pause key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
	}
}
