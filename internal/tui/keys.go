package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	NextTab: key.NewBinding(
		key.WithKeys("right", "tab", "l"),
		key.WithHelp("→/tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("left", "shift+tab", "h"),
		key.WithHelp("←", "prev tab"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy summary"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}
