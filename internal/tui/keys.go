package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings shown in the help bar.
type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	History key.Binding
	Range   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "up"),
			key.WithHelp("←/↑", "prev device"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "down", "tab", "enter"),
			key.WithHelp("→/↓", "next device"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Range: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "time range"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.History, k.Range, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.History, k.Range},
		{k.Quit},
	}
}
