package persistentsearch

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit key.Binding
	Clear  key.Binding
	Back   key.Binding
	Next   key.Binding
	Prev   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Next:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "suggestions")),
		Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "input")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Clear, k.Back}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear},
		{k.Next, k.Prev, k.Back},
	}
}
