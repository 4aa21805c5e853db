package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	next   key.Binding
	prev   key.Binding
	enter  key.Binding
	back   key.Binding
	edit   key.Binding
	del    key.Binding
	fav    key.Binding
	status key.Binding
	search key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		del:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		fav:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorites only")),
		status: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle status")),
		search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.next, k.prev},
		{k.enter, k.back, k.edit, k.del},
		{k.fav, k.status, k.search, k.quit},
	}
}
