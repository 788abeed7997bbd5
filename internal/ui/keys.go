package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	prev   key.Binding
	next   key.Binding
	up     key.Binding
	down   key.Binding
	today  key.Binding
	goTo   key.Binding
	reload key.Binding
	add    key.Binding
	start  key.Binding
	edit   key.Binding
	help   key.Binding
	quit   key.Binding
}

var keys = keyMap{
	prev:   key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("h/p", "prev day")),
	next:   key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("l/n", "next day")),
	up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
	down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
	today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	goTo:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to date")),
	reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start day")),
	edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit file")),
	help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.prev, k.next, k.goTo, k.add, k.start, k.edit, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.prev, k.next, k.today, k.goTo},
		{k.up, k.down, k.reload},
		{k.add, k.start, k.edit},
		{k.help, k.quit},
	}
}
