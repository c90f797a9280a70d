package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Format key.Binding
	Sound  key.Binding
	Accent key.Binding
	Stop   key.Binding
	Snooze key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add alarm")),
		Toggle: key.NewBinding(key.WithKeys(" ", "t"), key.WithHelp("space", "enable/disable")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Format: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "12/24h")),
		Sound:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound on/off")),
		Accent: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "accent")),
		Stop:   key.NewBinding(key.WithKeys("s", "enter", "esc"), key.WithHelp("s", "stop")),
		Snooze: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "snooze")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Format, k.Sound, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Toggle, k.Delete},
		{k.Format, k.Sound, k.Accent},
		{k.Stop, k.Snooze, k.Help, k.Quit},
	}
}
