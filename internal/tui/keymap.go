package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every top-level binding. Bindings carry help metadata so the
// help overlay renders itself from this map instead of a second list that
// could drift.
type KeyMap struct {
	Save      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Search    key.Binding
	Open      key.Binding
	CopyLine  key.Binding
	Changes   key.Binding
	Help      key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Search:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		Open:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file")),
		CopyLine:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "copy line")),
		Changes:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "pending changes")),
		Help:      key.NewBinding(key.WithKeys("f1", "ctrl+_"), key.WithHelp("f1", "help")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
