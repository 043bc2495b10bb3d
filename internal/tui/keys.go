package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the editor screen.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	Erase    key.Binding

	New    key.Binding
	Save   key.Binding
	Delete key.Binding
	Count  key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings. Editing commands use control
// chords so plain letters stay available for typing into fields.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous pane"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete"),
		),
		Count: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "count"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// bindings lists the bindings shown on the help screen, in order.
func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.NextPane, k.PrevPane, k.Erase,
		k.New, k.Save, k.Delete, k.Count, k.Help, k.Quit,
	}
}
