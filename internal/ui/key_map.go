package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
//
// Input bindings apply while the text input has focus; the rest apply to the table.
type keyMap struct {
	submit    key.Binding
	cancel    key.Binding
	focus     key.Binding
	up        key.Binding
	down      key.Binding
	edit      key.Binding
	remove    key.Binding
	prev      key.Binding
	next      key.Binding
	quit      key.Binding
	interrupt key.Binding
	help      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
		focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		remove:    key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		prev:      key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "previous")),
		next:      key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next")),
		quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
	}
}

// inputHelp lists the bindings shown while typing.
func (k keyMap) inputHelp(editing bool) []key.Binding {
	if editing {
		return []key.Binding{k.submit, k.cancel, k.focus, k.interrupt}
	}
	return []key.Binding{k.submit, k.focus, k.interrupt}
}

// tableHelp lists the bindings shown while the table has focus.
func (k keyMap) tableHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.edit, k.remove, k.prev, k.next, k.focus, k.help, k.quit}
}

// FullHelp lists every binding in columns, shown after ? is pressed in the table.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.cancel, k.focus},
		{k.up, k.down, k.edit, k.remove},
		{k.prev, k.next, k.quit, k.interrupt},
		{k.help},
	}
}
