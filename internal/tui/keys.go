package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Next key.Binding
	Back key.Binding
	Save key.Binding

	// Actions
	Select key.Binding
	New    key.Binding
	Delete key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap holds the global bindings. The single-letter aliases (q, n,
// b, s) are suppressed while a text input is capturing; the ctrl variants
// and esc always work.
var DefaultKeyMap = KeyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	Next:   key.NewBinding(key.WithKeys("n", "ctrl+n"), key.WithHelp("ctrl+n", "next")),
	Back:   key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")),
	Save:   key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("ctrl+s", "save & quit")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
