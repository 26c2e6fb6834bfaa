package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Edit      key.Binding
	Reset     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Dashboard key.Binding
	Help      key.Binding
	Quit      key.Binding

	// modal and prompt
	Submit  key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Decline key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "flip/open")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "update data")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset game")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll down")),
		Top:       key.NewBinding(key.WithKeys("t", "home"), key.WithHelp("t", "back to top")),
		Dashboard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "play again")),
		Decline: key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "not now")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Select, k.Edit, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.NextFocus, k.PrevFocus, k.PageUp, k.PageDown, k.Top, k.Dashboard},
		{k.Edit, k.Reset, k.Help, k.Quit},
	}
}

// modalKeys is shown while the update form is open.
type modalKeys struct {
	next, prev, submit, cancel key.Binding
}

func (k modalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.prev, k.submit, k.cancel}
}

func (k modalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
