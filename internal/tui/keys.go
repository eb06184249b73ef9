package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Filter    key.Binding
	Play      key.Binding
	Quit      key.Binding
	Back      key.Binding
	ForceQuit key.Binding

	// Filter editing.
	Confirm key.Binding
	Cancel  key.Binding
	Delete  key.Binding
	Type    key.Binding // help only; printable runes are handled directly
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Play: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "play"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear/quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "delete"),
	),
	Type: key.NewBinding(
		key.WithKeys("type"),
		key.WithHelp("type", "filter"),
	),
}

// browseHelp and filterHelp adapt KeyMap to help.KeyMap for each mode.
type browseHelp KeyMap

func (k browseHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Filter, k.Play, k.Quit}
}

func (k browseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Back}}
}

type filterHelp KeyMap

func (k filterHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Confirm, k.Type}
}

func (k filterHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Delete}}
}
