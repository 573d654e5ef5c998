package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings of normal mode. Navigation keys are forwarded
// to the list component; the rest act on the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Find        key.Binding
	Goto        key.Binding
	Wrap        key.Binding
	Required    key.Binding
	Orientation key.Binding
	Remove      key.Binding
	Help        key.Binding
	EventLog    key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings. Plain characters are never
// bound: they feed typed-prefix selection.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous (horizontal)"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next (horizontal)"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "alt+up", "ctrl+left"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "alt+down", "ctrl+right"),
			key.WithHelp("end", "last"),
		),
		Find: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "find"),
		),
		Goto: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "go to index"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "toggle wrap"),
		),
		Required: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "toggle required"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "orientation"),
		),
		Remove: key.NewBinding(
			key.WithKeys("delete", "ctrl+x"),
			key.WithHelp("del", "remove item"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		EventLog: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "event log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Find, k.Goto, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Find, k.Goto, k.Remove},
		{k.Wrap, k.Required, k.Orientation},
		{k.Help, k.EventLog, k.Quit},
	}
}
