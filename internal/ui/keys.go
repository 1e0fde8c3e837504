package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Activate  key.Binding
	Stepper   key.Binding
	Run       key.Binding
	Copy      key.Binding
	Scroll    key.Binding
	Links     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab/↑", "previous field"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "browse / toggle"),
		),
		Stepper: key.NewBinding(
			key.WithKeys("+", "-"),
			key.WithHelp("+/-/0-9", "thread count"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+r", "r"),
			key.WithHelp("^R/r", "run ps3dec"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y", "y"),
			key.WithHelp("^Y/y", "copy log"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown", "ctrl+u", "ctrl+d", "home", "end"),
			key.WithHelp("PgUp/PgDn", "scroll log"),
		),
		Links: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "open link"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Copy, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Activate, k.Stepper},
		{k.Run, k.Copy, k.Scroll, k.Links, k.Help, k.Quit},
	}
}
