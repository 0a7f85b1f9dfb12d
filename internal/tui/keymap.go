package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	NextOption key.Binding
	PrevOption key.Binding
	NextCounty key.Binding
	PrevCounty key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		NextField: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next sentiment"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous sentiment"),
		),
		NextCounty: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "next county"),
		),
		PrevCounty: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "previous county"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Submit, k.NextCounty, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.NextField, k.PrevField, k.Submit},
		{k.NextOption, k.PrevOption},
		{k.NextCounty, k.PrevCounty, k.Quit},
	}
}
