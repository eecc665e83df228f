package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Activity   key.Binding

	// Sections
	NextSection key.Binding
	PrevSection key.Binding
	Collapse    key.Binding
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Clear       key.Binding

	// Price
	MinDown    key.Binding
	MinUp      key.Binding
	MaxDown    key.Binding
	MaxUp      key.Binding
	MinDownBig key.Binding
	MinUpBig   key.Binding
	MaxDownBig key.Binding
	MaxUpBig   key.Binding

	// Location
	EditURL key.Binding
	Back    key.Binding
	Forward key.Binding

	// URL input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Activity: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Session activity"),
		),

		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous section"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Fold section"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Select / apply"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear selection"),
		),

		MinDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/←", "Min price -10"),
		),
		MinUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/→", "Min price +10"),
		),
		MaxDown: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "Max price -10"),
		),
		MaxUp: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "Max price +10"),
		),
		MinDownBig: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "Min price -100"),
		),
		MinUpBig: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "Min price +100"),
		),
		MaxDownBig: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Max price -100"),
		),
		MaxUpBig: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Max price +100"),
		),

		EditURL: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Go to URL"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Forward"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}
