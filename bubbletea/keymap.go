package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the report viewer.
type KeyMap struct {
	// Scrolling
	Up           key.Binding
	Down         key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// File selection and submission
	OpenPicker  key.Binding
	ClosePicker key.Binding
	Submit      key.Binding

	// Report
	ToggleCard  key.Binding
	ToggleTheme key.Binding
	ExportPDF   key.Binding
	Copy        key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		OpenPicker: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open file"),
		),
		ClosePicker: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "close picker"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "upload & review"),
		),
		ToggleCard: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "show/hide card"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		ExportPDF: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "download PDF"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy report"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenPicker, k.Submit, k.ExportPDF, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenPicker, k.ClosePicker, k.Submit},
		{k.Up, k.Down, k.HalfPageUp, k.HalfPageDown, k.GotoTop, k.GotoBottom},
		{k.ToggleCard, k.ToggleTheme, k.ExportPDF, k.Copy},
		{k.Help, k.Quit},
	}
}
