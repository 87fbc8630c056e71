package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the browser.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Select    key.Binding
	Search    key.Binding
	EndSearch key.Binding
	Close     key.Binding
	Sort      key.Binding
	Open      key.Binding
	Profile   key.Binding
	Copy      key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view repos"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		EndSearch: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "done"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "close"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "open profile"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy URL"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys adapts a set of bindings to help.KeyMap.
type helpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding  { return h.short }
func (h helpKeys) FullHelp() [][]key.Binding { return h.full }

var _ help.KeyMap = helpKeys{}

func (k KeyMap) listHelp() helpKeys {
	return helpKeys{
		short: []key.Binding{k.Search, k.Select, k.Open, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.PageUp, k.PageDown},
			{k.Search, k.Select, k.Open, k.Copy},
			{k.Dismiss, k.Help, k.Quit},
		},
	}
}

func (k KeyMap) searchHelp() helpKeys {
	return helpKeys{
		short: []key.Binding{k.EndSearch, k.ForceQuit},
		full:  [][]key.Binding{{k.EndSearch, k.ForceQuit}},
	}
}

func (k KeyMap) overlayHelp() helpKeys {
	return helpKeys{
		short: []key.Binding{k.Sort, k.Open, k.Close, k.Help},
		full: [][]key.Binding{
			{k.Up, k.Down, k.PageUp, k.PageDown},
			{k.Sort, k.Open, k.Profile, k.Copy},
			{k.Close, k.Dismiss, k.Quit},
		},
	}
}
