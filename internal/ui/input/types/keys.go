package types

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Reload    key.Binding
	Goto      key.Binding
	Focus     key.Binding
	Back      key.Binding

	// Grid
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding
	Open  key.Binding

	// Pagination bar
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding

	// Prompt
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload posts"),
		),
		Goto: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to page"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to grid"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first post"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last post"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read post"),
		),

		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last page"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ForMode returns the bindings that apply in mode, for the help view
func (k KeyMap) ForMode(mode Mode) help.KeyMap {
	return modeHelp{keys: k, mode: mode}
}

type modeHelp struct {
	keys KeyMap
	mode Mode
}

func (h modeHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.mode {
	case ModePager:
		return []key.Binding{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage, k.Back, k.Help}
	case ModeGoto:
		return []key.Binding{k.Submit, k.Cancel}
	default:
		return []key.Binding{k.Up, k.Down, k.Open, k.Focus, k.Goto, k.Help}
	}
}

func (h modeHelp) FullHelp() [][]key.Binding {
	k := h.keys
	switch h.mode {
	case ModePager:
		return [][]key.Binding{
			{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
			{k.Focus, k.Back, k.Goto},
			{k.Reload, k.Help, k.Quit, k.ForceQuit},
		}
	case ModeGoto:
		return [][]key.Binding{{k.Submit, k.Cancel, k.ForceQuit}}
	default:
		return [][]key.Binding{
			{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
			{k.Open, k.Focus, k.Goto},
			{k.Reload, k.Help, k.Quit, k.ForceQuit},
		}
	}
}
