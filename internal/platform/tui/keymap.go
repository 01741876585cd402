package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Flap    key.Binding
	Select  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Select, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Restart},
		{k.Prev, k.Next, k.Select},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "flap"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev button"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right", "next button"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates key messages to game actions for the current
// surface. Button navigation is reported separately since it never reaches
// the simulation.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Nav is a button-focus movement.
type Nav int

const (
	NavNone Nav = iota
	NavPrev
	NavNext
)

// MapKey returns the action for msg, and a focus move when msg navigates
// buttons. focused is the action of the focused button on the visible
// surface, or ActionNone while playing.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, focused core.Action) (core.Action, Nav) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionExit, NavNone
	case focused == core.ActionNone && key.Matches(msg, km.keys.Flap):
		return core.ActionFlap, NavNone
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, NavNone
	case focused != core.ActionNone && key.Matches(msg, km.keys.Select):
		return focused, NavNone
	case focused != core.ActionNone && key.Matches(msg, km.keys.Prev):
		return core.ActionNone, NavPrev
	case focused != core.ActionNone && key.Matches(msg, km.keys.Next):
		return core.ActionNone, NavNext
	}
	return core.ActionNone, NavNone
}
