package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-textgame/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// Bindings that do not apply to the current state are disabled, which
// also hides them from the help line.
type KeyMap struct {
	Option1    key.Binding
	Option2    key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Option1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "left option"),
		),
		Option2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "right option"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "focus left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "focus right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
			key.WithDisabled(),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetFinished switches the enabled bindings between level and ending play.
func (k *KeyMap) SetFinished(finished bool) {
	k.Option1.SetEnabled(!finished)
	k.Option2.SetEnabled(!finished)
	k.Left.SetEnabled(!finished)
	k.Right.SetEnabled(!finished)
	k.Confirm.SetEnabled(!finished)
	k.Restart.SetEnabled(finished)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Option1, k.Option2, k.Confirm, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Option1, k.Option2, k.Left, k.Right},
		{k.Confirm, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// Action translates a key message into a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Option1):
		return core.ActionOption1
	case key.Matches(msg, k.Option2):
		return core.ActionOption2
	case key.Matches(msg, k.Left):
		return core.ActionFocusLeft
	case key.Matches(msg, k.Right):
		return core.ActionFocusRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
