package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grapplecore/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	StepLeft     key.Binding
	StepRight    key.Binding
	Jump         key.Binding
	GrappleLeft  key.Binding
	GrappleRight key.Binding
	GrappleUp    key.Binding
	Pause        key.Binding
	Screenshot   key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings: WASD-style steps, arrow-key
// grapples.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		StepLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a/d", "step"),
		),
		StepRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "step right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("w", " "),
			key.WithHelp("w", "jump"),
		),
		GrappleLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→/↑", "grapple"),
		),
		GrappleRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "grapple right"),
		),
		GrappleUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "grapple up"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StepLeft, k.Jump, k.GrappleLeft, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StepLeft, k.StepRight, k.Jump},
		{k.GrappleLeft, k.GrappleRight, k.GrappleUp},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.StepLeft):
		return core.ActionLeft
	case key.Matches(msg, k.StepRight):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.GrappleLeft):
		return core.ActionGrappleLeft
	case key.Matches(msg, k.GrappleRight):
		return core.ActionGrappleRight
	case key.Matches(msg, k.GrappleUp):
		return core.ActionGrappleUp
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}
