package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/picklist/internal/core/config"
)

// Action is a review screen command, independent of the input that raised it.
type Action int

const (
	ActionNone Action = iota
	ActionAdvance
	ActionRetreat
	ActionConfirm
	ActionCancel
	ActionToggleHelp
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionToggleHelp:
		return "help"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyMap holds the review screen bindings. Phase-specific bindings are
// enabled and disabled by SetConfirming so help only lists what applies.
type KeyMap struct {
	Accelerator key.Binding
	Next        key.Binding
	Prev        key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// NewKeyMap builds the bindings for the configured accelerator.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	km := KeyMap{
		Accelerator: key.NewBinding(
			key.WithKeys(keys.Advance),
			key.WithHelp(keyLabel(keys.Advance), "next"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", "pgdown"),
			key.WithHelp("→/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p", "pgup"),
			key.WithHelp("←/h", "prev"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc/b", "back"),
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
	km.SetConfirming(false)
	return km
}

// SetConfirming switches the phase-specific bindings.
func (k *KeyMap) SetConfirming(confirming bool) {
	k.Next.SetEnabled(!confirming)
	k.Prev.SetEnabled(!confirming)
	k.Confirm.SetEnabled(confirming)
	k.Cancel.SetEnabled(confirming)

	desc := "next"
	if confirming {
		desc = "ok"
	}
	k.Accelerator.SetHelp(k.Accelerator.Help().Key, desc)
}

// Resolve maps a key press to a phase-local action. The accelerator is not
// resolved here; it is owned by the Accelerator subscription.
func (k KeyMap) Resolve(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Help):
		return ActionToggleHelp
	case key.Matches(msg, k.Next):
		return ActionAdvance
	case key.Matches(msg, k.Prev):
		return ActionRetreat
	case key.Matches(msg, k.Confirm):
		return ActionConfirm
	case key.Matches(msg, k.Cancel):
		return ActionCancel
	}
	return ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accelerator, k.Prev, k.Confirm, k.Cancel, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accelerator, k.Next, k.Prev},
		{k.Confirm, k.Cancel},
		{k.Help, k.Quit},
	}
}

func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "enter":
		return "↵"
	}
	return k
}
