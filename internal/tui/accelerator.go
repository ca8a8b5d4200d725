package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/picklist/internal/core/navigator"
)

// Accelerator is the screen-scoped subscription for the global advance key.
// It holds the live navigator rather than a copy of its state, so the action
// it resolves always reflects the phase at the moment of the key press.
//
// An Accelerator is created when the review screen is built and closed when
// the screen is torn down. A closed Accelerator ignores all input.
type Accelerator struct {
	binding  key.Binding
	nav      *navigator.Navigator
	confirms bool
	closed   bool
}

// NewAccelerator subscribes binding to nav. When confirms is true the key
// confirms the review while the confirmation prompt is open; otherwise it
// always advances, which is a no-op at the prompt.
func NewAccelerator(nav *navigator.Navigator, binding key.Binding, confirms bool) *Accelerator {
	return &Accelerator{
		binding:  binding,
		nav:      nav,
		confirms: confirms,
	}
}

// Resolve reports the action for msg, or false if msg is not the
// accelerator or the subscription is closed.
func (a *Accelerator) Resolve(msg tea.KeyMsg) (Action, bool) {
	if a == nil || a.closed || !key.Matches(msg, a.binding) {
		return ActionNone, false
	}
	if a.confirms && a.nav.State().IsConfirming() {
		return ActionConfirm, true
	}
	return ActionAdvance, true
}

// active reports whether the subscription still receives input.
func (a *Accelerator) active() bool {
	return a != nil && !a.closed
}

// Close releases the subscription. It is safe to call more than once.
func (a *Accelerator) Close() {
	if a != nil {
		a.closed = true
	}
}
