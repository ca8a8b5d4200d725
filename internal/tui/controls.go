package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zone IDs for the on-screen controls.
const (
	zonePrev    = "control-prev"
	zoneNext    = "control-next"
	zoneBack    = "control-back"
	zoneConfirm = "control-ok"
)

// control binds a clickable zone to the action it raises.
type control struct {
	zone   string
	action Action
}

var (
	reviewControls  = []control{{zonePrev, ActionRetreat}, {zoneNext, ActionAdvance}}
	confirmControls = []control{{zoneBack, ActionCancel}, {zoneConfirm, ActionConfirm}}
)

// zoneAt resolves a mouse event to the visible control under the pointer.
// Only a left button press activates a control.
func zoneAt(zones *zone.Manager, confirming bool, msg tea.MouseMsg) (string, bool) {
	if zones == nil {
		return "", false
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return "", false
	}

	visible := reviewControls
	if confirming {
		visible = confirmControls
	}

	for _, c := range visible {
		if z := zones.Get(c.zone); z != nil && z.InBounds(msg) {
			return c.zone, true
		}
	}
	return "", false
}

// actionForZone returns the action bound to a control zone.
func actionForZone(id string) (Action, bool) {
	for _, set := range [][]control{reviewControls, confirmControls} {
		for _, c := range set {
			if c.zone == id {
				return c.action, true
			}
		}
	}
	return ActionNone, false
}

// mark wraps rendered control content in a zone marker when zones are on.
func mark(zones *zone.Manager, id, content string) string {
	if zones == nil {
		return content
	}
	return zones.Mark(id, content)
}
