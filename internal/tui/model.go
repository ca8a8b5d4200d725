// Package tui implements the picking review screen.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/colonyops/picklist/internal/core/config"
	"github.com/colonyops/picklist/internal/core/logging"
	"github.com/colonyops/picklist/internal/core/navigator"
	"github.com/colonyops/picklist/internal/core/notify"
	"github.com/colonyops/picklist/internal/core/styles"
)

// Deps holds the collaborators of the review screen.
type Deps struct {
	Config    *config.Config
	Navigator *navigator.Navigator
	Bus       *notify.Bus     // optional; notifications become toasts
	Zones     *zone.Manager   // optional; nil disables pointer input
	Logger    zerolog.Logger  // zero value logs nowhere
	Context   context.Context // carries the review session id for logging
}

// Model is the Bubble Tea model for the review screen.
type Model struct {
	cfg    *config.Config
	nav    *navigator.Navigator
	accel  *Accelerator
	keys   KeyMap
	help   help.Model
	zones  *zone.Manager
	toasts *toastStack
	log    zerolog.Logger
	ctx    context.Context

	unsubscribe func()
	width       int
	height      int
	quitting    bool
}

// New builds the review screen and registers its accelerator subscription.
// Call Close when the screen is torn down.
func New(deps Deps) Model {
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}

	keys := NewKeyMap(deps.Config.Keys)

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.FullKey = styles.HelpStyle
	h.Styles.FullDesc = styles.HelpStyle
	h.Styles.FullSeparator = styles.HelpStyle
	h.ShortSeparator = " • "

	toasts := newToastStack(deps.Config.TUI.ToastTTL, deps.Config.TUI.MaxToasts)

	m := Model{
		cfg:         deps.Config,
		nav:         deps.Navigator,
		accel:       NewAccelerator(deps.Navigator, keys.Accelerator, deps.Config.Review.ConfirmsWithAccelerator()),
		keys:        keys,
		help:        h,
		zones:       deps.Zones,
		toasts:      toasts,
		log:         deps.Logger,
		ctx:         ctx,
		unsubscribe: func() {},
	}
	m.keys.SetConfirming(m.nav.State().IsConfirming())

	if deps.Bus != nil {
		m.unsubscribe = deps.Bus.Subscribe(toasts.push)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the accelerator subscription and the notification
// subscription. It is safe to call more than once.
func (m Model) Close() {
	m.accel.Close()
	m.unsubscribe()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if act, ok := m.accel.Resolve(msg); ok {
			return m.dispatch(act)
		}
		return m.dispatch(m.keys.Resolve(msg))

	case tea.MouseMsg:
		if id, ok := zoneAt(m.zones, m.nav.State().IsConfirming(), msg); ok {
			next, cmd := m.activate(id)
			return next, cmd
		}
		return m, nil

	case toastTickMsg:
		return m, m.toasts.onTick()
	}

	return m, nil
}

// activate raises the action bound to a control zone, exactly as a pointer
// press on that control would.
func (m Model) activate(zoneID string) (Model, tea.Cmd) {
	act, ok := actionForZone(zoneID)
	if !ok {
		return m, nil
	}
	next, cmd := m.dispatch(act)
	return next.(Model), cmd
}

// dispatch runs an action against the navigator. Keyboard and pointer input
// both end up here, so equal actions produce equal transitions.
func (m Model) dispatch(act Action) (tea.Model, tea.Cmd) {
	var changed bool

	switch act {
	case ActionNone:
		return m, nil
	case ActionQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case ActionToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case ActionAdvance:
		changed = m.nav.Advance()
	case ActionRetreat:
		changed = m.nav.Retreat()
	case ActionConfirm:
		changed = m.nav.Confirm()
	case ActionCancel:
		changed = m.nav.CancelConfirm()
	}

	state := m.nav.State()
	m.keys.SetConfirming(state.IsConfirming())

	ctx := logging.WithPickingNo(m.ctx, m.nav.Current().PickingNo)
	m.log.Debug().Ctx(ctx).
		Stringer("action", act).
		Bool("changed", changed).
		Stringer("state", state).
		Msg("review input")

	return m, m.toasts.startTick()
}

// Navigator returns the navigator driven by the screen.
func (m Model) Navigator() *navigator.Navigator {
	return m.nav
}
