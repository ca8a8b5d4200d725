// Package navigator implements the review state machine that pages an operator
// through a fixed sequence of picking orders and gates the final confirmation.
//
// The machine has a Reviewing(position) state per order and a single
// Confirming state entered by advancing past the last order. Confirming
// resolves to Reviewing(0) on Confirm and to Reviewing(N-1) on CancelConfirm,
// so a session can review the list any number of times.
//
// Every operation is defined for every state. Operations that do not apply to
// the current state are no-ops and report false.
package navigator

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/picklist/internal/core/picking"
)

// Sink receives the confirmation notification. The call carries no payload.
type Sink interface {
	ReviewConfirmed()
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func()

// ReviewConfirmed calls f.
func (f SinkFunc) ReviewConfirmed() { f() }

// Option configures a Navigator.
type Option func(*Navigator)

// WithSink sets the sink notified on Confirm.
func WithSink(s Sink) Option {
	return func(n *Navigator) { n.sink = s }
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(n *Navigator) { n.log = l }
}

// Snapshot is everything a view needs to render the current state.
type Snapshot struct {
	Order      picking.Order
	Position   int // 1-based
	Total      int
	Confirming bool
	CanRetreat bool
}

// Navigator owns the review state. It is not safe for concurrent use; it is
// driven from a single event loop.
type Navigator struct {
	orders []picking.Order
	state  State
	sink   Sink
	log    zerolog.Logger
}

// New creates a navigator positioned at the first order.
func New(orders []picking.Order, opts ...Option) (*Navigator, error) {
	if len(orders) == 0 {
		return nil, picking.ErrNoOrders
	}

	n := &Navigator{
		orders: orders,
		state:  Reviewing(0),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// State returns the current state.
func (n *Navigator) State() State { return n.state }

func (n *Navigator) last() int { return len(n.orders) - 1 }

// Advance moves to the next order. At the last order it enters Confirming
// instead. It is a no-op while confirming.
func (n *Navigator) Advance() bool {
	if n.state.IsConfirming() {
		return false
	}

	if p := n.state.Position(); p < n.last() {
		return n.transition("advance", Reviewing(p+1))
	}
	return n.transition("advance", Confirming(n.last()))
}

// Retreat moves to the previous order. It is a no-op at the first order and
// while confirming.
func (n *Navigator) Retreat() bool {
	if n.state.IsConfirming() {
		return false
	}

	p := n.state.Position()
	if p == 0 {
		return false
	}
	return n.transition("retreat", Reviewing(p-1))
}

// Confirm notifies the sink and restarts the review at the first order. It is
// a no-op unless confirming.
func (n *Navigator) Confirm() bool {
	if !n.state.IsConfirming() {
		return false
	}

	if n.sink != nil {
		n.sink.ReviewConfirmed()
	}
	n.log.Debug().Int("orders", len(n.orders)).Msg("review confirmed")
	return n.transition("confirm", Reviewing(0))
}

// CancelConfirm leaves Confirming and returns to the last order. It is a
// no-op unless confirming.
func (n *Navigator) CancelConfirm() bool {
	if !n.state.IsConfirming() {
		return false
	}
	return n.transition("cancel", Reviewing(n.last()))
}

// Current returns the displayed order. While confirming this is the last
// order, since the position is frozen there.
func (n *Navigator) Current() picking.Order {
	return n.orders[n.state.Position()]
}

// Label returns the 1-based position and the total for display.
func (n *Navigator) Label() (position, total int) {
	return n.state.Position() + 1, len(n.orders)
}

// Snapshot captures the rendering state.
func (n *Navigator) Snapshot() Snapshot {
	pos, total := n.Label()
	return Snapshot{
		Order:      n.Current(),
		Position:   pos,
		Total:      total,
		Confirming: n.state.IsConfirming(),
		CanRetreat: !n.state.IsConfirming() && n.state.Position() > 0,
	}
}

func (n *Navigator) transition(op string, next State) bool {
	prev := n.state
	n.state = next
	n.log.Debug().
		Str("op", op).
		Stringer("from", prev).
		Stringer("to", next).
		Msg("transition")
	return prev != next
}
