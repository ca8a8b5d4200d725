package navigator

import "fmt"

type variant int

const (
	reviewing variant = iota
	confirming
)

// State is the navigator state: either Reviewing(position) or
// Confirming(lastPosition). The fields are unexported so a State can only be
// built through Reviewing and Confirming.
type State struct {
	variant  variant
	position int
}

// Reviewing returns the state displaying the record at position.
func Reviewing(position int) State {
	return State{variant: reviewing, position: position}
}

// Confirming returns the confirmation state entered from lastPosition.
func Confirming(lastPosition int) State {
	return State{variant: confirming, position: lastPosition}
}

// Position is the displayed record index. While confirming it is the frozen
// last position.
func (s State) Position() int { return s.position }

// IsConfirming reports whether the state is Confirming.
func (s State) IsConfirming() bool { return s.variant == confirming }

func (s State) String() string {
	if s.variant == confirming {
		return fmt.Sprintf("Confirming(%d)", s.position)
	}
	return fmt.Sprintf("Reviewing(%d)", s.position)
}
