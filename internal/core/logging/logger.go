// Package logging holds logger helpers shared by picklist components.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/picklist/internal/core/notify"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Notifications returns a bus subscriber that writes every notification to l.
// Events carry ctx so ContextHook can attach the review session fields.
func Notifications(ctx context.Context, l zerolog.Logger) notify.Subscriber {
	return func(n notify.Notification) {
		var ev *zerolog.Event
		switch n.Level {
		case notify.LevelError:
			ev = l.Error()
		case notify.LevelWarning:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		ev.Ctx(ctx).
			Time("created_at", n.CreatedAt).
			Msg(n.Message)
	}
}
