package logging

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	pickingNoKey contextKey = "picking_no"
)

// WithSessionID adds a review session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithPickingNo adds the picking number being reviewed to the context.
func WithPickingNo(ctx context.Context, pickingNo string) context.Context {
	return context.WithValue(ctx, pickingNoKey, pickingNo)
}

// GetSessionID retrieves the session ID from the context.
// Returns empty string if not present.
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// GetPickingNo retrieves the picking number from the context.
// Returns empty string if not present.
func GetPickingNo(ctx context.Context) string {
	if no, ok := ctx.Value(pickingNoKey).(string); ok {
		return no
	}
	return ""
}
