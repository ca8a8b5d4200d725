package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/picklist/internal/core/notify"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logger := Component("test-component")
	logger.Info().Msg("test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-component", entry["cmp"])
	assert.Equal(t, "test message", entry["message"])
}

func TestNotifications(t *testing.T) {
	tests := []struct {
		name      string
		level     notify.Level
		wantLevel string
	}{
		{"info", notify.LevelInfo, "info"},
		{"warning", notify.LevelWarning, "warn"},
		{"error", notify.LevelError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})
			ctx := WithSessionID(context.Background(), "sess-1")

			sub := Notifications(ctx, logger)
			sub(notify.Notification{
				Level:     tt.level,
				Message:   "review confirmed",
				CreatedAt: time.Now(),
			})

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "review confirmed", entry["message"])
			assert.Equal(t, "sess-1", entry["session_id"])
		})
	}
}
