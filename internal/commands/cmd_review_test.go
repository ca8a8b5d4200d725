package commands

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/picklist/internal/core/logging"
	"github.com/colonyops/picklist/internal/core/notify"
	"github.com/colonyops/picklist/internal/core/picking"
	"github.com/colonyops/picklist/internal/tui"
	"github.com/colonyops/picklist/pkg/tuitest"
)

func TestReviewSession_ConfirmPublishes(t *testing.T) {
	orders := []picking.Order{{PickingNo: "PC1"}, {PickingNo: "PC2"}}

	sess, err := newReviewSession(context.Background(), nil, orders)
	require.NoError(t, err)
	t.Cleanup(sess.Close)

	assert.NotEmpty(t, logging.GetSessionID(sess.ctx))

	var got []notify.Notification
	sess.bus.Subscribe(func(n notify.Notification) { got = append(got, n) })

	var m tea.Model = sess.model
	for range 3 {
		m, _ = m.Update(tuitest.KeyEnter())
	}

	assert.Equal(t, 1, sess.confirmations)
	require.Len(t, got, 1)
	assert.Equal(t, "review confirmed", got[0].Message)
	assert.Equal(t, 0, m.(tui.Model).Navigator().State().Position())
}

func TestReviewSession_RejectsEmpty(t *testing.T) {
	_, err := newReviewSession(context.Background(), nil, nil)
	assert.ErrorIs(t, err, picking.ErrNoOrders)
}

func TestReviewSession_CloseIsIdempotent(t *testing.T) {
	sess, err := newReviewSession(context.Background(), nil, []picking.Order{{PickingNo: "PC1"}})
	require.NoError(t, err)

	sess.Close()
	sess.Close()
}
