package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/picklist/internal/core/config"
	"github.com/colonyops/picklist/internal/core/navigator"
	"github.com/colonyops/picklist/internal/core/notify"
	"github.com/colonyops/picklist/internal/core/picking"
)

type harness struct {
	model     Model
	bus       *notify.Bus
	confirmed int
}

type harnessOpt func(*config.Config)

func withAcceleratorConfirms(v bool) harnessOpt {
	return func(c *config.Config) { c.Review.AcceleratorConfirms = &v }
}

func testOrders(n int) []picking.Order {
	out := make([]picking.Order, n)
	for i := range out {
		out[i] = picking.Order{
			PickingNo:    fmt.Sprintf("PC0000414409%d", 4+i),
			CustomerName: fmt.Sprintf("Customer %d", i+1),
			Items: []picking.Item{
				{ProductName: fmt.Sprintf("Product %d-A", i+1), Quantity: "2"},
				{ProductName: fmt.Sprintf("Product %d-B", i+1), Quantity: "10"},
			},
		}
	}
	return out
}

func newHarness(t *testing.T, n int, zones *zone.Manager, opts ...harnessOpt) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &harness{bus: notify.NewBus()}
	nav, err := navigator.New(testOrders(n), navigator.WithSink(navigator.SinkFunc(func() {
		h.confirmed++
		h.bus.Infof("review confirmed")
	})))
	require.NoError(t, err)

	h.model = New(Deps{
		Config:    &cfg,
		Navigator: nav,
		Bus:       h.bus,
		Zones:     zones,
	})
	t.Cleanup(h.model.Close)
	return h
}

func (h *harness) send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = h.model.Update(msg)
		h.model = next.(Model)
	}
	return cmd
}

func (h *harness) state() navigator.State {
	return h.model.Navigator().State()
}
