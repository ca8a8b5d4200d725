package tui

import (
	"strings"
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/picklist/internal/core/navigator"
	"github.com/colonyops/picklist/internal/core/picking"
	"github.com/colonyops/picklist/pkg/tuitest"
)

func TestView_Reviewing(t *testing.T) {
	h := newHarness(t, 3, nil)
	h.send(tuitest.WindowSize(80, 30))

	out := tuitest.StripANSI(h.model.View())

	assert.Contains(t, out, "Picking List")
	assert.Contains(t, out, "PC00004144094")
	assert.Contains(t, out, "Customer 1")
	assert.Contains(t, out, "1 / 3")
	assert.Contains(t, out, "Product 1-A")
	assert.Contains(t, out, "Product 1-B")
	assert.Contains(t, out, "Prev")
	assert.Contains(t, out, "Next")
	assert.NotContains(t, out, "Confirm?")
}

func TestRenderHeader_Labels(t *testing.T) {
	snap := navigator.Snapshot{
		Order:    picking.Order{PickingNo: "PC00004144094", CustomerName: "菅原寛珠"},
		Position: 1,
		Total:    5,
	}

	lines := strings.Split(tuitest.StripANSI(renderHeader(snap, 60)), "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Picking No PC00004144094")
	assert.Contains(t, lines[0], "1 / 5")
	assert.Equal(t, "Customer 菅原寛珠", lines[1])
}

func TestView_TracksPosition(t *testing.T) {
	h := newHarness(t, 3, nil)
	h.send(tuitest.KeyEnter())

	out := tuitest.StripANSI(h.model.View())

	assert.Contains(t, out, "2 / 3")
	assert.Contains(t, out, "Customer 2")
	assert.NotContains(t, out, "Customer 1")
}

func TestView_Confirming(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.send(tuitest.KeyEnter(), tuitest.KeyEnter())

	out := tuitest.StripANSI(h.model.View())

	assert.Contains(t, out, "2 / 2", "position stays on the last order")
	assert.Contains(t, out, "Customer 2")
	assert.Contains(t, out, "Confirm?")
	assert.Contains(t, out, "Back")
	assert.Contains(t, out, "OK")
	assert.NotContains(t, out, "Next")
}

func TestView_CustomTitle(t *testing.T) {
	h := newHarness(t, 1, nil)
	h.model.cfg.TUI.Title = "Outbound Wave 3"

	assert.Contains(t, tuitest.StripANSI(h.model.View()), "Outbound Wave 3")
}

func TestView_HelpFollowsPhase(t *testing.T) {
	h := newHarness(t, 1, nil)

	out := tuitest.StripANSI(h.model.View())
	assert.Contains(t, out, "next")
	assert.NotContains(t, out, "back")

	h.send(tuitest.KeyEnter())
	out = tuitest.StripANSI(h.model.View())
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "back")
}

func TestView_ZoneMarkersAreScanned(t *testing.T) {
	zones := zone.New()
	t.Cleanup(zones.Close)
	marked := newHarness(t, 2, zones)
	plain := newHarness(t, 2, nil)

	assert.Equal(t, tuitest.StripANSI(plain.model.View()), tuitest.StripANSI(marked.model.View()))
}

func TestSpread(t *testing.T) {
	assert.Equal(t, "a    b", spread("a", "b", 6))
	assert.Equal(t, "ab c", spread("ab", "c", 2))
}
