package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/picklist/internal/core/navigator"
	"github.com/colonyops/picklist/pkg/tuitest"
)

func TestActionForZone(t *testing.T) {
	tests := []struct {
		zone string
		want Action
		ok   bool
	}{
		{zone: zonePrev, want: ActionRetreat, ok: true},
		{zone: zoneNext, want: ActionAdvance, ok: true},
		{zone: zoneBack, want: ActionCancel, ok: true},
		{zone: zoneConfirm, want: ActionConfirm, ok: true},
		{zone: "other", want: ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			got, ok := actionForZone(tt.zone)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZoneAt_NilZones(t *testing.T) {
	_, ok := zoneAt(nil, false, tuitest.LeftClick(0, 0))
	assert.False(t, ok)
}

func TestMark_NilZones(t *testing.T) {
	assert.Equal(t, "Next", mark(nil, zoneNext, "Next"))
}

func scannedZone(t *testing.T, zones *zone.Manager, h *harness, id string) *zone.ZoneInfo {
	t.Helper()
	h.model.View()

	var z *zone.ZoneInfo
	require.Eventually(t, func() bool {
		z = zones.Get(id)
		return z != nil && !z.IsZero()
	}, time.Second, 10*time.Millisecond)
	return z
}

func TestModel_ClickNext(t *testing.T) {
	zones := zone.New()
	t.Cleanup(zones.Close)
	h := newHarness(t, 3, zones)

	z := scannedZone(t, zones, h, zoneNext)

	h.send(tuitest.LeftClick(z.StartX, z.StartY))
	assert.Equal(t, navigator.Reviewing(1), h.state())
}

func TestModel_ClickIgnoresOtherButtons(t *testing.T) {
	zones := zone.New()
	t.Cleanup(zones.Close)
	h := newHarness(t, 3, zones)

	z := scannedZone(t, zones, h, zoneNext)

	release := tuitest.LeftClick(z.StartX, z.StartY)
	release.Action = tea.MouseActionRelease
	right := tuitest.LeftClick(z.StartX, z.StartY)
	right.Button = tea.MouseButtonRight

	h.send(release, right)
	assert.Equal(t, navigator.Reviewing(0), h.state())
}

func TestModel_ClickOutsideControls(t *testing.T) {
	zones := zone.New()
	t.Cleanup(zones.Close)
	h := newHarness(t, 3, zones)

	z := scannedZone(t, zones, h, zoneNext)

	h.send(tuitest.LeftClick(z.EndX+50, z.EndY+50))
	assert.Equal(t, navigator.Reviewing(0), h.state())
}
