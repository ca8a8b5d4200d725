package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/picklist/internal/core/picking"
)

func TestResolveOrder(t *testing.T) {
	orders := []picking.Order{
		{PickingNo: "PC00004144094"},
		{PickingNo: "PC00004144095"},
		{PickingNo: "XX00000004095"},
		{PickingNo: "12"},
	}

	tests := []struct {
		name    string
		arg     string
		want    int
		wantErr string
	}{
		{name: "full number", arg: "PC00004144095", want: 1},
		{name: "unique suffix", arg: "4094", want: 0},
		{name: "ambiguous suffix", arg: "4095", wantErr: "matches 2 orders"},
		{name: "short number is its own suffix", arg: "12", want: 3},
		{name: "position", arg: "3", want: 2},
		{name: "trimmed", arg: " 1 ", want: 0},
		{name: "position out of range", arg: "9", wantErr: "order not found"},
		{name: "unknown", arg: "nope", wantErr: "order not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveOrder(orders, tt.arg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOrder_NotFoundIsSentinel(t *testing.T) {
	_, err := resolveOrder([]picking.Order{{PickingNo: "PC1"}}, "PC2")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderMarkdown(t *testing.T) {
	md := orderMarkdown(picking.Order{
		PickingNo:    "PC00004144094",
		CustomerName: "Alice",
		Items: []picking.Item{
			{ProductName: "A|B", Quantity: "1"},
			{ProductName: "C", Quantity: "2"},
		},
	}, 2, 5)

	assert.Contains(t, md, "# PC000041**4094**")
	assert.Contains(t, md, "**Customer:** Alice")
	assert.Contains(t, md, "Order 2 of 5")
	assert.Contains(t, md, `| A\|B | 1 |`)
	assert.Contains(t, md, "Total quantity: 3")
}

func TestOrderMarkdown_NoTotalForFreeformQuantity(t *testing.T) {
	md := orderMarkdown(picking.Order{
		PickingNo: "PC1",
		Items:     []picking.Item{{ProductName: "x", Quantity: "case"}},
	}, 1, 1)

	assert.NotContains(t, md, "Total quantity")
}

func TestShowCmd_Raw(t *testing.T) {
	flags := defaultFlags()

	out, err := runApp(t, flags, []string{"show", "--raw", "4096"}, NewShowCmd(flags).Register)
	require.NoError(t, err)
	assert.Contains(t, out, "PC000041**4096**")
	assert.Contains(t, out, "Order 3 of 5")
}

func TestShowCmd_Rendered(t *testing.T) {
	flags := defaultFlags()

	out, err := runApp(t, flags, []string{"show", "1"}, NewShowCmd(flags).Register)
	require.NoError(t, err)
	assert.Contains(t, out, "4094")
	assert.NotContains(t, out, "**")
}

func TestShowCmd_RequiresOneArg(t *testing.T) {
	flags := defaultFlags()

	_, err := runApp(t, flags, []string{"show"}, NewShowCmd(flags).Register)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}
