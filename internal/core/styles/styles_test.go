package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, ThemeNames())
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#7aa2f7"), p.Primary)

	_, ok = GetPalette("does-not-exist")
	assert.False(t, ok)
}

func TestBlend(t *testing.T) {
	a := lipgloss.Color("#000000")
	b := lipgloss.Color("#ffffff")

	assert.Equal(t, a, blend(a, b, 0))
	assert.Equal(t, b, blend(a, b, 1))

	mid := blend(a, b, 0.5)
	assert.NotEqual(t, a, mid)
	assert.NotEqual(t, b, mid)

	assert.Equal(t, lipgloss.Color("red"), blend("red", b, 0.5), "unparseable input falls back")
}

func TestSetTheme_UpdatesPalette(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, _ := GetPalette("gruvbox")
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, string(p.Foreground), *cfg.Document.Color)
}
