// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	TableHeaderStyle   lipgloss.Style
	TableCellStyle     lipgloss.Style
	TableBorderStyle   lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Review screen.
	TitleStyle         lipgloss.Style
	CardStyle          lipgloss.Style
	PickingLabelStyle  lipgloss.Style
	PickingPrefixStyle lipgloss.Style
	PickingSuffixStyle lipgloss.Style
	CustomerStyle      lipgloss.Style
	CounterStyle       lipgloss.Style
	ItemRowStyle       lipgloss.Style
	ItemRowAltStyle    lipgloss.Style
	ItemNameStyle      lipgloss.Style
	ItemQuantityStyle  lipgloss.Style

	ButtonStyle          lipgloss.Style
	ButtonSecondaryStyle lipgloss.Style
	ButtonDisabledStyle  lipgloss.Style
	ConfirmMessageStyle  lipgloss.Style
	HelpStyle            lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	stripe := blend(p.Background, p.Surface, 0.5)

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Padding(0, 1)
	TableCellStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Padding(0, 1)
	TableBorderStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true).
		MarginBottom(1)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	PickingLabelStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	PickingPrefixStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	PickingSuffixStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Underline(true)
	CustomerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CounterStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	ItemRowStyle = lipgloss.NewStyle().
		Background(stripe).
		Padding(0, 1)
	ItemRowAltStyle = lipgloss.NewStyle().
		Padding(0, 1)
	ItemNameStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	ItemQuantityStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Align(lipgloss.Center)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(p.Primary).
		Foreground(p.Background).
		Bold(true)
	ButtonSecondaryStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(p.Surface).
		Foreground(p.Foreground)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(p.Surface).
		Foreground(p.Muted)
	ConfirmMessageStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true).
		MarginBottom(1)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toast.
		BorderForeground(p.Primary).
		Foreground(p.Foreground)
	ToastWarningStyle = toast.
		BorderForeground(p.Warning).
		Foreground(p.Warning)
	ToastErrorStyle = toast.
		BorderForeground(p.Error).
		Foreground(p.Error)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
