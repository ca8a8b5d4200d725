package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/picklist/internal/core/navigator"
	"github.com/colonyops/picklist/internal/core/picking"
	"github.com/colonyops/picklist/internal/core/styles"
)

const (
	minCardWidth   = 20
	quantityColumn = 6

	// horizontal space taken by the card border and padding
	cardChrome = 6
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.cardWidth()
	snap := m.nav.Snapshot()

	sections := []string{
		styles.TitleStyle.Render(m.cfg.TUI.Title),
		renderCard(m, snap, width),
	}

	if toasts := m.toasts.view(width + cardChrome); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.help.View(m.keys))

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.zones == nil {
		return out
	}
	return m.zones.Scan(out)
}

// cardWidth is the content width inside the card. Until the first window
// size message arrives the configured maximum is used.
func (m Model) cardWidth() int {
	w := m.cfg.TUI.MaxWidth
	if m.width > 0 && m.width < w {
		w = m.width
	}
	w -= cardChrome
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

func renderCard(m Model, snap navigator.Snapshot, width int) string {
	parts := []string{
		renderHeader(snap, width),
		"",
		renderItems(snap.Order.Items, width),
		"",
	}

	if snap.Confirming {
		parts = append(parts,
			styles.ConfirmMessageStyle.Render(styles.IconCheck+" All picking lists reviewed. Confirm?"),
			renderConfirmControls(m, width),
		)
	} else {
		parts = append(parts, renderReviewControls(m, snap, width))
	}

	return styles.CardStyle.Width(width + cardChrome - 2).Render(strings.Join(parts, "\n"))
}

func renderHeader(snap navigator.Snapshot, width int) string {
	prefix, suffix := picking.SplitPickingNo(snap.Order.PickingNo)
	number := styles.PickingLabelStyle.Render(styles.IconPackage+" Picking No ") +
		styles.PickingPrefixStyle.Render(prefix) +
		styles.PickingSuffixStyle.Render(suffix)

	counter := styles.CounterStyle.Render(fmt.Sprintf("%d / %d", snap.Position, snap.Total))

	gap := width - lipgloss.Width(number) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	top := number + strings.Repeat(" ", gap) + counter

	customer := styles.PickingLabelStyle.Render("Customer ") +
		styles.CustomerStyle.Render(snap.Order.CustomerName)
	return top + "\n" + customer
}

func renderItems(items []picking.Item, width int) string {
	rows := make([]string, 0, len(items))
	nameWidth := width - quantityColumn - 2
	if nameWidth < 1 {
		nameWidth = 1
	}

	for i, it := range items {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			styles.ItemNameStyle.Width(nameWidth).Render(it.ProductName),
			styles.ItemQuantityStyle.Width(quantityColumn).Render(it.Quantity),
		)
		style := styles.ItemRowAltStyle
		if i%2 == 0 {
			style = styles.ItemRowStyle
		}
		rows = append(rows, style.Width(width).Render(row))
	}
	return strings.Join(rows, "\n")
}

func renderReviewControls(m Model, snap navigator.Snapshot, width int) string {
	prevLabel := styles.IconPrev + " Prev"
	var prev string
	if snap.CanRetreat {
		prev = mark(m.zones, zonePrev, styles.ButtonSecondaryStyle.Render(prevLabel))
	} else {
		prev = styles.ButtonDisabledStyle.Render(prevLabel)
	}
	next := mark(m.zones, zoneNext, styles.ButtonStyle.Render("Next "+styles.IconNext))

	return spread(prev, next, width)
}

func renderConfirmControls(m Model, width int) string {
	back := mark(m.zones, zoneBack, styles.ButtonSecondaryStyle.Render("Back"))
	ok := mark(m.zones, zoneConfirm, styles.ButtonStyle.Render("OK"))
	return spread(back, ok, width)
}

// spread places left and right at the edges of a line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
