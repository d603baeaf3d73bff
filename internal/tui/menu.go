package tui

import (
	"fmt"
	"io"
	"strings"

	"shufflegrid/internal/model"
	"shufflegrid/internal/stats"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type variantItem struct {
	variant model.Variant
	sum     stats.Summary
}

func (i variantItem) FilterValue() string { return i.variant.Title }

func newMenuList() list.Model {
	l := list.New([]list.Item{}, newVariantCardDelegate(), 0, 0)
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC backs out of the app.
	l.KeyMap.Quit.SetKeys("q")
	return l
}

func (m *appModel) refreshMenu() {
	items := make([]list.Item, 0, len(model.Variants))
	for _, v := range model.Variants {
		sum, err := m.ledger.Variant(v.Slug)
		if err != nil {
			m.log.Warn().Err(err).Str("variant", v.Slug).Msg("stats summary failed")
		}
		items = append(items, variantItem{variant: v, sum: sum})
	}
	m.menu.SetItems(items)
}

type variantCardDelegate struct {
	normalCard   lipgloss.Style
	selectedCard lipgloss.Style
	titleStyle   lipgloss.Style
	metaStyle    lipgloss.Style
}

func newVariantCardDelegate() variantCardDelegate {
	base := lipgloss.NewStyle().
		Width(0). // Set per-render.
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCellBorder).
		Foreground(colorSurfaceFg)

	selected := base.BorderForeground(colorAccent)

	return variantCardDelegate{
		normalCard:   base,
		selectedCard: selected,
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		metaStyle:    lipgloss.NewStyle().Foreground(colorCardMetaFg),
	}
}

func (d variantCardDelegate) Height() int  { return 5 } // 3 inner lines + border top/bottom
func (d variantCardDelegate) Spacing() int { return 1 }
func (d variantCardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d variantCardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	totalW := m.Width()
	if totalW < 12 {
		fmt.Fprint(w, "")
		return
	}

	card := d.normalCard
	if index == m.Index() {
		card = d.selectedCard
	}
	frameW := card.GetHorizontalFrameSize()
	innerW := totalW - frameW
	if innerW < 1 {
		innerW = 1
	}
	card = card.Width(innerW)

	it, ok := item.(variantItem)
	if !ok {
		fmt.Fprint(w, card.Render(fmt.Sprint(item)))
		return
	}

	title := it.variant.Title
	if it.variant.Game {
		title += "  ◆"
	}

	meta := fmt.Sprintf("%d items • %d×%d", it.variant.Count, rowsFor(it.variant), it.variant.Columns)
	if it.variant.Game {
		if it.sum.Wins+it.sum.Losses > 0 {
			meta += fmt.Sprintf("  |  %dW/%dL this session", it.sum.Wins, it.sum.Losses)
		}
	} else if it.sum.Swaps > 0 {
		meta += fmt.Sprintf("  |  %d swaps this session", it.sum.Swaps)
	}

	lines := []string{
		d.titleStyle.Render(title),
		d.metaStyle.Render(truncateToWidth(it.variant.Blurb, innerW)),
		d.metaStyle.Render(truncateToWidth(meta, innerW)),
	}
	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], innerW)
	}
	fmt.Fprint(w, card.Render(strings.Join(lines, "\n")))
}

func rowsFor(v model.Variant) int {
	if v.Columns <= 0 {
		return 1
	}
	return (v.Count + v.Columns - 1) / v.Columns
}

func truncateToWidth(s string, w int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padOrCutANSI(s string, w int) string {
	cur := xansi.StringWidth(s)
	switch {
	case cur < w:
		return s + strings.Repeat(" ", w-cur)
	case cur > w:
		return xansi.Cut(s, 0, w) + "\x1b[0m"
	default:
		return s
	}
}
