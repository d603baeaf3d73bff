package tui

import (
	"fmt"
	"strings"

	"shufflegrid/internal/board"
	"shufflegrid/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	gridOriginX = 2
	gridOriginY = 2
	gridGapX    = 2
	gridGapY    = 1
)

var paletteNames = []string{"red", "green", "blue", "yellow", "purple", "teal", "orange", "violet", "gray"}

func paletteName(i int) string {
	return paletteNames[i%len(paletteNames)]
}

func colorByName(name string) (lipgloss.TerminalColor, bool) {
	for i, n := range paletteNames {
		if n == name {
			return boxPalette[i], true
		}
	}
	return nil, false
}

// gridLayout fixes the cell geometry for one variant so that rendering and
// mouse hit-testing agree on where every drop zone sits.
type gridLayout struct {
	cols, count  int
	cellW, cellH int // outer size, borders included
}

func (m appModel) layout() gridLayout {
	lay := gridLayout{
		cols:  m.variant.Columns,
		count: m.variant.Count,
		cellW: 12,
		cellH: 5,
	}
	if m.variant.Slug == "boxes" {
		lay.cellW = 18
		lay.cellH = 7
	}
	return lay
}

// zoneAt maps terminal coordinates to a drop-zone rank. Gaps between cells
// miss; borders count as part of the cell.
func (lay gridLayout) zoneAt(x, y int) (int, bool) {
	relX := x - gridOriginX
	relY := y - gridOriginY
	if relX < 0 || relY < 0 {
		return 0, false
	}
	strideX := lay.cellW + gridGapX
	strideY := lay.cellH + gridGapY
	col := relX / strideX
	row := relY / strideY
	if relX%strideX >= lay.cellW || relY%strideY >= lay.cellH {
		return 0, false
	}
	if col >= lay.cols {
		return 0, false
	}
	rank := row*lay.cols + col
	if rank >= lay.count {
		return 0, false
	}
	return rank, true
}

func (m appModel) View() string {
	switch m.view {
	case viewBoard:
		return m.viewBoard()
	default:
		return m.viewMenu()
	}
}

func (m appModel) viewMenu() string {
	header := lipgloss.NewStyle().Bold(true).Render("shufflegrid") +
		styleMuted().Render("  — pick a grid")
	footer := styleMuted().Render("enter: open  ↑/↓: move  q: quit")
	return strings.Join([]string{header, "", m.menu.View(), "", footer}, "\n")
}

func (m appModel) viewBoard() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render(m.variant.Title)
	b.WriteString(strings.Repeat(" ", gridOriginX) + title)
	if m.g != nil && m.g.GameOver() {
		if m.g.Won() {
			b.WriteString("  " + lipgloss.NewStyle().Bold(true).Foreground(colorWin).Render("WON"))
		} else {
			b.WriteString("  " + lipgloss.NewStyle().Bold(true).Foreground(colorLoss).Render("LOST"))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	if m.showStats {
		b.WriteString("\n" + m.renderStats() + "\n")
	}

	status := m.statusLine()
	if status != "" {
		b.WriteString("\n" + strings.Repeat(" ", gridOriginX) + status)
	}
	b.WriteString("\n\n" + strings.Repeat(" ", gridOriginX) + m.help.View(m.keys))
	return b.String()
}

// renderGrid draws the cells in rank order, cols per row. The geometry must
// stay in lockstep with gridLayout.zoneAt.
func (m appModel) renderGrid() string {
	lay := m.layout()
	items := m.b.Items()

	var rows []string
	for start := 0; start < len(items); start += lay.cols {
		end := start + lay.cols
		if end > len(items) {
			end = len(items)
		}
		cells := make([]string, 0, lay.cols)
		for rank := start; rank < end; rank++ {
			cells = append(cells, m.renderCell(items[rank], rank, lay))
		}
		row := ""
		for i, c := range cells {
			if i > 0 {
				row = lipgloss.JoinHorizontal(lipgloss.Top, row, strings.Repeat(" ", gridGapX), c)
			} else {
				row = c
			}
		}
		rows = append(rows, row)
	}

	joined := strings.Join(rows, strings.Repeat("\n", gridGapY+1))
	// Indent every line to the grid origin.
	indent := strings.Repeat(" ", gridOriginX)
	lines := strings.Split(joined, "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (m appModel) renderCell(it model.Item, rank int, lay gridLayout) string {
	draggingID, dragging := m.b.Dragging()
	zone := board.ZoneID(rank)

	borderColor := colorCellBorder
	switch {
	case dragging && draggingID == it.ID:
		borderColor = colorDraggingBorder
	case dragging && m.b.Hovered() == zone:
		borderColor = colorHoverBorder
	case rank == m.cursor:
		borderColor = colorCursorBorder
	}

	innerW := lay.cellW - 2
	innerH := lay.cellH - 2
	st := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor)

	label := it.Label
	if m.g != nil {
		// Game cards: face down until flipped.
		switch {
		case !it.Flipped:
			label = "▒▒▒"
			st = st.Foreground(colorMuted)
		case it.Bomb:
			label = "✸ BOOM"
			st = st.Foreground(colorLoss).Bold(true)
		default:
			label = "✓ " + it.Label
			st = st.Foreground(colorWin)
		}
	} else if bg, ok := colorByName(it.Color); ok {
		st = st.Background(bg).Foreground(colorAccentFg).Bold(true)
	} else {
		st = st.Foreground(colorSurfaceFg).Bold(true)
	}

	if dragging && draggingID == it.ID {
		label = "✥ " + label
	}
	return st.Render(label)
}

func (m appModel) statusLine() string {
	if m.status != "" {
		return m.status
	}
	if id, dragging := m.b.Dragging(); dragging {
		if it, ok := m.b.Get(id); ok {
			return styleMuted().Render(fmt.Sprintf("carrying %s — space drops, esc cancels", it.Label))
		}
	}
	if m.g != nil {
		return styleMuted().Render(fmt.Sprintf("%d safe cards left — enter flips, space drags", m.g.SafeRemaining()))
	}
	return styleMuted().Render("space grabs a box, space again swaps it with another")
}

func (m appModel) renderStats() string {
	v, err := m.ledger.Variant(m.variant.Slug)
	if err != nil {
		m.log.Warn().Err(err).Msg("stats summary failed")
	}
	all, err := m.ledger.Session()
	if err != nil {
		m.log.Warn().Err(err).Msg("stats summary failed")
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Session stats"),
		fmt.Sprintf("%-8s swaps %-4d aborts %-4d flips %-4d wins %-3d losses %-3d",
			m.variant.Slug, v.Swaps, v.Aborts, v.Flips, v.Wins, v.Losses),
		fmt.Sprintf("%-8s swaps %-4d aborts %-4d flips %-4d wins %-3d losses %-3d",
			"total", all.Swaps, all.Aborts, all.Flips, all.Wins, all.Losses),
	}

	panel := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Render(strings.Join(lines, "\n"))

	indent := strings.Repeat(" ", gridOriginX)
	out := strings.Split(panel, "\n")
	for i := range out {
		out[i] = indent + out[i]
	}
	return strings.Join(out, "\n")
}
