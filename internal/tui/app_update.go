package tui

import (
	"fmt"

	"shufflegrid/internal/board"
	"shufflegrid/internal/game"
	"shufflegrid/internal/stats"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeMenu()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.view {
		case viewMenu:
			return m.updateMenu(msg)
		case viewBoard:
			return m.updateBoard(msg)
		}

	case tea.MouseMsg:
		if m.view == viewBoard {
			return m.updateMouse(msg)
		}
	}
	return m, nil
}

func (m *appModel) resizeMenu() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 72 {
		w = 72
	}
	m.menu.SetSize(w, h)
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if it, ok := m.menu.SelectedItem().(variantItem); ok {
			m.enterVariant(it.variant, true)
			return m, nil
		}
	case "esc":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m appModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if _, dragging := m.b.Dragging(); dragging {
			m.b.DragCancel()
			m.record(stats.KindAbort)
			m.log.Debug().Str("variant", m.variant.Slug).Str("event", "drag_cancel").Msg("transition")
			return m, nil
		}
		if m.showStats {
			m.showStats = false
			return m, nil
		}
		if m.fromMenu {
			m.leaveBoard()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-m.variant.Columns), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(m.variant.Columns), nil
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1), nil

	case key.Matches(msg, m.keys.Grab):
		return m.toggleGrab(), nil

	case key.Matches(msg, m.keys.Flip):
		if m.g != nil {
			return m.flipAtCursor(), nil
		}
		return m.toggleGrab(), nil

	case key.Matches(msg, m.keys.Reset):
		if m.g != nil {
			m.g.Reset()
			m.b = m.g.Board()
			m.record(stats.KindReset)
			m.status = ""
			m.log.Debug().Str("variant", m.variant.Slug).Str("event", "reset").Msg("transition")
		}
		return m, nil
	}
	return m, nil
}

// moveCursor shifts the keyboard cursor by delta ranks, clamped to the board.
// While a drag is active the move doubles as a drag-over on the new zone.
func (m appModel) moveCursor(delta int) appModel {
	next := m.cursor + delta
	if next < 0 || next >= m.b.Len() {
		return m
	}
	// Horizontal moves stop at row edges instead of wrapping.
	if delta == 1 && next%m.variant.Columns == 0 {
		return m
	}
	if delta == -1 && m.cursor%m.variant.Columns == 0 {
		return m
	}
	m.cursor = next
	if _, dragging := m.b.Dragging(); dragging {
		m.b.DragOver(board.ZoneID(m.cursor))
	}
	return m
}

// toggleGrab picks up the item under the cursor, or drops the active drag
// onto the cursor's zone.
func (m appModel) toggleGrab() appModel {
	if _, dragging := m.b.Dragging(); dragging {
		return m.drop(board.ZoneID(m.cursor))
	}
	return m.pickUp()
}

func (m appModel) pickUp() appModel {
	it, ok := m.itemUnderCursor()
	if !ok {
		return m
	}
	// Rejected pick-ups are silent: the grid simply does not respond.
	started := m.b.DragStart(it.ID)
	m.log.Debug().
		Str("variant", m.variant.Slug).
		Str("event", "drag_start").
		Str("item", it.ID).
		Bool("accepted", started).
		Msg("transition")
	if started {
		m.b.DragOver(board.ZoneID(m.cursor))
	}
	return m
}

func (m appModel) drop(target string) appModel {
	src, _ := m.b.Dragging()
	committed := m.b.DragEnd(target)
	if committed {
		m.record(stats.KindSwap)
	} else {
		m.record(stats.KindAbort)
	}
	m.log.Debug().
		Str("variant", m.variant.Slug).
		Str("event", "drag_end").
		Str("source", src).
		Str("target", target).
		Bool("committed", committed).
		Msg("transition")
	return m
}

func (m appModel) flipAtCursor() appModel {
	it, ok := m.itemUnderCursor()
	if !ok {
		return m
	}
	res := m.g.Flip(it.ID)
	m.log.Debug().
		Str("variant", m.variant.Slug).
		Str("event", "flip").
		Str("item", it.ID).
		Int("result", int(res)).
		Msg("transition")

	switch res {
	case game.FlipSafe:
		m.record(stats.KindFlip)
		m.status = fmt.Sprintf("Safe. %d to go.", m.g.SafeRemaining())
	case game.FlipBomb:
		m.record(stats.KindFlip)
		m.record(stats.KindLoss)
		m.status = "BOOM — that was the bomb. Press r for a new round."
	case game.FlipWin:
		m.record(stats.KindFlip)
		m.record(stats.KindWin)
		m.status = "All safe cards found — you win! Press r to play again."
	}
	return m
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lay := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		rank, ok := lay.zoneAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = rank
		m.pressRank = rank
		return m.pickUp(), nil

	case tea.MouseActionMotion:
		if rank, ok := lay.zoneAt(msg.X, msg.Y); ok {
			m.cursor = rank
			if _, dragging := m.b.Dragging(); dragging {
				m.b.DragOver(board.ZoneID(rank))
			}
		}
		return m, nil

	case tea.MouseActionRelease:
		press := m.pressRank
		m.pressRank = -1
		rank, ok := lay.zoneAt(msg.X, msg.Y)

		if _, dragging := m.b.Dragging(); dragging {
			if ok && rank == press {
				// A click in place, not a drop.
				m.b.DragCancel()
				if m.g != nil {
					m.cursor = rank
					return m.flipAtCursor(), nil
				}
				return m, nil
			}
			if ok {
				m.cursor = rank
				return m.drop(board.ZoneID(rank)), nil
			}
			// Released outside the grid: drag-end with no resolvable target.
			return m.drop(""), nil
		}

		// Click on an immovable card still counts as a flip attempt.
		if ok && rank == press && m.g != nil {
			m.cursor = rank
			return m.flipAtCursor(), nil
		}
		return m, nil
	}
	return m, nil
}
