package tui

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"shufflegrid/internal/board"
	"shufflegrid/internal/game"
	"shufflegrid/internal/model"
	"shufflegrid/internal/stats"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/rs/zerolog"
)

type view int

const (
	viewMenu view = iota
	viewBoard
)

type appModel struct {
	width  int
	height int

	view view
	menu list.Model
	// fromMenu records whether esc from a board returns to the menu or quits
	// (variant subcommands skip the menu entirely).
	fromMenu bool

	variant model.Variant
	b       *board.Board
	g       *game.Game // nil unless variant.Game

	// cursor is the rank of the drop zone under the keyboard cursor.
	cursor int
	// pressRank is the zone where the mouse button went down (-1 when up);
	// releasing on the same zone is a click, not a drop.
	pressRank int

	keys keyMap
	help help.Model

	showStats bool
	status    string

	ledger *stats.Ledger
	log    zerolog.Logger
	rng    *rand.Rand
}

// Options configures the TUI session.
type Options struct {
	// Variant jumps straight into a board screen; empty means the menu.
	Variant string
	// Seed makes bomb placement (and nothing else) reproducible; 0 means
	// time-seeded.
	Seed int64
	// Theme overrides background detection ("light"|"dark"|"auto"|"").
	Theme string
}

func newAppModel(opts Options) (appModel, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// A failed ledger open degrades to a nil (no-op) ledger rather than
	// blocking play.
	ledger, err := stats.Open()
	if err != nil {
		ledger = nil
	}

	m := appModel{
		view:      viewMenu,
		pressRank: -1,
		keys:      newKeyMap(false),
		help:      help.New(),
		ledger:    ledger,
		log:       newTransitionLogger(),
		rng:       rand.New(rand.NewSource(seed)),
	}
	m.menu = newMenuList()
	m.refreshMenu()

	if opts.Variant != "" {
		v, ok := model.FindVariant(opts.Variant)
		if !ok {
			ledger.Close()
			return appModel{}, fmt.Errorf("unknown variant %q (want one of: boxes, grid, tiles, bomb)", opts.Variant)
		}
		m.enterVariant(v, false)
	}
	return m, nil
}

func (m *appModel) enterVariant(v model.Variant, fromMenu bool) {
	m.variant = v
	m.fromMenu = fromMenu
	m.view = viewBoard
	m.cursor = 0
	m.pressRank = -1
	m.showStats = false
	m.status = ""
	m.keys = newKeyMap(v.Game)

	if v.Game {
		m.g = game.New(v.Count, m.rng)
		m.b = m.g.Board()
	} else {
		m.g = nil
		m.b = board.New(buildItems(v))
	}
	m.log.Debug().Str("variant", v.Slug).Int("count", v.Count).Msg("enter variant")
}

func (m *appModel) leaveBoard() {
	m.view = viewMenu
	m.b = nil
	m.g = nil
	m.keys = newKeyMap(false)
	m.refreshMenu()
}

// buildItems creates the fixed item set for a non-game variant. Orders are the
// 0..N-1 identity; labels and colors are presentation only.
func buildItems(v model.Variant) []model.Item {
	switch v.Slug {
	case "boxes":
		return []model.Item{
			{ID: "box-a", Label: "A", Color: "red", Order: 0},
			{ID: "box-b", Label: "B", Color: "green", Order: 1},
			{ID: "box-c", Label: "C", Color: "blue", Order: 2},
		}
	case "tiles":
		names := []string{"sun", "moon", "star", "leaf", "wave", "peak", "rose", "fern", "dune"}
		items := make([]model.Item, 0, len(names))
		for i, name := range names {
			items = append(items, model.Item{ID: "tile-" + name, Label: name, Order: i})
		}
		return items
	default: // grid
		items := make([]model.Item, 0, v.Count)
		for i := 0; i < v.Count; i++ {
			items = append(items, model.Item{
				ID:    "box-" + strconv.Itoa(i+1),
				Label: strconv.Itoa(i + 1),
				Color: paletteName(i),
				Order: i,
			})
		}
		return items
	}
}

// itemUnderCursor resolves the keyboard cursor to the occupying item.
func (m appModel) itemUnderCursor() (model.Item, bool) {
	id, ok := m.b.ItemAt(board.ZoneID(m.cursor))
	if !ok {
		return model.Item{}, false
	}
	return m.b.Get(id)
}

func (m appModel) record(kind string) {
	if err := m.ledger.Record(m.variant.Slug, kind); err != nil {
		m.log.Warn().Err(err).Str("kind", kind).Msg("stats record failed")
	}
}
