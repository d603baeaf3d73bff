package board

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"shufflegrid/internal/model"
)

// Board owns the item table for one grid plus the drag state machine that
// reorders it. All methods are synchronous and are expected to run on a single
// goroutine (the bubbletea update loop delivers events serially), so there is
// no locking here.
//
// Reordering is a transposition: a completed drag exchanges exactly the two
// endpoints' Order values. It is deliberately not a list splice — all other
// items keep their rank.
type Board struct {
	items      map[string]*model.Item
	zoneByItem map[string]string
	itemByZone map[string]string

	activeID  string
	hoverZone string

	// movable, when set, further restricts which items may be dragged or
	// targeted (e.g. the bomb game freezes everything once the game is over).
	// Flipped items are immovable regardless.
	movable func(id string) bool
}

const zonePrefix = "drop-"

// ZoneID returns the drop-zone id for a rank ("drop-0", "drop-1", ...).
func ZoneID(rank int) string {
	return fmt.Sprintf("%s%d", zonePrefix, rank)
}

// ZoneRank parses a drop-zone id back into its rank.
func ZoneRank(zone string) (int, bool) {
	rest, ok := strings.CutPrefix(zone, zonePrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// New builds a board from the given items. Orders are normalized to a dense
// 0..N-1 range preserving the incoming relative order (ties break by ID so the
// result is deterministic).
func New(items []model.Item) *Board {
	sorted := append([]model.Item{}, items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})

	b := &Board{items: make(map[string]*model.Item, len(sorted))}
	for i := range sorted {
		it := sorted[i]
		it.Order = i
		b.items[it.ID] = &it
	}
	b.rebuildZones()
	return b
}

// SetMovable installs the movability hook. A nil hook allows every unflipped item.
func (b *Board) SetMovable(fn func(id string) bool) {
	b.movable = fn
}

func (b *Board) isMovable(id string) bool {
	it, ok := b.items[id]
	if !ok {
		return false
	}
	if it.Flipped {
		return false
	}
	if b.movable != nil && !b.movable(id) {
		return false
	}
	return true
}

// DragStart transitions idle → dragging(id). The transition is suppressed when
// a drag is already active or the item is missing or immovable; the caller gets
// false and state is unchanged.
func (b *Board) DragStart(id string) bool {
	if b.activeID != "" {
		return false
	}
	if !b.isMovable(id) {
		return false
	}
	b.activeID = id
	b.hoverZone = ""
	return true
}

// DragOver records the currently hovered target for presentation. It never
// mutates item data. Passing an unresolvable target (or "") clears the hover.
func (b *Board) DragOver(target string) {
	if b.activeID == "" {
		return
	}
	if id, ok := b.resolveTarget(target); ok {
		b.hoverZone = b.zoneByItem[id]
		return
	}
	b.hoverZone = ""
}

// DragEnd commits the active drag onto target and returns to idle.
//
// The target may be a drop-zone id (resolved to its occupying item) or an item
// id. The commit aborts — returning false with state unchanged — when there is
// no active drag, the target does not resolve, source == target, or either
// endpoint is immovable. Movability is re-checked here even though DragStart
// already checked it: a flip that lands mid-drag must still block the drop.
func (b *Board) DragEnd(target string) bool {
	src := b.activeID
	if src == "" {
		return false
	}
	b.activeID = ""
	b.hoverZone = ""

	dst, ok := b.resolveTarget(target)
	if !ok || dst == src {
		return false
	}
	if !b.isMovable(src) || !b.isMovable(dst) {
		return false
	}

	a, c := b.items[src], b.items[dst]
	a.Order, c.Order = c.Order, a.Order
	b.rebuildZones()
	return true
}

// DragCancel aborts the active drag with no mutation.
func (b *Board) DragCancel() {
	b.activeID = ""
	b.hoverZone = ""
}

func (b *Board) resolveTarget(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	if strings.HasPrefix(target, zonePrefix) {
		id, ok := b.itemByZone[target]
		return id, ok
	}
	if _, ok := b.items[target]; !ok {
		return "", false
	}
	return target, true
}

// rebuildZones rederives the drop-zone maps from the item table. The zone map
// is a pure function of the orders; recompute it wholesale after every commit
// rather than patching it incrementally.
func (b *Board) rebuildZones() {
	b.zoneByItem = make(map[string]string, len(b.items))
	b.itemByZone = make(map[string]string, len(b.items))
	for id, it := range b.items {
		z := ZoneID(it.Order)
		b.zoneByItem[id] = z
		b.itemByZone[z] = id
	}
}

// SetFlipped marks an item flipped (one-way). Returns false if the item is
// missing or already flipped.
func (b *Board) SetFlipped(id string) bool {
	it, ok := b.items[id]
	if !ok || it.Flipped {
		return false
	}
	it.Flipped = true
	return true
}

// Items returns copies of all items sorted ascending by Order.
func (b *Board) Items() []model.Item {
	out := make([]model.Item, 0, len(b.items))
	for _, it := range b.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Get returns a copy of one item.
func (b *Board) Get(id string) (model.Item, bool) {
	it, ok := b.items[id]
	if !ok {
		return model.Item{}, false
	}
	return *it, true
}

// Dragging reports the active drag source, if any.
func (b *Board) Dragging() (string, bool) {
	return b.activeID, b.activeID != ""
}

// Hovered returns the drop-zone id currently hovered during a drag ("" if none).
func (b *Board) Hovered() string {
	return b.hoverZone
}

// Zone returns the drop-zone id the item currently occupies.
func (b *Board) Zone(id string) string {
	return b.zoneByItem[id]
}

// ItemAt returns the id of the item occupying the given drop zone.
func (b *Board) ItemAt(zone string) (string, bool) {
	id, ok := b.itemByZone[zone]
	return id, ok
}

// Len returns the number of items on the board.
func (b *Board) Len() int {
	return len(b.items)
}
