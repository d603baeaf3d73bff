package board

import (
	"reflect"
	"testing"

	"shufflegrid/internal/model"
)

func threeItems() []model.Item {
	return []model.Item{
		{ID: "A", Label: "A", Order: 0},
		{ID: "B", Label: "B", Order: 1},
		{ID: "C", Label: "C", Order: 2},
	}
}

func orders(b *Board) map[string]int {
	out := map[string]int{}
	for _, it := range b.Items() {
		out[it.ID] = it.Order
	}
	return out
}

func assertDenseOrders(t *testing.T, b *Board) {
	t.Helper()
	items := b.Items()
	seen := map[int]string{}
	for _, it := range items {
		if prev, dup := seen[it.Order]; dup {
			t.Fatalf("order %d held by both %q and %q", it.Order, prev, it.ID)
		}
		seen[it.Order] = it.ID
	}
	for i := 0; i < len(items); i++ {
		if _, ok := seen[i]; !ok {
			t.Fatalf("orders not dense: missing %d (have %v)", i, seen)
		}
	}
}

func assertZoneMapConsistent(t *testing.T, b *Board) {
	t.Helper()
	for _, it := range b.Items() {
		want := ZoneID(it.Order)
		if got := b.Zone(it.ID); got != want {
			t.Fatalf("zone of %q = %q; want %q", it.ID, got, want)
		}
		if id, ok := b.ItemAt(want); !ok || id != it.ID {
			t.Fatalf("ItemAt(%q) = %q, %v; want %q", want, id, ok, it.ID)
		}
	}
}

func TestZoneID_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, rank := range []int{0, 1, 8, 42} {
		z := ZoneID(rank)
		got, ok := ZoneRank(z)
		if !ok || got != rank {
			t.Fatalf("ZoneRank(%q) = %d, %v; want %d, true", z, got, ok, rank)
		}
	}
	for _, bad := range []string{"", "drop-", "drop-x", "drop--1", "item-A", "0"} {
		if _, ok := ZoneRank(bad); ok {
			t.Fatalf("ZoneRank(%q) unexpectedly ok", bad)
		}
	}
}

func TestNew_NormalizesOrders(t *testing.T) {
	t.Parallel()

	b := New([]model.Item{
		{ID: "x", Order: 7},
		{ID: "y", Order: 2},
		{ID: "z", Order: 2},
	})
	got := orders(b)
	// y and z tie on order; ID breaks the tie.
	want := map[string]int{"y": 0, "z": 1, "x": 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalized orders = %v; want %v", got, want)
	}
	assertZoneMapConsistent(t, b)
}

func TestDragEnd_SwapsExactlyTwoOrders(t *testing.T) {
	t.Parallel()

	b := New(threeItems())
	before := orders(b)

	if !b.DragStart("A") {
		t.Fatalf("DragStart(A) rejected")
	}
	if !b.DragEnd("C") {
		t.Fatalf("DragEnd(C) rejected")
	}

	after := orders(b)
	changed := 0
	for id := range before {
		if before[id] != after[id] {
			changed++
		}
	}
	if changed != 2 {
		t.Fatalf("%d orders changed; want exactly 2 (before=%v after=%v)", changed, before, after)
	}
	if after["A"] != before["C"] || after["C"] != before["A"] {
		t.Fatalf("orders not exchanged: before=%v after=%v", before, after)
	}
	if after["B"] != before["B"] {
		t.Fatalf("bystander B moved: before=%v after=%v", before, after)
	}
	assertDenseOrders(t, b)
	assertZoneMapConsistent(t, b)
}

func TestDragEnd_ScenarioThreeItems(t *testing.T) {
	t.Parallel()

	// Drag A onto C: A=2, B=1, C=0 and the zone map follows.
	b := New(threeItems())
	b.DragStart("A")
	if !b.DragEnd("C") {
		t.Fatalf("swap rejected")
	}

	want := map[string]int{"A": 2, "B": 1, "C": 0}
	if got := orders(b); !reflect.DeepEqual(got, want) {
		t.Fatalf("orders = %v; want %v", got, want)
	}
	wantZones := map[string]string{"C": "drop-0", "B": "drop-1", "A": "drop-2"}
	for id, z := range wantZones {
		if got := b.Zone(id); got != z {
			t.Fatalf("Zone(%q) = %q; want %q", id, got, z)
		}
	}
}

func TestDragEnd_TargetByDropZone(t *testing.T) {
	t.Parallel()

	b := New(threeItems())
	b.DragStart("A")
	// drop-2 is currently occupied by C.
	if !b.DragEnd("drop-2") {
		t.Fatalf("DragEnd(drop-2) rejected")
	}
	if got := orders(b)["A"]; got != 2 {
		t.Fatalf("A order = %d; want 2", got)
	}
	assertZoneMapConsistent(t, b)
}

func TestDragEnd_Aborts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
	}{
		{name: "self drop", target: "A"},
		{name: "self drop via zone", target: "drop-0"},
		{name: "missing target", target: "nope"},
		{name: "empty target", target: ""},
		{name: "unoccupied zone", target: "drop-99"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(threeItems())
			before := orders(b)
			b.DragStart("A")
			if b.DragEnd(tc.target) {
				t.Fatalf("DragEnd(%q) unexpectedly committed", tc.target)
			}
			if got := orders(b); !reflect.DeepEqual(got, before) {
				t.Fatalf("orders mutated on abort: %v -> %v", before, got)
			}
			if _, dragging := b.Dragging(); dragging {
				t.Fatalf("still dragging after abort")
			}
			assertZoneMapConsistent(t, b)
		})
	}
}

func TestDragEnd_WithoutActiveDrag(t *testing.T) {
	t.Parallel()

	b := New(threeItems())
	if b.DragEnd("C") {
		t.Fatalf("DragEnd without DragStart unexpectedly committed")
	}
}

func TestDragCancel_PureAbort(t *testing.T) {
	t.Parallel()

	b := New(threeItems())
	before := orders(b)
	b.DragStart("B")
	b.DragOver("C")
	b.DragCancel()
	if got := orders(b); !reflect.DeepEqual(got, before) {
		t.Fatalf("orders mutated on cancel: %v -> %v", before, got)
	}
	if _, dragging := b.Dragging(); dragging {
		t.Fatalf("still dragging after cancel")
	}
	if b.Hovered() != "" {
		t.Fatalf("hover not cleared on cancel")
	}
}

func TestFlippedItems_AreImmovable(t *testing.T) {
	t.Parallel()

	// Source flipped: drag never starts.
	b := New(threeItems())
	b.SetFlipped("A")
	if b.DragStart("A") {
		t.Fatalf("DragStart on flipped item accepted")
	}

	// Target flipped: drop aborts.
	b = New(threeItems())
	b.SetFlipped("C")
	before := orders(b)
	b.DragStart("A")
	if b.DragEnd("C") {
		t.Fatalf("drop onto flipped item accepted")
	}
	if got := orders(b); !reflect.DeepEqual(got, before) {
		t.Fatalf("orders mutated: %v -> %v", before, got)
	}
}

func TestFlipDuringDrag_BlocksCommit(t *testing.T) {
	t.Parallel()

	// The source flips between drag-start and drag-end; the commit-time
	// re-check must reject the pending drop.
	b := New(threeItems())
	before := orders(b)
	if !b.DragStart("A") {
		t.Fatalf("DragStart rejected")
	}
	b.SetFlipped("A")
	if b.DragEnd("C") {
		t.Fatalf("drop committed despite mid-drag flip of source")
	}
	if got := orders(b); !reflect.DeepEqual(got, before) {
		t.Fatalf("orders mutated: %v -> %v", before, got)
	}
}

func TestMovableHook_RejectsBothEndpoints(t *testing.T) {
	t.Parallel()

	b := New(threeItems())
	b.SetMovable(func(id string) bool { return id != "B" })

	if b.DragStart("B") {
		t.Fatalf("hook-immovable source accepted")
	}
	b.DragStart("A")
	if b.DragEnd("B") {
		t.Fatalf("hook-immovable target accepted")
	}
}

func TestDragStart_WhileDragging(t *testing.T) {
	t.Parallel()

	b := New(threeItems())
	b.DragStart("A")
	if b.DragStart("B") {
		t.Fatalf("second DragStart accepted while dragging")
	}
	if id, _ := b.Dragging(); id != "A" {
		t.Fatalf("active drag = %q; want A", id)
	}
}

func TestDragOver_PresentationOnly(t *testing.T) {
	t.Parallel()

	b := New(threeItems())

	// Ignored while idle.
	b.DragOver("C")
	if b.Hovered() != "" {
		t.Fatalf("hover set while idle")
	}

	before := orders(b)
	b.DragStart("A")
	b.DragOver("C")
	if got := b.Hovered(); got != "drop-2" {
		t.Fatalf("Hovered() = %q; want drop-2", got)
	}
	b.DragOver("drop-1")
	if got := b.Hovered(); got != "drop-1" {
		t.Fatalf("Hovered() = %q; want drop-1", got)
	}
	b.DragOver("bogus")
	if b.Hovered() != "" {
		t.Fatalf("hover not cleared for unresolvable target")
	}
	if got := orders(b); !reflect.DeepEqual(got, before) {
		t.Fatalf("DragOver mutated orders: %v -> %v", before, got)
	}
}

func TestSetFlipped_OneWay(t *testing.T) {
	t.Parallel()

	b := New(threeItems())
	if !b.SetFlipped("A") {
		t.Fatalf("first flip rejected")
	}
	if b.SetFlipped("A") {
		t.Fatalf("second flip accepted")
	}
	if b.SetFlipped("nope") {
		t.Fatalf("flip of missing item accepted")
	}
	it, _ := b.Get("A")
	if !it.Flipped {
		t.Fatalf("A not flipped")
	}
}
