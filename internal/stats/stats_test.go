package stats

import "testing"

func TestLedger_RecordAndSummarize(t *testing.T) {
	t.Parallel()

	l, err := Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer l.Close()

	events := []struct{ variant, kind string }{
		{"boxes", KindSwap},
		{"boxes", KindSwap},
		{"boxes", KindAbort},
		{"bomb", KindFlip},
		{"bomb", KindFlip},
		{"bomb", KindLoss},
		{"bomb", KindReset},
		{"bomb", KindFlip},
		{"bomb", KindWin},
	}
	for _, e := range events {
		if err := l.Record(e.variant, e.kind); err != nil {
			t.Fatalf("record %v: %v", e, err)
		}
	}

	boxes, err := l.Variant("boxes")
	if err != nil {
		t.Fatalf("variant boxes: %v", err)
	}
	if boxes.Swaps != 2 || boxes.Aborts != 1 || boxes.Flips != 0 {
		t.Fatalf("boxes summary = %+v", boxes)
	}

	bomb, err := l.Variant("bomb")
	if err != nil {
		t.Fatalf("variant bomb: %v", err)
	}
	if bomb.Flips != 3 || bomb.Wins != 1 || bomb.Losses != 1 || bomb.Resets != 1 {
		t.Fatalf("bomb summary = %+v", bomb)
	}

	all, err := l.Session()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if all.Swaps != 2 || all.Flips != 3 || all.Wins != 1 || all.Losses != 1 {
		t.Fatalf("session summary = %+v", all)
	}
}

func TestLedger_NilIsNoOp(t *testing.T) {
	t.Parallel()

	var l *Ledger
	if err := l.Record("boxes", KindSwap); err != nil {
		t.Fatalf("nil record: %v", err)
	}
	s, err := l.Session()
	if err != nil {
		t.Fatalf("nil session: %v", err)
	}
	if s != (Summary{}) {
		t.Fatalf("nil summary = %+v; want zero", s)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

func TestLedger_UnknownVariantIsEmpty(t *testing.T) {
	t.Parallel()

	l, err := Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer l.Close()

	if err := l.Record("grid", KindSwap); err != nil {
		t.Fatalf("record: %v", err)
	}
	s, err := l.Variant("tiles")
	if err != nil {
		t.Fatalf("variant: %v", err)
	}
	if s != (Summary{}) {
		t.Fatalf("tiles summary = %+v; want zero", s)
	}
}
