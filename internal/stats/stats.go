// Package stats keeps a session-scoped ledger of board and game events.
//
// The ledger lives in an in-memory SQLite database: nothing is written to disk
// and everything is gone when the process exits. SQL buys us cheap grouped
// summaries for the stats overlay without hand-rolled counter plumbing.
package stats

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Event kinds recorded by the TUI.
const (
	KindSwap  = "swap"  // a committed reorder
	KindAbort = "abort" // a drag that ended without a mutation
	KindFlip  = "flip"  // a card reveal
	KindWin   = "win"
	KindLoss  = "loss"
	KindReset = "reset"
)

// Ledger is an append-only event log. A nil *Ledger is a valid no-op sink so
// callers never have to branch on whether stats are enabled.
type Ledger struct {
	db *sql.DB
}

// Summary aggregates one variant's (or the whole session's) events.
type Summary struct {
	Swaps  int `json:"swaps"`
	Aborts int `json:"aborts"`
	Flips  int `json:"flips"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Resets int `json:"resets"`
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	ts      TEXT NOT NULL,
	variant TEXT NOT NULL,
	kind    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_variant_kind ON events(variant, kind);
`

// Open creates the session ledger.
func Open() (*Ledger, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// The in-memory database exists per connection; keep exactly one.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Ledger{db: db}, nil
}

// Close releases the ledger. Safe on nil.
func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// Record appends one event. Safe on nil.
func (l *Ledger) Record(variant, kind string) error {
	if l == nil || l.db == nil {
		return nil
	}
	_, err := l.db.ExecContext(context.Background(),
		`INSERT INTO events (ts, variant, kind) VALUES (?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano), variant, kind)
	return err
}

// Variant summarizes events for one variant slug.
func (l *Ledger) Variant(slug string) (Summary, error) {
	return l.summarize(`SELECT kind, COUNT(*) FROM events WHERE variant = ? GROUP BY kind`, slug)
}

// Session summarizes all events recorded this session.
func (l *Ledger) Session() (Summary, error) {
	return l.summarize(`SELECT kind, COUNT(*) FROM events GROUP BY kind`)
}

func (l *Ledger) summarize(query string, args ...any) (Summary, error) {
	var s Summary
	if l == nil || l.db == nil {
		return s, nil
	}
	rows, err := l.db.QueryContext(context.Background(), query, args...)
	if err != nil {
		return s, err
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return s, err
		}
		switch kind {
		case KindSwap:
			s.Swaps = n
		case KindAbort:
			s.Aborts = n
		case KindFlip:
			s.Flips = n
		case KindWin:
			s.Wins = n
		case KindLoss:
			s.Losses = n
		case KindReset:
			s.Resets = n
		}
	}
	return s, rows.Err()
}
