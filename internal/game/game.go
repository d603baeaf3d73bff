// Package game layers the find-the-bomb memory game on top of a board.
//
// One card out of N hides a bomb. Flipping a card is permanent; flipping the
// bomb loses, flipping every safe card wins. Flipped cards (and, once the game
// is over, all cards) can no longer be dragged.
package game

import (
	"math/rand"
	"strconv"
	"time"

	"shufflegrid/internal/board"
	"shufflegrid/internal/model"
)

// FlipResult classifies the outcome of a Flip call.
type FlipResult int

const (
	// FlipRejected means nothing changed (game over, already flipped, or unknown card).
	FlipRejected FlipResult = iota
	// FlipSafe revealed a safe card; the game continues.
	FlipSafe
	// FlipBomb revealed the bomb; the game is lost.
	FlipBomb
	// FlipWin revealed the last safe card; the game is won.
	FlipWin
)

// Game owns one find-the-bomb round. Like the board it is single-goroutine.
type Game struct {
	b   *board.Board
	n   int
	rng *rand.Rand

	// Exactly one bomb today; the win threshold is computed as n-bombCount so
	// a future multi-bomb variant only has to change this field.
	bombCount int

	bombID    string
	flipped   int
	bombFound bool
	gameOver  bool
}

// New creates a game with n cards (n must be at least 2; smaller values are
// bumped). A nil rng is replaced with a time-seeded source; tests pass a fixed
// seed for deterministic bomb placement.
func New(n int, rng *rand.Rand) *Game {
	if n < 2 {
		n = 2
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{n: n, rng: rng, bombCount: 1}
	g.Reset()
	return g
}

// Board exposes the underlying board for rendering and drag dispatch.
func (g *Game) Board() *board.Board {
	return g.b
}

// Flip reveals a card. It is a no-op (FlipRejected) once the game is over or
// when the card is already flipped.
func (g *Game) Flip(id string) FlipResult {
	if g.gameOver {
		return FlipRejected
	}
	it, ok := g.b.Get(id)
	if !ok || it.Flipped {
		return FlipRejected
	}

	g.b.SetFlipped(id)
	g.flipped++

	if it.Bomb {
		g.bombFound = true
		g.gameOver = true
		return FlipBomb
	}
	if g.flipped >= g.n-g.bombCount {
		g.gameOver = true
		return FlipWin
	}
	return FlipSafe
}

// Reset regenerates all cards with a fresh random bomb position and clears all
// game state. Card orders return to the 0..N-1 identity.
func (g *Game) Reset() {
	bombAt := g.rng.Intn(g.n)

	items := make([]model.Item, 0, g.n)
	for i := 0; i < g.n; i++ {
		items = append(items, model.Item{
			ID:    "card-" + strconv.Itoa(i+1),
			Label: strconv.Itoa(i + 1),
			Order: i,
			Bomb:  i == bombAt,
		})
	}

	g.b = board.New(items)
	g.b.SetMovable(func(string) bool { return !g.gameOver })
	g.bombID = "card-" + strconv.Itoa(bombAt+1)
	g.flipped = 0
	g.bombFound = false
	g.gameOver = false
}

// BombFound reports whether the bomb has been flipped.
func (g *Game) BombFound() bool { return g.bombFound }

// GameOver reports whether the round has ended (win or loss).
func (g *Game) GameOver() bool { return g.gameOver }

// Won reports a finished round with the bomb untouched.
func (g *Game) Won() bool { return g.gameOver && !g.bombFound }

// FlippedCount returns how many cards have been flipped this round.
func (g *Game) FlippedCount() int { return g.flipped }

// SafeRemaining returns how many safe cards are still face down.
func (g *Game) SafeRemaining() int {
	remaining := g.n - g.bombCount - g.flipped
	if g.bombFound {
		// The bomb flip counted toward flipped but not toward safe cards.
		remaining++
	}
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
