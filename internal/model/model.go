package model

// Item is one draggable box/card on a grid. Order is its 0-based render rank;
// orders are unique and dense (0..N-1) across a board at all times.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
	Order int    `json:"order"`

	// Card-game fields. Flipped is a one-way false→true transition; Bomb is
	// assigned once at game start (exactly one item per game).
	Flipped bool `json:"flipped,omitempty"`
	Bomb    bool `json:"bomb,omitempty"`
}

// Variant describes one of the built-in grid screens.
type Variant struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Blurb   string `json:"blurb"`
	Count   int    `json:"count"`
	Columns int    `json:"columns"`
	Game    bool   `json:"game"`
}

// Variants is the built-in screen table, in menu order.
var Variants = []Variant{
	{
		Slug:    "boxes",
		Title:   "Boxes",
		Blurb:   "Three boxes in a row. Pick one up and swap it with another.",
		Count:   3,
		Columns: 3,
	},
	{
		Slug:    "grid",
		Title:   "Grid",
		Blurb:   "Nine boxes on a 3x3 grid, same swap rules.",
		Count:   9,
		Columns: 3,
	},
	{
		Slug:    "tiles",
		Title:   "Tiles",
		Blurb:   "Nine labeled tiles. A restyled take on the grid.",
		Count:   9,
		Columns: 3,
	},
	{
		Slug:    "bomb",
		Title:   "Find the Bomb",
		Blurb:   "Nine cards, one bomb. Flip the eight safe cards to win.",
		Count:   9,
		Columns: 3,
		Game:    true,
	},
}

// FindVariant looks up a variant by slug.
func FindVariant(slug string) (Variant, bool) {
	for _, v := range Variants {
		if v.Slug == slug {
			return v, true
		}
	}
	return Variant{}, false
}
