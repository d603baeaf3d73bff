package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Grab  key.Binding
	Flip  key.Binding
	Reset key.Binding
	Stats key.Binding
	Back  key.Binding
	Quit  key.Binding

	// game toggles which bindings show up in help.
	game bool
}

func newKeyMap(game bool) keyMap {
	k := keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Grab:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab/drop")),
		Flip:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "flip")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new round")),
		Stats: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel/back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		game:  game,
	}
	if !game {
		k.Flip = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "grab/drop"))
		k.Reset.SetEnabled(false)
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	out := []key.Binding{k.Grab}
	if k.game {
		out = append(out, k.Flip, k.Reset)
	}
	return append(out, k.Stats, k.Back, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	rows := [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Grab, k.Stats, k.Back, k.Quit},
	}
	if k.game {
		rows = append(rows, []key.Binding{k.Flip, k.Reset})
	}
	return rows
}
