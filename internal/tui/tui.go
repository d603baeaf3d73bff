package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive TUI and blocks until the user quits.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	defer m.ledger.Close()

	// Cell-motion mouse reporting: motion events arrive only while a button
	// is held, which is exactly the drag lifecycle we dispatch on.
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
