package tui

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// newTransitionLogger returns a structured logger for state-machine
// transitions. It writes JSON lines to the file named by
// SHUFFLEGRID_DEBUG_LOG and is a no-op logger when the variable is unset or
// the file cannot be opened (the TUI owns the terminal, so stderr is not an
// option while it runs).
func newTransitionLogger() zerolog.Logger {
	path := strings.TrimSpace(os.Getenv("SHUFFLEGRID_DEBUG_LOG"))
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Str("app", "shufflegrid").Logger()
}
