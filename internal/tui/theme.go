package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds, so
// every color is a lipgloss.AdaptiveColor and "faint" styling is only applied
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	colorAccent   lipgloss.TerminalColor = ac("27", "75") // blue
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	// Cell borders: soft when idle so the selection/hover states stand out.
	colorCellBorder     lipgloss.TerminalColor = ac("250", "243")
	colorCursorBorder   lipgloss.TerminalColor = ac("232", "255")
	colorDraggingBorder lipgloss.TerminalColor = ac("208", "214") // orange
	colorHoverBorder    lipgloss.TerminalColor = ac("28", "114")  // green

	colorCardMetaFg lipgloss.TerminalColor = ac("238", "250")

	colorWin  lipgloss.TerminalColor = ac("28", "114")
	colorLoss lipgloss.TerminalColor = ac("196", "203")

	// Box fills, cycled across items on the non-game grids.
	boxPalette = []lipgloss.TerminalColor{
		ac("167", "131"), // red
		ac("71", "108"),  // green
		ac("67", "110"),  // blue
		ac("178", "179"), // yellow
		ac("133", "176"), // purple
		ac("37", "80"),   // teal
		ac("166", "209"), // orange
		ac("132", "139"), // violet
		ac("243", "245"), // gray
	}
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR, which can accidentally disable
// colors in a full-screen TUI, so only NO_COLOR is honored here; otherwise we
// follow the terminal's reported capabilities (bumped by COLORTERM/TERM hints,
// which some terminals under-report).
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) explicit theme ("light"|"dark", from --theme)
// 2) SHUFFLEGRID_TUI_THEME=light|dark|auto
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference(theme string) {
	for _, v := range []string{theme, os.Getenv("SHUFFLEGRID_TUI_THEME")} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
