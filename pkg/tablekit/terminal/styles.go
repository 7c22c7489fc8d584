package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// styles are derived from the active theme each time a screen is shown.
type styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Row        lipgloss.Style
	RowFocused lipgloss.Style
	Cursor     lipgloss.Style
	Chevron    lipgloss.Style
	Muted      lipgloss.Style
	Filter     lipgloss.Style
}

func themeColor(hex uint32) lipgloss.Color {
	return lipgloss.Color(internal.HexString(hex))
}

func newStyles(theme internal.Theme) styles {
	accent := themeColor(theme.AccentColor)
	hint := themeColor(theme.HintColor)

	return styles{
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(hint).
			Bold(true),
		Row: lipgloss.NewStyle().
			Foreground(themeColor(theme.TextColor)),
		RowFocused: lipgloss.NewStyle().
			Foreground(themeColor(theme.HighlightedTextColor)).
			Background(themeColor(theme.HighlightColor)).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Chevron: lipgloss.NewStyle().
			Foreground(hint),
		Muted: lipgloss.NewStyle().
			Foreground(hint),
		Filter: lipgloss.NewStyle().
			Foreground(accent),
	}
}
