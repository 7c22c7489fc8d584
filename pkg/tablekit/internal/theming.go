package internal

import "fmt"

// Theme defines the visual appearance shared by every host.
// Colors are 0xRRGGBB values so that hosts can convert them to their own color types.
type Theme struct {
	HighlightColor       uint32 `toml:"highlight"`        // Focused row background
	AccentColor          uint32 `toml:"accent"`           // Page title, footer pills
	TextColor            uint32 `toml:"text"`             // Default row text
	HighlightedTextColor uint32 `toml:"highlighted_text"` // Text on the focused row
	HintColor            uint32 `toml:"hint"`             // Section titles, help text
	BackgroundColor      uint32 `toml:"background"`       // Screen background
	FontPath             string `toml:"font_path"`        // Path to the primary UI font (handheld host)
	BackgroundImagePath  string `toml:"background_image"` // Optional background image (handheld host)
}

// DefaultTheme is the Cannoli palette on a dark background.
func DefaultTheme() Theme {
	return Theme{
		HighlightColor:       0xFFFFFF,
		AccentColor:          0x008080,
		TextColor:            0xFFFFFF,
		HighlightedTextColor: 0x000000,
		HintColor:            0x8A8A8A,
		BackgroundColor:      0x000000,
		FontPath:             "/mnt/SDCARD/System/fonts/Cannoli.ttf",
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexString formats a 0xRRGGBB value as "#RRGGBB".
func HexString(hex uint32) string {
	return fmt.Sprintf("#%06X", hex&0xFFFFFF)
}

// HexToRGB splits a 0xRRGGBB value into its channels.
func HexToRGB(hex uint32) (r, g, b uint8) {
	return uint8(hex >> 16), uint8(hex >> 8), uint8(hex)
}
