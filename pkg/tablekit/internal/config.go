package internal

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration shared by tablekit and its hosts.
//
//	language = "es"
//	log_level = "debug"
//
//	[theme]
//	highlight = 0xFFFFFF
//	accent = 0x008080
//
//	[terminal]
//	alt_screen = true
//
//	[handheld]
//	flip_face_buttons = true
//	power_button_device = "/dev/input/event1"
type Config struct {
	Language string         `toml:"language"`
	LogLevel string         `toml:"log_level"`
	Theme    Theme          `toml:"theme"`
	Terminal TerminalConfig `toml:"terminal"`
	Handheld HandheldConfig `toml:"handheld"`
}

// TerminalConfig holds settings for the terminal host.
type TerminalConfig struct {
	AltScreen  bool     `toml:"alt_screen"`
	SelectKeys []string `toml:"select_keys"`
	BackKeys   []string `toml:"back_keys"`
}

// HandheldConfig holds settings for the SDL host.
type HandheldConfig struct {
	FlipFaceButtons   bool   `toml:"flip_face_buttons"`
	PowerButtonDevice string `toml:"power_button_device"`
	FontSize          int    `toml:"font_size"`
	WindowWidth       int32  `toml:"window_width"`
	WindowHeight      int32  `toml:"window_height"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Language: "en",
		LogLevel: "info",
		Theme:    DefaultTheme(),
		Terminal: TerminalConfig{
			SelectKeys: []string{"enter", " "},
			BackKeys:   []string{"esc", "backspace", "left", "h"},
		},
		Handheld: HandheldConfig{
			FontSize: 28,
		},
	}
}

var currentConfig = DefaultConfig()

// LoadConfig reads a TOML file on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		GetInternalLogger().Warn("Unknown config key", "path", path, "key", key.String())
	}

	return cfg, nil
}

// DecodeConfig parses TOML text on top of DefaultConfig.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// SetConfig installs cfg as the active configuration and theme.
func SetConfig(cfg Config) {
	currentConfig = cfg
	SetTheme(cfg.Theme)
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return currentConfig
}
