// Package tablekit builds static, sectioned list screens from plain data.
//
// A screen is a Contents holding ordered Sections, each holding ordered
// action Items. A Controller owns one Contents and answers a host
// toolkit's questions about it (how many sections, rows, which titles)
// and runs an item's action block when the host reports a selection.
// A Navigator presents controllers on a Host and handles back navigation.
//
//	settings := tablekit.NewContentsWithTitle("Settings")
//	settings.AddSection(tablekit.SectionWithTitle("", []*tablekit.Item{
//	    tablekit.Action("Privacy", showPrivacy),
//	    tablekit.Action("Log Out", logOut),
//	}))
//
//	nav := tablekit.NewNavigator(terminal.New())
//	tablekit.NewControllerWithContents(settings).PresentFrom(nav)
//	err := nav.Run()
//
// Two hosts ship with the package: terminal (Bubble Tea) and sdlhost
// (SDL2, for handheld devices).
package tablekit

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// Options configures tablekit initialization.
type Options struct {
	ConfigPath string    // TOML config file (falls back to TABLEKIT_CONFIG)
	LogPath    string    // Full path for the log file, parent directories are created
	LogLevel   string    // Application log level, overrides the config file
	Language   string    // BCP 47 language tag for host strings, overrides the config file
	LogWriter  io.Writer // Console log destination (default stderr)
}

// Init loads configuration and sets up logging and localisation.
// Calling it is optional; hosts fall back to defaults.
// If TABLEKIT_INTERNAL_LOG_LEVEL is set, tablekit's own logging is raised to
// that level. The application level comes from Options and the config file.
func Init(options Options) error {
	if options.LogWriter != nil {
		internal.SetLogWriter(options.LogWriter)
	}
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if raw := os.Getenv(constants.InternalLogLevelEnvVar); raw != "" {
		internal.SetInternalLogLevel(internal.ParseLogLevel(raw))
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	cfg := internal.DefaultConfig()

	configPath := options.ConfigPath
	if configPath == "" {
		configPath = os.Getenv(constants.ConfigPathEnvVar)
	}
	if configPath != "" {
		loaded, err := internal.LoadConfig(configPath)
		if err != nil {
			return NewInfrastructureError("load_config", err)
		}
		cfg = loaded
	}

	if options.Language != "" {
		cfg.Language = options.Language
	}
	if options.LogLevel != "" {
		cfg.LogLevel = options.LogLevel
	}

	internal.SetConfig(cfg)
	internal.SetRawLogLevel(cfg.LogLevel)

	if err := internal.SetLanguage(cfg.Language); err != nil {
		return NewInfrastructureError("set_language", err)
	}

	internal.GetInternalLogger().Debug("tablekit initialized",
		"config", configPath, "language", cfg.Language, "log_level", cfg.LogLevel)

	return nil
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
