// Package antipasto provides mouse-driven popup selection menus for SDL2
// applications, in the style of classic game UIs: a popup anchored to a
// parent control, opened while the mouse button is held, with drag-select,
// edge autoscrolling, and a short confirm delay before closing.
//
// The package handles SDL initialization, theming, font loading, and label
// localization, and provides the dropdown popup itself.
package antipasto

import (
	"log/slog"

	"github.com/BrandonKowalski/antipasto/pkg/antipasto/constants"
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/locale"
)

// Options configures toolkit initialization.
type Options struct {
	WindowTitle   string                 // Window title displayed in windowed mode
	WindowOptions internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	ThemePath     string                 // Path to a TOML theme file; empty uses the built-in palette
	Language      string                 // BCP 47 language tag for menu labels (e.g. "de", "ar")
	MessageFiles  []string               // TOML message files to load for the language
	LogPath       string                 // Full path for the log file (creates parent directories)
}

// Init initializes SDL, theming, fonts, and localization. Must be called
// before any popup is shown.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.ThemePath != "" {
		theme, err := internal.LoadTheme(options.ThemePath)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme; using defaults", "path", options.ThemePath, "error", err)
		} else {
			internal.SetTheme(theme)
		}
	}

	if options.Language != "" {
		if err := locale.Load(options.Language, options.MessageFiles...); err != nil {
			internal.GetInternalLogger().Error("Failed to load locale", "language", options.Language, "error", err)
		}
	}

	internal.Init(options.WindowTitle, options.WindowOptions)
}

// Close releases all SDL resources and shuts down the toolkit. Must be
// called before program exit to prevent resource leaks.
func Close() {
	internal.DestroyIconCache()
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g. "debug",
// "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use
// cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
