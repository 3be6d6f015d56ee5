package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the loaded UI fonts at their configured sizes.
type FontSet struct {
	Font      *ttf.Font // Primary font for menu rows
	SmallFont *ttf.Font // Smaller font for hints and footers
}

// FontSizes configures the point sizes used when loading fonts.
type FontSizes struct {
	Normal int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Normal: 28,
	Small:  20,
}

// Fonts is the active font set, populated during Init from the theme's
// FontPath.
var Fonts FontSet

func initFonts(sizes FontSizes) {
	fontPath := GetTheme().FontPath
	if fontPath == "" {
		GetInternalLogger().Warn("No font path configured; text rendering disabled")
		return
	}

	scale := GetScaleFactor()

	var err error
	Fonts.Font, err = ttf.OpenFont(fontPath, int(float32(sizes.Normal)*scale))
	if err != nil {
		GetInternalLogger().Error("Failed to open font", "path", fontPath, "error", err)
	}

	Fonts.SmallFont, err = ttf.OpenFont(fontPath, int(float32(sizes.Small)*scale))
	if err != nil {
		GetInternalLogger().Error("Failed to open small font", "path", fontPath, "error", err)
	}
}

func closeFonts() {
	if Fonts.Font != nil {
		Fonts.Font.Close()
		Fonts.Font = nil
	}
	if Fonts.SmallFont != nil {
		Fonts.SmallFont.Close()
		Fonts.SmallFont = nil
	}
}

// GetScaleFactor returns the UI scale relative to the 768px reference
// height. Widget metrics are multiplied by this before use.
func GetScaleFactor() float32 {
	if window == nil {
		return 1.0
	}
	return float32(window.GetHeight()) / 768.0
}
