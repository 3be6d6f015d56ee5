package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of popup menus.
// Colors are typically loaded from a TOML theme file shipped with the host
// application; DefaultTheme supplies a usable built-in palette.
type Theme struct {
	HighlightColor       sdl.Color // Selected row background
	AccentColor          sdl.Color // Popup frame and bevel base color
	TextColor            sdl.Color // Default row text color
	HighlightedTextColor sdl.Color // Text on the selected row
	BackgroundColor      sdl.Color // Popup background fill
	FontPath             string    // Path to the primary UI font
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme for the toolkit.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme returns the built-in palette used when no theme file is loaded.
func DefaultTheme() Theme {
	return Theme{
		HighlightColor:       HexToColor(0x000000),
		AccentColor:          HexToColor(0x6A6A6A),
		TextColor:            HexToColor(0x000000),
		HighlightedTextColor: HexToColor(0xFFFFFF),
		BackgroundColor:      HexToColor(0xC6C6C6),
		FontPath:             "",
	}
}

// themeFile is the on-disk TOML representation of a Theme.
// Colors are hex strings ("#RRGGBB" or "RRGGBB").
type themeFile struct {
	Highlight       string `toml:"highlight"`
	Accent          string `toml:"accent"`
	Text            string `toml:"text"`
	HighlightedText string `toml:"highlighted_text"`
	Background      string `toml:"background"`
	FontPath        string `toml:"font_path"`
}

// LoadTheme reads a TOML theme file and returns the resulting Theme.
// Colors missing from the file keep their DefaultTheme values.
func LoadTheme(path string) (Theme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return Theme{}, fmt.Errorf("decode theme %s: %w", path, err)
	}

	theme := DefaultTheme()
	if err := applyHex(&theme.HighlightColor, tf.Highlight); err != nil {
		return Theme{}, err
	}
	if err := applyHex(&theme.AccentColor, tf.Accent); err != nil {
		return Theme{}, err
	}
	if err := applyHex(&theme.TextColor, tf.Text); err != nil {
		return Theme{}, err
	}
	if err := applyHex(&theme.HighlightedTextColor, tf.HighlightedText); err != nil {
		return Theme{}, err
	}
	if err := applyHex(&theme.BackgroundColor, tf.Background); err != nil {
		return Theme{}, err
	}
	if tf.FontPath != "" {
		theme.FontPath = tf.FontPath
	}
	return theme, nil
}

func applyHex(dst *sdl.Color, value string) error {
	if value == "" {
		return nil
	}
	raw := strings.TrimPrefix(value, "#")
	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid theme color %q: %w", value, err)
	}
	*dst = HexToColor(uint32(n))
	return nil
}
