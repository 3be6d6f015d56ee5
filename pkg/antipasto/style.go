package antipasto

import (
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/constants"
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/locale"
	"github.com/veandco/go-sdl2/sdl"
)

// TextMeasurer reports the pixel size text will occupy when drawn. Items
// measure their labels once at construction, so the measurer used to build a
// list must be the one its popup draws with.
type TextMeasurer interface {
	MeasureText(text string) (w, h int32)
	LineHeight() int32
}

// Metrics holds the scaled pixel dimensions used for popup layout. All
// values are in output pixels (already multiplied by the UI scale factor).
type Metrics struct {
	TextPad         internal.Padding // padding around row text
	Bevel           internal.Padding // popup frame thickness
	IconGap         int32            // gap between an icon and its text
	WideGap         int32            // extra width allowance for icon rows
	ScrollbarWidth  int32            // width reserved for the scrollbar
	SeparatorHeight int32            // height of separator rows
	EdgeScroll      int32            // autoscroll trigger distance from the popup edge
}

// ScaledMetrics returns the default metrics scaled to the current window.
func ScaledMetrics() Metrics {
	scale := internal.GetScaleFactor()
	px := func(v int32) int32 {
		scaled := int32(float32(v) * scale)
		if scaled < 1 {
			return 1
		}
		return scaled
	}

	return Metrics{
		TextPad:         internal.Padding{Top: px(1), Bottom: px(1), Left: px(4), Right: px(4)},
		Bevel:           internal.UniformPadding(px(1)),
		IconGap:         px(2),
		WideGap:         px(6),
		ScrollbarWidth:  px(12),
		SeparatorHeight: px(8),
		EdgeScroll:      px(constants.EdgeScrollMargin),
	}
}

// Style bundles everything layout and drawing read: the text measurer, the
// scaled metrics, the text direction, and the theme colors. It is passed in
// explicitly rather than read from globals so lists can be built and tested
// without a window.
type Style struct {
	Measurer          TextMeasurer
	Metrics           Metrics
	RTL               bool
	TextColor         sdl.Color
	SelectedTextColor sdl.Color
	HighlightColor    sdl.Color
	BackgroundColor   sdl.Color
}

// DefaultStyle builds a style from the active theme, fonts, and locale.
// Requires Init to have been called.
func DefaultStyle() *Style {
	theme := internal.GetTheme()
	return &Style{
		Measurer:          fontMeasurer{internal.Fonts.Font},
		Metrics:           ScaledMetrics(),
		RTL:               locale.IsRTL(),
		TextColor:         theme.TextColor,
		SelectedTextColor: theme.HighlightedTextColor,
		HighlightColor:    theme.HighlightColor,
		BackgroundColor:   theme.BackgroundColor,
	}
}
