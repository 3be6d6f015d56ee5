package antipasto

import (
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/locale"
	"github.com/veandco/go-sdl2/sdl"
)

// Item is one row of a popup menu. Height and Width are pure functions of
// the item's construction-time state; layout and drawing rely on them
// agreeing, otherwise hit-testing breaks.
type Item interface {
	// Result is the value reported to the host if this row is chosen.
	Result() int

	// Masked reports whether the row is shown greyed out. A masked row is
	// never selectable, whatever Selectable says.
	Masked() bool

	// Selectable reports whether this row variant can be chosen at all.
	// Separators return false.
	Selectable() bool

	Height() int32
	Width() int32

	// Draw paints the row into bounds. accent is the anchor widget's colour,
	// used for bevels and other chrome.
	Draw(c Canvas, bounds sdl.Rect, selected bool, accent sdl.Color)
}

// Labeled is implemented by items that carry a display string. SortNatural
// requires every item in the list to implement it.
type Labeled interface {
	Label() string
}

// Separator is a non-selectable horizontal divider row.
type Separator struct {
	style *Style
}

// NewSeparator creates a divider row.
func NewSeparator(style *Style) *Separator {
	return &Separator{style: style}
}

func (s *Separator) Result() int      { return NoSelection }
func (s *Separator) Masked() bool     { return false }
func (s *Separator) Selectable() bool { return false }
func (s *Separator) Width() int32     { return 0 }

func (s *Separator) Height() int32 {
	return s.style.Metrics.SeparatorHeight
}

// Draw paints a two-tone bevel line centered vertically in bounds.
func (s *Separator) Draw(c Canvas, bounds sdl.Rect, _ bool, accent sdl.Color) {
	bevel := s.style.Metrics.Bevel
	mid := bounds.Y + bounds.H/2

	dark := internal.Darken(accent, 60)
	light := internal.Lighten(accent, 60)

	c.FillRect(sdl.Rect{X: bounds.X, Y: mid - bevel.Bottom, W: bounds.W, H: bevel.Bottom}, dark)
	c.FillRect(sdl.Rect{X: bounds.X, Y: mid, W: bounds.W, H: bevel.Top}, light)
}

// TextItem is a plain text row.
type TextItem struct {
	label  string
	result int
	masked bool
	width  int32
	height int32
	style  *Style
}

// NewTextItem creates a text row. The label is a message ID resolved through
// the locale package; unknown IDs display as-is.
func NewTextItem(messageID string, result int, masked bool, style *Style) *TextItem {
	return NewRawTextItem(locale.Resolve(messageID), result, masked, style)
}

// NewRawTextItem creates a text row from an already-resolved display string.
func NewRawTextItem(label string, result int, masked bool, style *Style) *TextItem {
	w, h := style.Measurer.MeasureText(label)
	if lh := style.Measurer.LineHeight(); h < lh {
		h = lh
	}
	return &TextItem{
		label:  label,
		result: result,
		masked: masked,
		width:  w,
		height: h,
		style:  style,
	}
}

func (t *TextItem) Label() string    { return t.label }
func (t *TextItem) Result() int      { return t.result }
func (t *TextItem) Masked() bool     { return t.masked }
func (t *TextItem) Selectable() bool { return true }
func (t *TextItem) Height() int32    { return t.height }

func (t *TextItem) Width() int32 {
	return t.width + t.style.Metrics.TextPad.Horizontal()
}

func (t *TextItem) Draw(c Canvas, bounds sdl.Rect, selected bool, _ sdl.Color) {
	ir := t.style.Metrics.TextPad.Shrink(bounds)

	x := ir.X
	if t.style.RTL {
		x = ir.X + ir.W - t.width
	}

	col := t.style.TextColor
	if selected {
		col = t.style.SelectedTextColor
	}
	c.DrawText(t.label, x, bounds.Y+(bounds.H-t.height)/2, col)
}

// IconItem is a row with a small bitmap before its text.
type IconItem struct {
	TextItem
	icon  *Icon
	tint  sdl.Color
	iconW int32
	iconH int32
}

// NewIconItem creates an icon+text row. tint recolors the icon when drawn.
func NewIconItem(messageID string, icon *Icon, tint sdl.Color, result int, masked bool, style *Style) *IconItem {
	return &IconItem{
		TextItem: *NewTextItem(messageID, result, masked, style),
		icon:     icon,
		tint:     tint,
		iconW:    icon.Width,
		iconH:    icon.Height,
	}
}

func (i *IconItem) Height() int32 {
	return internal.Max32(i.iconH, i.style.Measurer.LineHeight())
}

func (i *IconItem) Width() int32 {
	return i.TextItem.Width() + i.iconW + i.style.Metrics.WideGap
}

// SetDimension overrides the icon's drawn size, for hosts that scale
// sprites independently of the loaded texture.
func (i *IconItem) SetDimension(w, h int32) {
	i.iconW = w
	i.iconH = h
}

func (i *IconItem) Draw(c Canvas, bounds sdl.Rect, selected bool, _ sdl.Color) {
	m := i.style.Metrics
	ir := m.TextPad.Shrink(bounds)

	iconX := ir.X
	textX := ir.X + i.iconW + m.IconGap
	if i.style.RTL {
		iconX = ir.X + ir.W - i.iconW
		textX = ir.X + ir.W - i.iconW - m.IconGap - i.width
	}

	c.DrawIcon(i.icon, sdl.Rect{
		X: iconX,
		Y: bounds.Y + (bounds.H-i.iconH)/2,
		W: i.iconW,
		H: i.iconH,
	}, i.tint)

	col := i.style.TextColor
	if selected {
		col = i.style.SelectedTextColor
	}
	lineH := i.style.Measurer.LineHeight()
	c.DrawText(i.label, textX, bounds.Y+(bounds.H-lineH)/2, col)
}
