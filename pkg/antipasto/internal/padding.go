package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}

// Shrink returns r reduced by the padding on each side.
func (p Padding) Shrink(r sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Horizontal(),
		H: r.H - p.Vertical(),
	}
}
