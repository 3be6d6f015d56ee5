package antipasto

import (
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Viewport is the vertical range of the screen a popup may occupy.
type Viewport struct {
	Top    int32
	Bottom int32
}

// Layout is the planned position and size of a popup. Size is the outer
// size, frame bevel included.
type Layout struct {
	Pos    sdl.Point // top-left corner in screen space
	Size   Dimension
	Scroll bool // a scrollbar is required
	Above  bool // the popup opens above its anchor
}

// PlanLayout decides where a popup opens and how big it is. anchor is the
// anchored control's rectangle in screen space; minWidth widens the anchor
// before planning (leftward in RTL). The popup prefers opening below the
// anchor at the anchor's width, widened to the natural list width plus frame
// padding. If the list does not fit below, the side with more room wins; if
// it still does not fit there, scrolling is enabled and the height is cut to
// a whole number of average-height rows.
//
// The visible row count under scrolling is an estimate: it divides by the
// average row height, so lists mixing tall and short rows may show one row
// more or fewer than computed.
//
// The list must be non-empty; an empty list is a caller bug.
func PlanLayout(anchor sdl.Rect, minWidth int32, list List, view Viewport, rtl bool, m Metrics) Layout {
	if len(list) == 0 {
		panic("antipasto: PlanLayout called with empty list")
	}

	if minWidth > anchor.W {
		if rtl {
			anchor.X -= minWidth - anchor.W
		}
		anchor.W = minWidth
	}

	// The preferred position is just below the anchored control, at the
	// control's width.
	top := anchor.Y + anchor.H
	width := anchor.W

	dim := ListDimension(list)
	dim.W += m.Bevel.Horizontal()

	scroll := false
	above := false

	// Height available for rows below (or above, if the popup is placed
	// above), after the frame bevel.
	available := internal.Max32(view.Bottom-top-m.Bevel.Vertical(), 0)

	if dim.H > available {
		availableAbove := internal.Max32(anchor.Y-view.Top-m.Bevel.Vertical(), 0)

		// Put the popup above if there is more room there.
		if availableAbove > available {
			above = true
			available = availableAbove
		}

		if dim.H > available {
			scroll = true
			avgHeight := dim.H / int32(len(list))

			// Fit a whole number of rows; keep at least one even if there is
			// no height available.
			rows := internal.Max32(available/avgHeight, 1)
			dim.H = rows * avgHeight

			dim.W += m.ScrollbarWidth
		}
	}

	dim.H += m.Bevel.Vertical()
	if above {
		top = anchor.Y - dim.H
	}

	dim.W = internal.Max32(width, dim.W)

	x := anchor.X
	if rtl {
		// Keep the right edges aligned when the popup is wider than its
		// anchor.
		x = anchor.X + anchor.W - dim.W
	}

	return Layout{
		Pos:    sdl.Point{X: x, Y: top},
		Size:   dim,
		Scroll: scroll,
		Above:  above,
	}
}
