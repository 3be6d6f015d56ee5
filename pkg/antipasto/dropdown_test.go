package antipasto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

// testAnchor places an 80x20 control at (0,90) in a parent window whose
// top-left corner sits at (10,10). With the 600px test viewport a three-row
// popup opens just below it: bounds (10,120,80,50), rows starting at y=121.
func testAnchor() Anchor {
	return Anchor{
		Origin: sdl.Point{X: 10, Y: 10},
		Rect:   sdl.Rect{X: 0, Y: 90, W: 80, H: 20},
		Button: 7,
		Accent: sdl.Color{R: 200, G: 100, B: 50, A: 255},
	}
}

func openTestMenu(t *testing.T, settings DropdownSettings, labels ...string) *Dropdown {
	t.Helper()
	style := testStyle()
	settings.Style = style
	if settings.Viewport == nil {
		settings.Viewport = &Viewport{Top: 0, Bottom: 600}
	}
	if len(labels) == 0 {
		labels = []string{"First", "Second", "Third"}
	}
	d := ShowAt(testAnchor(), textList(style, labels...), NoSelection, settings)
	require.NotNil(t, d)
	return d
}

// rowPoint is a cursor position inside the given row of the test popup.
func rowPoint(row int) sdl.Point {
	return sdl.Point{X: 20, Y: 121 + int32(row)*16 + 8}
}

func TestShowAtGeometry(t *testing.T) {
	d := openTestMenu(t, DropdownSettings{})

	require.Equal(t, sdl.Rect{X: 10, Y: 120, W: 80, H: 50}, d.Bounds())
	require.False(t, d.Closed())
	require.Equal(t, NoSelection, d.SelectedResult())
	require.True(t, d.NeedsRedraw())
}

func TestClickConfirmsAfterDelay(t *testing.T) {
	var calls []string
	var closed CloseResult
	d := openTestMenu(t, DropdownSettings{
		OnClose: func(r CloseResult) {
			calls = append(calls, "close")
			closed = r
		},
		OnSelect: func(button, result int) {
			calls = append(calls, "select")
			require.Equal(t, 7, button)
			require.Equal(t, 1, result)
		},
	})

	cursor := rowPoint(1)
	d.Click(cursor)
	require.Equal(t, 1, d.SelectedResult())
	require.False(t, d.Closed(), "selection is locked in, not yet confirmed")

	for i := 0; i < 3; i++ {
		d.Tick(cursor, true)
		require.False(t, d.Closed(), "tick %d", i)
	}
	d.Tick(cursor, true)

	require.True(t, d.Closed())
	require.Equal(t, []string{"close", "select"}, calls, "close must be reported before the selection")
	require.True(t, closed.DidSelect)
	require.Equal(t, 1, closed.SelectedResult)
	require.Equal(t, 7, closed.Button)
	// Cursor relative to the parent window, not the screen.
	require.Equal(t, sdl.Point{X: cursor.X - 10, Y: cursor.Y - 10}, closed.RelativeCursor)
}

func TestDragReleaseConfirms(t *testing.T) {
	var selected int
	d := openTestMenu(t, DropdownSettings{
		OnSelect: func(_, result int) { selected = result },
	})

	cursor := rowPoint(2)
	// The opening button is still held: hovering highlights.
	d.Tick(cursor, true)
	require.Equal(t, 2, d.SelectedResult())
	require.False(t, d.Closed())

	// Release over the row: confirm after the shorter delay.
	d.Tick(cursor, false)
	require.False(t, d.Closed())
	d.Tick(cursor, false)
	require.False(t, d.Closed())
	d.Tick(cursor, false)

	require.True(t, d.Closed())
	require.Equal(t, 2, selected)
}

func TestReleaseOutsideInstantClose(t *testing.T) {
	var closed *CloseResult
	selectFired := false
	d := openTestMenu(t, DropdownSettings{
		InstantClose: true,
		OnClose:      func(r CloseResult) { closed = &r },
		OnSelect:     func(_, _ int) { selectFired = true },
	})

	outside := sdl.Point{X: 300, Y: 300}
	d.Tick(outside, false)

	require.True(t, d.Closed())
	require.NotNil(t, closed)
	require.True(t, closed.WasInstantClose)
	require.False(t, closed.DidSelect)
	require.False(t, selectFired)
}

func TestReleaseOutsideStaysOpenWithoutInstantClose(t *testing.T) {
	d := openTestMenu(t, DropdownSettings{})

	d.Tick(sdl.Point{X: 300, Y: 300}, false)
	require.False(t, d.Closed())

	// A later click inside still works.
	d.Click(rowPoint(0))
	require.Equal(t, 0, d.SelectedResult())
}

func TestFocusLostCancels(t *testing.T) {
	var closed *CloseResult
	d := openTestMenu(t, DropdownSettings{
		InstantClose: true,
		OnClose:      func(r CloseResult) { closed = &r },
	})

	d.FocusLost()

	require.True(t, d.Closed())
	require.NotNil(t, closed)
	require.False(t, closed.DidSelect)
	// A cancel is never reported as an instant close.
	require.False(t, closed.WasInstantClose)
}

func TestFocusLostIgnoredOnceConfirming(t *testing.T) {
	var selected int
	d := openTestMenu(t, DropdownSettings{
		OnSelect: func(_, result int) { selected = result },
	})

	cursor := rowPoint(1)
	d.Click(cursor)
	d.FocusLost()
	require.False(t, d.Closed(), "a locked-in selection survives losing focus")

	for i := 0; i < 4; i++ {
		d.Tick(cursor, true)
	}
	require.True(t, d.Closed())
	require.Equal(t, 1, selected)
}

func TestCloseFiresExactlyOnce(t *testing.T) {
	closes := 0
	d := openTestMenu(t, DropdownSettings{
		OnClose: func(CloseResult) { closes++ },
	})

	d.FocusLost()
	d.FocusLost()
	d.Tick(rowPoint(0), false)
	d.Click(rowPoint(0))

	require.Equal(t, 1, closes)
}

func TestMaskedRowNotSelectable(t *testing.T) {
	style := testStyle()
	list := List{
		NewRawTextItem("Open", 0, false, style),
		NewRawTextItem("Locked", 1, true, style),
		NewSeparator(style),
	}
	d := ShowAt(testAnchor(), list, NoSelection, DropdownSettings{
		Style:    style,
		Viewport: &Viewport{Top: 0, Bottom: 600},
	})

	d.Click(rowPoint(1))
	require.Equal(t, NoSelection, d.SelectedResult())
	require.Zero(t, d.clickDelay)

	// The separator at y=153..160 is not a hit either.
	d.Click(sdl.Point{X: 20, Y: 156})
	require.Equal(t, NoSelection, d.SelectedResult())
}

func scrollLabels() []string {
	return []string{"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9"}
}

func TestOpenAboveScrolledToEnd(t *testing.T) {
	// Ten 16px rows against a 200px viewport: more room above the anchor,
	// six rows visible, opened pre-scrolled to the bottom.
	d := openTestMenu(t, DropdownSettings{
		Viewport: &Viewport{Top: 0, Bottom: 200},
	}, scrollLabels()...)

	require.True(t, d.layout.Above)
	require.True(t, d.layout.Scroll)
	require.Equal(t, int32(98), d.layout.Size.H)
	require.Equal(t, int32(2), d.layout.Pos.Y)
	require.Equal(t, 6, d.vscroll.capacity)
	require.Equal(t, 4, d.vscroll.position)
}

func TestEdgeScrollWhileDragging(t *testing.T) {
	d := openTestMenu(t, DropdownSettings{
		Viewport: &Viewport{Top: 0, Bottom: 200},
	}, scrollLabels()...)
	require.Equal(t, 4, d.vscroll.position)

	b := d.Bounds()

	// Held cursor at the top edge requests an upward scroll; the interval
	// tick consumes it, one row per tick.
	top := sdl.Point{X: b.X + 5, Y: b.Y + 1}
	d.Tick(top, true)
	d.AutoScrollTick()
	require.Equal(t, 3, d.vscroll.position)

	// No further movement until the next frame requests it again.
	d.AutoScrollTick()
	require.Equal(t, 3, d.vscroll.position)

	bottom := sdl.Point{X: b.X + 5, Y: b.Y + b.H - 1}
	d.Tick(bottom, true)
	d.AutoScrollTick()
	require.Equal(t, 4, d.vscroll.position)
}

func TestHitTestAccountsForScroll(t *testing.T) {
	d := openTestMenu(t, DropdownSettings{
		Viewport: &Viewport{Top: 0, Bottom: 200},
	}, scrollLabels()...)
	// Position 4: the first visible row is r4, drawn at the top of the
	// items area.
	r := d.itemsRect()

	result, ok := d.hitTest(sdl.Point{X: r.X + 2, Y: r.Y + 2})
	require.True(t, ok)
	require.Equal(t, 4, result)

	result, ok = d.hitTest(sdl.Point{X: r.X + 2, Y: r.Y + 5*16 + 2})
	require.True(t, ok)
	require.Equal(t, 9, result)
}

func TestRenderHighlightsSelection(t *testing.T) {
	d := openTestMenu(t, DropdownSettings{})
	d.Click(rowPoint(1))

	c := &recordCanvas{}
	d.Render(c)

	// Frame, background, then the highlight behind the selected row.
	require.Len(t, c.fills, 3)
	require.Equal(t, sdl.Rect{X: 11, Y: 121 + 16, W: 78, H: 16}, c.fills[2])
	require.False(t, d.NeedsRedraw())

	require.Len(t, c.texts, 3)
	require.Equal(t, "Second", c.texts[1].text)
}

func TestRenderChecksMaskedRows(t *testing.T) {
	style := testStyle()
	list := List{
		NewRawTextItem("Open", 0, false, style),
		NewRawTextItem("Locked", 1, true, style),
	}
	d := ShowAt(testAnchor(), list, NoSelection, DropdownSettings{
		Style:    style,
		Viewport: &Viewport{Top: 0, Bottom: 600},
	})

	c := &recordCanvas{}
	d.Render(c)

	require.Len(t, c.checkers, 1)
	require.Equal(t, int32(121+16), c.checkers[0].Y)
}

func TestShowMenuAllHiddenReturnsNil(t *testing.T) {
	d := ShowMenu(testAnchor(), []string{"a", "b"}, NoSelection, 0, 0b11, DropdownSettings{
		Style:    testStyle(),
		Viewport: &Viewport{Top: 0, Bottom: 600},
	})
	require.Nil(t, d)
}

func TestShowAtEmptyListPanics(t *testing.T) {
	require.Panics(t, func() {
		ShowAt(testAnchor(), nil, NoSelection, DropdownSettings{Style: testStyle()})
	})
}

func TestTickAfterCloseIsInert(t *testing.T) {
	d := openTestMenu(t, DropdownSettings{})
	d.FocusLost()
	require.True(t, d.Closed())

	d.Tick(rowPoint(0), true)
	d.Click(rowPoint(0))
	d.AutoScrollTick()
	require.Equal(t, NoSelection, d.SelectedResult())
}
