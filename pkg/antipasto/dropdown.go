package antipasto

import (
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/constants"
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// Anchor identifies the control a popup drops down from.
type Anchor struct {
	// Origin is the parent window's top-left corner in screen space. Close
	// notifications report the cursor relative to it.
	Origin sdl.Point

	// Rect is the anchored control's rectangle, relative to Origin.
	Rect sdl.Rect

	// Button is a host-assigned identifier for the control, handed back
	// untouched in close notifications.
	Button int

	// Accent is the control's colour, used for the popup frame, separator
	// bevels, and the masked-row checker.
	Accent sdl.Color
}

// DropdownSettings configures popup behavior beyond the anchor and list.
type DropdownSettings struct {
	// InstantClose closes the popup as soon as the mouse button is released,
	// wherever the cursor is.
	InstantClose bool

	// MinWidth widens the anchor before layout, in output pixels.
	MinWidth int32

	// OnClose receives the close notification. Fired exactly once per popup.
	OnClose CloseHandler

	// OnSelect receives confirmed selections. Fired after OnClose, and only
	// when the popup closed on a confirmed selection.
	OnSelect SelectHandler

	// Style overrides the style; nil uses DefaultStyle.
	Style *Style

	// Viewport overrides the vertical screen range the popup may occupy;
	// nil uses the full window height.
	Viewport *Viewport
}

// Dropdown is an open popup menu. It owns its list for its whole lifetime
// and tears down synchronously when it closes.
//
// All methods must be called from the UI thread. The host drives the popup
// by calling Tick once per frame with the current cursor state, Click on
// mouse-down events, FocusLost when input focus moves away, AutoScrollTick
// from a ~30ms interval, and Render when drawing. Run bundles all of that
// into a blocking SDL loop for hosts that don't have their own.
type Dropdown struct {
	list   List
	layout Layout
	anchor Anchor
	style  *Style

	selected     int
	clickDelay   int
	dragMode     bool
	instantClose bool
	scrolling    int
	vscroll      scroller
	cursor       sdl.Point
	dirty        bool

	closed   atomic.Bool
	onClose  CloseHandler
	onSelect SelectHandler

	autoScroll *internal.IntervalTimer
}

// ShowAt opens a popup for a prebuilt list. selected is the result value of
// the initially highlighted row, or NoSelection. The list must be non-empty.
func ShowAt(anchor Anchor, list List, selected int, settings DropdownSettings) *Dropdown {
	if len(list) == 0 {
		panic("antipasto: ShowAt called with empty list")
	}

	style := settings.Style
	if style == nil {
		style = DefaultStyle()
	}

	var view Viewport
	if settings.Viewport != nil {
		view = *settings.Viewport
	} else {
		view = Viewport{Top: 0, Bottom: internal.GetWindow().GetHeight()}
	}

	screenAnchor := anchor.Rect
	screenAnchor.X += anchor.Origin.X
	screenAnchor.Y += anchor.Origin.Y

	layout := PlanLayout(screenAnchor, settings.MinWidth, list, view, style.RTL, style.Metrics)

	d := &Dropdown{
		list:         list,
		layout:       layout,
		anchor:       anchor,
		style:        style,
		selected:     selected,
		dragMode:     true,
		instantClose: settings.InstantClose,
		onClose:      settings.OnClose,
		onSelect:     settings.OnSelect,
		dirty:        true,
	}

	// Capacity is the average number of rows visible in the area inside the
	// frame.
	natural := ListDimension(list).H
	content := layout.Size.H - style.Metrics.Bevel.Vertical()
	d.vscroll.setCount(len(list))
	d.vscroll.setCapacity(int(content * int32(len(list)) / natural))

	// A popup opened upward starts scrolling down the moment the held mouse
	// button crosses its bottom edge. Opening it already scrolled to the
	// bottom avoids that.
	if layout.Above && layout.Scroll {
		d.vscroll.scrollToEnd()
	}

	d.autoScroll = internal.NewIntervalTimer(constants.AutoScrollInterval, d.AutoScrollTick)

	GetLogger().Debug("Popup opened",
		"rows", len(list),
		"button", anchor.Button,
		"above", layout.Above,
		"scroll", layout.Scroll,
	)

	return d
}

// ShowMenu builds a text menu from label message IDs and opens it. The
// result value of each row is its index in labels; entries with their bit
// set in hiddenMask are omitted (without renumbering the rest), entries with
// their bit set in disabledMask are shown masked. Returns nil if every label
// is hidden.
func ShowMenu(anchor Anchor, labels []string, selected int, disabledMask, hiddenMask uint32, settings DropdownSettings) *Dropdown {
	style := settings.Style
	if style == nil {
		style = DefaultStyle()
		settings.Style = style
	}

	list := BuildMenu(labels, hiddenMask, disabledMask, style)
	if len(list) == 0 {
		return nil
	}
	return ShowAt(anchor, list, selected, settings)
}

// Closed reports whether the popup has torn down.
func (d *Dropdown) Closed() bool {
	return d.closed.Load()
}

// SelectedResult returns the currently highlighted row's result value, or
// NoSelection.
func (d *Dropdown) SelectedResult() int {
	return d.selected
}

// Bounds returns the popup's rectangle in screen space.
func (d *Dropdown) Bounds() sdl.Rect {
	return sdl.Rect{X: d.layout.Pos.X, Y: d.layout.Pos.Y, W: d.layout.Size.W, H: d.layout.Size.H}
}

// NeedsRedraw reports whether popup state changed since the last Render.
func (d *Dropdown) NeedsRedraw() bool {
	return d.dirty
}

// itemsRect is the rows' drawable area: the popup bounds minus the frame
// bevel and, when scrolling, the scrollbar.
func (d *Dropdown) itemsRect() sdl.Rect {
	r := d.style.Metrics.Bevel.Shrink(d.Bounds())
	if d.layout.Scroll {
		if d.style.RTL {
			r.X += d.style.Metrics.ScrollbarWidth
		}
		r.W -= d.style.Metrics.ScrollbarWidth
	}
	return r
}

// hitTest finds the selectable row under the cursor. Rows scrolled off the
// top are skipped; a masked or non-selectable row under the cursor reports
// no hit.
func (d *Dropdown) hitTest(cursor sdl.Point) (int, bool) {
	r := d.itemsRect()
	if !cursor.InRect(&r) {
		return 0, false
	}

	y := cursor.Y - r.Y
	pos := d.vscroll.position

	for _, item := range d.list {
		// Skip rows that are scrolled up
		if pos > 0 {
			pos--
			continue
		}

		h := item.Height()
		if y < h {
			if item.Masked() || !item.Selectable() {
				return 0, false
			}
			return item.Result(), true
		}
		y -= h
	}

	return 0, false
}

// Tick advances the interaction state machine by one frame. cursor is the
// current mouse position in screen space; held reports whether the left
// button is down.
func (d *Dropdown) Tick(cursor sdl.Point, held bool) {
	if d.closed.Load() {
		return
	}
	d.cursor = cursor

	if d.clickDelay != 0 {
		d.clickDelay--
		if d.clickDelay == 0 {
			d.confirm()
			return
		}
	}

	if !d.dragMode {
		return
	}

	if !held {
		// The button that opened the popup was released.
		d.dragMode = false
		result, ok := d.hitTest(cursor)
		if !ok {
			if d.instantClose {
				d.close(false)
			}
			return
		}
		d.clickDelay = constants.ReleaseConfirmTicks
		d.setSelected(result)
		return
	}

	b := d.Bounds()
	margin := d.style.Metrics.EdgeScroll
	if cursor.Y <= b.Y+margin {
		// Cursor is above the list, scroll up
		d.scrolling = -1
		return
	}
	if cursor.Y >= b.Y+b.H-margin {
		// Cursor is below the list, scroll down
		d.scrolling = 1
		return
	}

	if result, ok := d.hitTest(cursor); ok {
		d.setSelected(result)
	}
}

// Click handles an explicit mouse-down inside the popup. A hit on a
// selectable row locks it in and arms the confirm delay.
func (d *Dropdown) Click(cursor sdl.Point) {
	if d.closed.Load() {
		return
	}
	d.cursor = cursor

	if result, ok := d.hitTest(cursor); ok {
		d.clickDelay = constants.ClickConfirmTicks
		d.setSelected(result)
	}
}

// FocusLost cancels the popup: it closes immediately without reporting a
// selection. Ignored once a selection is locked in or the popup already
// closed.
func (d *Dropdown) FocusLost() {
	if d.closed.Load() || d.clickDelay != 0 {
		return
	}
	d.instantClose = false
	d.close(false)
}

// AutoScrollTick consumes the pending edge-scroll direction, moving the
// viewport one row. Call it from a ~30ms interval; the rate limit is what
// keeps edge scrolling usable.
func (d *Dropdown) AutoScrollTick() {
	if d.closed.Load() || d.scrolling == 0 {
		return
	}
	if d.vscroll.update(d.scrolling) {
		d.dirty = true
	}
	d.scrolling = 0
}

func (d *Dropdown) setSelected(result int) {
	if d.selected != result {
		d.selected = result
		d.dirty = true
	}
}

// confirm closes the popup and reports the locked-in selection.
func (d *Dropdown) confirm() {
	selected := d.selected
	d.close(true)
	if d.onSelect != nil {
		d.onSelect(d.anchor.Button, selected)
	}
}

// close tears the popup down and fires the close notification. Guarded so
// the notification fires exactly once whatever path closed the popup.
func (d *Dropdown) close(didSelect bool) {
	if !d.closed.CompareAndSwap(false, true) {
		return
	}

	result := CloseResult{
		RelativeCursor: sdl.Point{
			X: d.cursor.X - d.anchor.Origin.X,
			Y: d.cursor.Y - d.anchor.Origin.Y,
		},
		Button:          d.anchor.Button,
		SelectedResult:  d.selected,
		WasInstantClose: d.instantClose,
		DidSelect:       didSelect,
	}

	GetLogger().Debug("Popup closed",
		"button", result.Button,
		"result", result.SelectedResult,
		"selected", didSelect,
	)

	if d.onClose != nil {
		d.onClose(result)
	}
}

// Render draws the popup: frame, background, the rows that fit the
// viewport, the highlight behind the selected row, a checker overlay on
// masked rows, and the scrollbar when scrolling.
func (d *Dropdown) Render(c Canvas) {
	b := d.Bounds()
	c.FillRect(b, d.anchor.Accent)
	inner := d.style.Metrics.Bevel.Shrink(b)
	c.FillRect(inner, d.style.BackgroundColor)

	r := d.itemsRect()
	y := r.Y
	pos := d.vscroll.position

	for _, item := range d.list {
		// Skip rows that are scrolled up
		if pos > 0 {
			pos--
			continue
		}

		h := item.Height()
		if y+h-1 <= r.Y+r.H-1 {
			row := sdl.Rect{X: r.X, Y: y, W: r.W, H: h}
			selected := item.Selectable() && !item.Masked() && d.selected == item.Result()

			if selected {
				c.FillRect(row, d.style.HighlightColor)
			}

			item.Draw(c, row, selected, d.anchor.Accent)

			if item.Masked() {
				c.FillCheckerRect(row, internal.Lighten(d.anchor.Accent, 20))
			}
		}
		y += h
	}

	if d.layout.Scroll {
		d.drawScrollbar(c)
	}

	d.dirty = false
}

// drawScrollbar draws a minimal track and thumb reflecting the scroll
// position.
func (d *Dropdown) drawScrollbar(c Canvas) {
	b := d.Bounds()
	m := d.style.Metrics

	track := sdl.Rect{
		X: b.X + b.W - m.Bevel.Right - m.ScrollbarWidth,
		Y: b.Y + m.Bevel.Top,
		W: m.ScrollbarWidth,
		H: b.H - m.Bevel.Vertical(),
	}
	if d.style.RTL {
		track.X = b.X + m.Bevel.Left
	}
	c.FillRect(track, internal.Darken(d.anchor.Accent, 30))

	if d.vscroll.count <= 0 {
		return
	}

	thumbH := internal.Max32(track.H*int32(d.vscroll.capacity)/int32(d.vscroll.count), m.ScrollbarWidth)
	thumbH = internal.Min32(thumbH, track.H)
	thumbY := track.Y
	if limit := d.vscroll.maxPosition(); limit > 0 {
		thumbY += (track.H - thumbH) * int32(d.vscroll.position) / int32(limit)
	}
	c.FillRect(sdl.Rect{X: track.X, Y: thumbY, W: track.W, H: thumbH}, internal.Lighten(d.anchor.Accent, 50))
}
