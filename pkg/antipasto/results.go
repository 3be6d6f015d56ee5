package antipasto

import "github.com/veandco/go-sdl2/sdl"

// NoSelection is the selected-result value meaning no row is highlighted.
const NoSelection = -1

// CloseResult describes how a popup ended. It is delivered to the OnClose
// handler exactly once per popup lifetime, whatever the close path
// (confirmed selection, outside release, focus loss).
type CloseResult struct {
	// RelativeCursor is the cursor position relative to the anchor's parent
	// origin at the moment the popup closed.
	RelativeCursor sdl.Point

	// Button is the host-assigned identifier of the control the popup was
	// anchored to, handed back untouched.
	Button int

	// SelectedResult is the result value of the highlighted row at close, or
	// NoSelection.
	SelectedResult int

	// WasInstantClose reports whether the popup was in instant-close mode
	// when it closed.
	WasInstantClose bool

	// DidSelect is true when the close was a confirmed selection. The
	// OnSelect handler fires (after OnClose) only in that case.
	DidSelect bool
}

// CloseHandler receives the CloseResult when a popup tears down.
type CloseHandler func(CloseResult)

// SelectHandler receives the anchor button id and the chosen result value
// when a popup closes on a confirmed selection.
type SelectHandler func(button, result int)
