package antipasto

import (
	"time"

	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Run drives the popup with a blocking SDL event loop until it closes.
// This is for hosts without a frame loop of their own; hosts that have one
// should instead feed the popup through Tick, Click, FocusLost,
// AutoScrollTick, and Render.
//
// Returns the close result, with ErrCancelled when the popup closed without
// a confirmed selection. The OnClose and OnSelect handlers still fire as
// usual before Run returns.
func (d *Dropdown) Run() (*CloseResult, error) {
	window := internal.GetWindow()
	canvas := NewCanvas(window.Renderer, internal.Fonts.Font)

	var result *CloseResult
	userOnClose := d.onClose
	d.onClose = func(r CloseResult) {
		result = &r
		if userOnClose != nil {
			userOnClose(r)
		}
	}

	var err error

	for !d.Closed() {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				err = NewInfrastructureError("event_loop", sdl.GetError())
				d.FocusLost()

			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
					d.Click(sdl.Point{X: e.X, Y: e.Y})
				}

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
					d.FocusLost()
				}
			}
		}

		cursor, held := window.CursorState()
		d.Tick(cursor, held)
		d.autoScroll.Update(time.Now())

		d.Render(canvas)
		window.Present()
	}

	if err != nil {
		return nil, err
	}
	if result == nil || !result.DidSelect {
		return result, ErrCancelled
	}
	return result, nil
}
