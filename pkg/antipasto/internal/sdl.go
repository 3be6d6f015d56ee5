package internal

import (
	"os"

	"github.com/BrandonKowalski/antipasto/pkg/antipasto/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

func Init(title string, winOpts WindowOptions) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		GetInternalLogger().Error("Failed to initialize SDL", "error", err)
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		GetInternalLogger().Error("Failed to initialize TTF", "error", err)
		os.Exit(1)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, winOpts)

	initFonts(DefaultFontSizes)
}

func SDLCleanup() {
	window.closeWindow()
	closeFonts()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
