package antipasto

import (
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Icon is a small rasterized bitmap usable in icon menu rows. Width and
// Height are fixed at load time; layout and drawing both read them, so they
// must not change while a popup showing the icon is open.
type Icon struct {
	Texture *sdl.Texture
	Width   int32
	Height  int32
}

// LoadIcon rasterizes an SVG file at the given square size into an Icon.
// Textures are cached by path and size, so loading the same icon for every
// row of a menu is cheap. Requires Init to have been called.
func LoadIcon(path string, size int32) (*Icon, error) {
	renderer := internal.GetWindow().Renderer
	tex, err := internal.LoadIconTexture(renderer, path, size, size)
	if err != nil {
		return nil, NewInfrastructureError("load_icon", err)
	}
	return &Icon{Texture: tex, Width: size, Height: size}, nil
}
