package antipasto

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Canvas is the drawing surface popups render onto. The SDL implementation
// is used in production; tests substitute a recorder.
type Canvas interface {
	// FillRect fills a rectangle with a solid color.
	FillRect(r sdl.Rect, c sdl.Color)

	// FillCheckerRect overlays a rectangle with a checkerboard pattern,
	// used to grey out masked rows.
	FillCheckerRect(r sdl.Rect, c sdl.Color)

	// DrawText draws a single line of text with its top-left at (x, y).
	DrawText(text string, x, y int32, c sdl.Color)

	// DrawIcon draws an icon into dst, tinted with the given color.
	DrawIcon(icon *Icon, dst sdl.Rect, tint sdl.Color)
}

// NewCanvas wraps an SDL renderer and font as a Canvas. Hosts embedding the
// popup in their own frame loop use this to render it.
func NewCanvas(renderer *sdl.Renderer, font *ttf.Font) Canvas {
	return &sdlCanvas{renderer: renderer, font: font}
}

type sdlCanvas struct {
	renderer *sdl.Renderer
	font     *ttf.Font
}

func (c *sdlCanvas) FillRect(r sdl.Rect, col sdl.Color) {
	pr, pg, pb, pa, _ := c.renderer.GetDrawColor()
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.FillRect(&r)
	c.renderer.SetDrawColor(pr, pg, pb, pa)
}

func (c *sdlCanvas) FillCheckerRect(r sdl.Rect, col sdl.Color) {
	pr, pg, pb, pa, _ := c.renderer.GetDrawColor()
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	for y := r.Y; y < r.Y+r.H; y++ {
		offset := (r.X + y) % 2
		if offset < 0 {
			offset += 2
		}
		for x := r.X + offset; x < r.X+r.W; x += 2 {
			c.renderer.DrawPoint(x, y)
		}
	}
	c.renderer.SetDrawColor(pr, pg, pb, pa)
}

func (c *sdlCanvas) DrawText(text string, x, y int32, col sdl.Color) {
	if c.font == nil || text == "" {
		return
	}

	surface, err := c.font.RenderUTF8Blended(text, col)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	c.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}

func (c *sdlCanvas) DrawIcon(icon *Icon, dst sdl.Rect, tint sdl.Color) {
	if icon == nil || icon.Texture == nil {
		return
	}
	icon.Texture.SetColorMod(tint.R, tint.G, tint.B)
	c.renderer.Copy(icon.Texture, nil, &dst)
}

// fontMeasurer implements TextMeasurer on a TTF font.
type fontMeasurer struct {
	font *ttf.Font
}

func (m fontMeasurer) MeasureText(text string) (int32, int32) {
	if m.font == nil || text == "" {
		return 0, 0
	}
	w, h, err := m.font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

func (m fontMeasurer) LineHeight() int32 {
	if m.font == nil {
		return 0
	}
	return int32(m.font.Height())
}
