package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

var iconCache = NewTextureCache()

// RasterizeSVG renders an SVG file into an RGBA image of the given size.
func RasterizeSVG(path string, width, height int32) (*image.RGBA, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg %s: %w", path, err)
	}

	w, h := int(width), int(height)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return rgba, nil
}

// LoadIconTexture rasterizes an SVG into an SDL texture, caching the result
// by path and size. The returned texture is owned by the cache.
func LoadIconTexture(renderer *sdl.Renderer, path string, width, height int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%dx%d", path, width, height)
	if tex := iconCache.Get(key); tex != nil {
		return tex, nil
	}

	rgba, err := RasterizeSVG(path, width, height)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), width, height, 32, int32(rgba.Stride), sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, fmt.Errorf("create icon surface: %w", err)
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create icon texture: %w", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	iconCache.Set(key, tex)
	return tex, nil
}

// DestroyIconCache releases all cached icon textures. Called on shutdown.
func DestroyIconCache() {
	iconCache.Destroy()
}
