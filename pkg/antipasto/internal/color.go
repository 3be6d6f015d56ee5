package internal

import "github.com/veandco/go-sdl2/sdl"

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// Lighten returns the color moved toward white by amount (0-255).
func Lighten(c sdl.Color, amount uint8) sdl.Color {
	return sdl.Color{
		R: addClamp(c.R, amount),
		G: addClamp(c.G, amount),
		B: addClamp(c.B, amount),
		A: c.A,
	}
}

// Darken returns the color moved toward black by amount (0-255).
func Darken(c sdl.Color, amount uint8) sdl.Color {
	return sdl.Color{
		R: subClamp(c.R, amount),
		G: subClamp(c.G, amount),
		B: subClamp(c.B, amount),
		A: c.A,
	}
}

func addClamp(v, amount uint8) uint8 {
	if v > 255-amount {
		return 255
	}
	return v + amount
}

func subClamp(v, amount uint8) uint8 {
	if v < amount {
		return 0
	}
	return v - amount
}

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Max32 returns the larger of two int32 values.
func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
