package sdlhost

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

func hexToColor(hex uint32) sdl.Color {
	r, g, b := internal.HexToRGB(hex)
	return sdl.Color{R: r, G: g, B: b, A: 255}
}

func hexToRGBA(hex uint32) color.RGBA {
	r, g, b := internal.HexToRGB(hex)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
