package sdlhost

import (
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
)

// rasterizeSVG draws an SVG document into a size x size RGBA image.
func rasterizeSVG(svg string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1)

	return img, nil
}

// tint replaces the colour of every pixel with c, keeping its coverage.
func tint(img *image.RGBA, c color.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		img.Pix[i] = uint8(uint32(c.R) * a / 255)
		img.Pix[i+1] = uint8(uint32(c.G) * a / 255)
		img.Pix[i+2] = uint8(uint32(c.B) * a / 255)
	}
}

// textureFromImage uploads img as a blended texture.
func textureFromImage(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < h; y++ {
		copy(pixels[y*pitch:y*pitch+w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

func chevronTexture(renderer *sdl.Renderer, size int, c color.RGBA) (*sdl.Texture, error) {
	img, err := rasterizeSVG(constants.ChevronSVG, size)
	if err != nil {
		return nil, err
	}
	tint(img, c)
	return textureFromImage(renderer, img)
}
