package filter

import (
	"image"
	"image/color"
)

// DropShadow builds a soft shadow layer from the alpha channel of a source
// image.
type DropShadow struct {
	// Offset moves the shadow relative to the source position.
	Offset image.Point

	// Blur is the Gaussian sigma applied to the shadow.
	Blur float64

	// Color is the shadow tone. Its alpha scales the source alpha.
	Color color.NRGBA
}

// Render returns a transparent layer of the given size holding the shadow of
// src placed with its top-left corner at pos.
//
// The algorithm:
//  1. Extract the alpha channel of src at pos+Offset
//  2. Colorize it with Color, scaling alpha by Color.A
//  3. Blur the layer
func (s DropShadow) Render(src image.Image, size, pos image.Point) *image.RGBA {
	layer := image.NewRGBA(image.Rectangle{Max: size})
	if src == nil {
		return layer
	}

	b := src.Bounds()
	origin := pos.Add(s.Offset)
	ca := uint32(s.Color.A)
	rgba, _ := src.(*image.RGBA)

	for y := 0; y < b.Dy(); y++ {
		dy := origin.Y + y
		if dy < 0 || dy >= size.Y {
			continue
		}
		for x := 0; x < b.Dx(); x++ {
			dx := origin.X + x
			if dx < 0 || dx >= size.X {
				continue
			}
			var a uint32
			if rgba != nil {
				a = uint32(rgba.Pix[rgba.PixOffset(b.Min.X+x, b.Min.Y+y)+3])
			} else {
				_, _, _, a16 := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
				a = a16 >> 8
			}
			if a == 0 {
				continue
			}
			sa := a * ca / 255
			o := layer.PixOffset(dx, dy)
			layer.Pix[o+0] = uint8(uint32(s.Color.R) * sa / 255)
			layer.Pix[o+1] = uint8(uint32(s.Color.G) * sa / 255)
			layer.Pix[o+2] = uint8(uint32(s.Color.B) * sa / 255)
			layer.Pix[o+3] = uint8(sa)
		}
	}

	Blur(layer, s.Blur)
	return layer
}
