package storeshots

import (
	"image"
	"image/color"

	"github.com/leona-app/storeshots/internal/filter"
)

// RenderShadow returns a transparent layer of size canvas holding a soft
// black shadow of device. The shadow takes the device alpha scaled by
// opacity/255, sits at pos+offset, and is blurred by blurRadius.
func RenderShadow(device image.Image, canvas image.Point, pos, offset image.Point, blurRadius float64, opacity uint8) *image.RGBA {
	s := filter.DropShadow{
		Offset: offset,
		Blur:   blurRadius,
		Color:  color.NRGBA{A: opacity},
	}
	layer := s.Render(device, canvas, pos)
	Logger().Debug("device shadow", "canvas", canvas, "pos", pos.Add(offset), "blur", blurRadius)
	return layer
}
