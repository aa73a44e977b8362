package storeshots

import (
	"image"

	"github.com/gogpu/gg"
)

// RoundedMask returns a w x h alpha mask that is opaque inside a rounded
// rectangle of corner radius r spanning the whole mask and transparent
// outside it.
func RoundedMask(w, h, r int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	FillRoundedBox(dc, 0, 0, w-1, h-1, r, White.NRGBA())

	src := contextRGBA(dc)
	for i := range mask.Pix {
		mask.Pix[i] = src.Pix[i*4+3]
	}
	return mask
}

// ApplyMask returns a copy of img whose alpha channel is replaced by mask.
// Color is taken unpremultiplied from img, so a translucent source keeps
// its hue. Pixels outside mask become transparent.
func ApplyMask(img image.Image, mask *image.Alpha) *image.RGBA {
	src := toRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := uint32(mask.AlphaAt(mask.Rect.Min.X+x, mask.Rect.Min.Y+y).A)
			if m == 0 {
				continue
			}
			so := src.PixOffset(x, y)
			sa := uint32(src.Pix[so+3])
			if sa == 0 {
				continue
			}
			do := dst.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				// Unpremultiply by sa, premultiply by m.
				straight := min(uint32(src.Pix[so+c])*255/sa, 255)
				dst.Pix[do+c] = uint8(straight * m / 255)
			}
			dst.Pix[do+3] = uint8(m)
		}
	}
	return dst
}
