package storeshots

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Resize resamples img to w x h with the Catmull-Rom kernel.
func Resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)
	return dst
}

// Rotate turns img counter-clockwise by degrees about its centre. The
// output grows to hold every rotated corner and is transparent outside the
// source.
func Rotate(img image.Image, degrees float64) *image.RGBA {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	rad := degrees * math.Pi / 180
	cos := roundTrig(math.Cos(rad))
	sin := roundTrig(math.Sin(rad))

	// Rotated corners relative to the centre.
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}} {
		x := p[0]*cos + p[1]*sin
		y := -p[0]*sin + p[1]*cos
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	nw := int(math.Ceil(maxX) - math.Floor(minX))
	nh := int(math.Ceil(maxY) - math.Floor(minY))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	if nw == 0 || nh == 0 {
		return dst
	}

	// Source to destination: move the source centre to the origin, rotate
	// (y grows downward, so a positive angle turns left on screen), then
	// move to the destination centre.
	cx, cy := float64(b.Min.X)+w/2, float64(b.Min.Y)+h/2
	ncx, ncy := float64(nw)/2, float64(nh)/2
	s2d := f64.Aff3{
		cos, sin, ncx - (cos*cx + sin*cy),
		-sin, cos, ncy - (-sin*cx + cos*cy),
	}
	draw.CatmullRom.Transform(dst, s2d, img, b, draw.Src, nil)
	return dst
}

// roundTrig drops floating point noise so right angles give exact zeros.
func roundTrig(v float64) float64 {
	return math.Round(v*1e15) / 1e15
}

// Flatten returns an opaque copy of img. Color channels keep their
// straight (unpremultiplied) values and alpha is discarded.
func Flatten(img image.Image) *image.RGBA {
	src := toRGBA(img)
	dst := image.NewRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		a := uint32(src.Pix[i+3])
		switch a {
		case 255:
			copy(dst.Pix[i:i+3], src.Pix[i:i+3])
		case 0:
		default:
			for c := 0; c < 3; c++ {
				dst.Pix[i+c] = uint8(min(uint32(src.Pix[i+c])*255/a, 255))
			}
		}
		dst.Pix[i+3] = 255
	}
	return dst
}
