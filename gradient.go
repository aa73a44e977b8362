package storeshots

import (
	"image"
)

// DefaultGradientSteps is the band count used by SteppedGradient callers.
const DefaultGradientSteps = 300

// VerticalGradient renders an opaque width x height image blending the stops
// from top to bottom. Row y uses t = y/height eased with smoothstep
// t*t*(3-2t), so color changes slowly near the edges and faster in the
// middle. Only consecutive stops are blended.
func VerticalGradient(width, height int, stops []RGB) (*image.RGBA, error) {
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		eased := t * t * (3 - 2*t)
		fillRow(img, 0, width, y, stopAt(stops, eased))
	}
	return img, nil
}

// SteppedGradient fills rect of dst with steps flat bands blending the stops
// linearly (no easing). Band i covers rows from int(h*i/steps) through
// int(h*(i+1)/steps) inclusive, relative to rect.Min.Y, where h is the
// rect height; later bands overwrite the shared boundary row.
// Fewer than two stops fill rect with the single stop, or leave dst
// untouched when there are none.
func SteppedGradient(dst *image.RGBA, rect image.Rectangle, stops []RGB, steps int) {
	if len(stops) == 0 {
		return
	}
	if steps <= 0 {
		steps = DefaultGradientSteps
	}
	clip := rect.Intersect(dst.Rect)
	if clip.Empty() {
		return
	}

	h := rect.Dy()
	for i := 0; i < steps; i++ {
		c := stops[0]
		if len(stops) > 1 {
			c = stopAt(stops, float64(i)/float64(steps))
		}
		sy := rect.Min.Y + h*i/steps
		ey := rect.Min.Y + h*(i+1)/steps
		for y := max(sy, clip.Min.Y); y <= ey && y < clip.Max.Y; y++ {
			fillRow(dst, clip.Min.X, clip.Max.X, y, c)
		}
	}
}

// stopAt returns the color at position t in [0, 1] along the stops.
func stopAt(stops []RGB, t float64) RGB {
	n := len(stops)
	pos := t * float64(n-1)
	idx := min(int(pos), n-2)
	if idx < 0 {
		idx = 0
	}
	return Lerp(stops[idx], stops[idx+1], pos-float64(idx))
}

// fillRow paints pixels x0..x1-1 of row y with c at full opacity.
func fillRow(img *image.RGBA, x0, x1, y int, c RGB) {
	off := img.PixOffset(x0, y)
	for x := x0; x < x1; x++ {
		img.Pix[off+0] = c.R
		img.Pix[off+1] = c.G
		img.Pix[off+2] = c.B
		img.Pix[off+3] = 255
		off += 4
	}
}
