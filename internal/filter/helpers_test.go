package filter

import (
	"image"
	"image/color"
)

// Test helper functions shared across filter tests.

// createTestImage creates an image filled with the given color.
func createTestImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// colorApproxEqual compares two colors channel by channel with tolerance.
func colorApproxEqual(a, b color.RGBA, tolerance int) bool {
	return absDiff(a.R, b.R) <= tolerance &&
		absDiff(a.G, b.G) <= tolerance &&
		absDiff(a.B, b.B) <= tolerance &&
		absDiff(a.A, b.A) <= tolerance
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// alphaSum returns the sum of the alpha channel over the whole image.
func alphaSum(img *image.RGBA) int {
	sum := 0
	for i := 3; i < len(img.Pix); i += 4 {
		sum += int(img.Pix[i])
	}
	return sum
}
