package filter

import (
	"image"
	"image/color"
	"testing"
)

func TestBlurZeroSigmaIsIdentity(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	img := createTestImage(10, 10, red)

	Blur(img, 0)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := img.RGBAAt(x, y); got != red {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, red)
			}
		}
	}
}

func TestBlurNilAndEmpty(t *testing.T) {
	// Should not panic.
	Blur(nil, 5)
	Blur(image.NewRGBA(image.Rect(0, 0, 0, 0)), 5)
}

func TestBlurUniformImageUnchanged(t *testing.T) {
	c := color.RGBA{200, 150, 190, 255}
	for _, sigma := range []float64{1, 3, 8, 45} {
		img := createTestImage(40, 30, c)
		Blur(img, sigma)
		for y := 0; y < 30; y++ {
			for x := 0; x < 40; x++ {
				if got := img.RGBAAt(x, y); !colorApproxEqual(got, c, 1) {
					t.Fatalf("sigma %v: pixel (%d,%d) = %v, want %v", sigma, x, y, got, c)
				}
			}
		}
	}
}

func TestBlurSpreadsPoint(t *testing.T) {
	for _, sigma := range []float64{1, 3} {
		img := image.NewRGBA(image.Rect(0, 0, 41, 41))
		img.SetRGBA(20, 20, color.RGBA{255, 255, 255, 255})

		Blur(img, sigma)

		center := img.RGBAAt(20, 20)
		if center.A == 255 {
			t.Errorf("sigma %v: center should be blurred, got %v", sigma, center)
		}
		if img.RGBAAt(21, 20).A == 0 && img.RGBAAt(20, 21).A == 0 {
			t.Errorf("sigma %v: blur should spread to neighbours", sigma)
		}
		if img.RGBAAt(0, 0).A != 0 {
			t.Errorf("sigma %v: far corner should stay transparent, got %v", sigma, img.RGBAAt(0, 0))
		}
	}
}

func TestBlurConservesAlphaAwayFromEdges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	for y := 50; y < 70; y++ {
		for x := 50; x < 70; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 0, 200})
		}
	}
	before := alphaSum(img)

	Blur(img, 8)

	after := alphaSum(img)
	diff := after - before
	if diff < 0 {
		diff = -diff
	}
	// Rounding at every pass may drift by a small fraction.
	if diff > before/20 {
		t.Errorf("alpha sum changed from %d to %d", before, after)
	}
}

func TestBlurSymmetric(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 31, 31))
	img.SetRGBA(15, 15, color.RGBA{255, 255, 255, 255})
	Blur(img, 2)

	if a, b := img.RGBAAt(13, 15), img.RGBAAt(17, 15); a != b {
		t.Errorf("horizontal asymmetry: %v vs %v", a, b)
	}
	if a, b := img.RGBAAt(15, 13), img.RGBAAt(15, 17); a != b {
		t.Errorf("vertical asymmetry: %v vs %v", a, b)
	}
}

func TestBoxLineEdgeExtension(t *testing.T) {
	// One row, 5 pixels, only the first channel set.
	src := []uint8{
		10, 0, 0, 0,
		10, 0, 0, 0,
		40, 0, 0, 0,
		10, 0, 0, 0,
		10, 0, 0, 0,
	}
	dst := make([]uint8, len(src))
	boxLine(src, dst, 0, 4, 5, 1)

	want := []uint8{10, 20, 20, 20, 10}
	for i, w := range want {
		if got := dst[i*4]; got != w {
			t.Errorf("dst[%d] = %d, want %d", i, got, w)
		}
	}
}
