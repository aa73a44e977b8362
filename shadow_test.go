package storeshots

import (
	"image"
	"image/color"
	"testing"
)

func TestRenderShadowUnblurred(t *testing.T) {
	device := solidRGBA(10, 10, color.RGBA{255, 255, 255, 255})
	layer := RenderShadow(device, image.Pt(40, 40), image.Pt(5, 5), image.Pt(12, 16), 0, 45)

	if got := layer.Bounds().Size(); got != image.Pt(40, 40) {
		t.Fatalf("size = %v, want 40x40", got)
	}
	if got := layer.RGBAAt(17, 21); got != (color.RGBA{0, 0, 0, 45}) {
		t.Errorf("shadow pixel = %v, want black at alpha 45", got)
	}
	if got := layer.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel at device origin = %v, want transparent", got)
	}
}

func TestRenderShadowFollowsDeviceAlpha(t *testing.T) {
	device := image.NewRGBA(image.Rect(0, 0, 4, 1))
	device.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	device.SetRGBA(1, 0, color.RGBA{0, 0, 0, 0})

	layer := RenderShadow(device, image.Pt(4, 1), image.Point{}, image.Point{}, 0, 200)

	if a := layer.RGBAAt(0, 0).A; a != 200 {
		t.Errorf("alpha under opaque device = %d, want 200", a)
	}
	if a := layer.RGBAAt(1, 0).A; a != 0 {
		t.Errorf("alpha under transparent device = %d, want 0", a)
	}
}

func TestRenderShadowBlurSpreads(t *testing.T) {
	device := solidRGBA(20, 20, color.RGBA{255, 255, 255, 255})
	layer := RenderShadow(device, image.Pt(100, 100), image.Pt(30, 30), image.Pt(12, 16), 10, 45)

	// Blur reaches beyond the hard edge of the offset shadow.
	if a := layer.RGBAAt(40, 44).A; a == 0 {
		t.Error("blurred shadow should extend past its edge")
	}
	if a := layer.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("far corner alpha = %d, want 0", a)
	}
}
