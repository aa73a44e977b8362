package storeshots

import (
	"image"
	"image/color"
	"testing"
)

func TestRoundedMask(t *testing.T) {
	m := RoundedMask(40, 30, 10)

	if got := m.Bounds().Size(); got != image.Pt(40, 30) {
		t.Fatalf("size = %v, want 40x30", got)
	}
	corners := []image.Point{{0, 0}, {39, 0}, {0, 29}, {39, 29}}
	for _, p := range corners {
		if a := m.AlphaAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
	if a := m.AlphaAt(20, 15).A; a != 255 {
		t.Errorf("centre alpha = %d, want 255", a)
	}
	// Straight edges are fully covered.
	if a := m.AlphaAt(0, 15).A; a != 255 {
		t.Errorf("left edge alpha = %d, want 255", a)
	}
}

func TestRoundedMaskSquareCorners(t *testing.T) {
	m := RoundedMask(8, 8, 0)
	if a := m.AlphaAt(0, 0).A; a != 255 {
		t.Errorf("corner alpha = %d, want 255 for radius 0", a)
	}
}

func TestRoundedMaskEmpty(t *testing.T) {
	m := RoundedMask(0, 10, 4)
	if !m.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", m.Bounds())
	}
}

func TestApplyMask(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{200, 100, 50, 255})
	src.SetRGBA(1, 0, color.RGBA{200, 100, 50, 255})

	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.SetAlpha(0, 0, color.Alpha{A: 255})
	mask.SetAlpha(1, 0, color.Alpha{A: 0})

	got := ApplyMask(src, mask)

	if c := got.RGBAAt(0, 0); c != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("masked-in pixel = %v, want source color", c)
	}
	if c := got.RGBAAt(1, 0); c != (color.RGBA{}) {
		t.Errorf("masked-out pixel = %v, want transparent", c)
	}
}

func TestApplyMaskReplacesAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 128})

	mask := image.NewAlpha(image.Rect(0, 0, 1, 1))
	mask.SetAlpha(0, 0, color.Alpha{A: 255})

	got := ApplyMask(src, mask).RGBAAt(0, 0)
	if got.A != 255 || got.R < 253 {
		t.Errorf("pixel = %v, want opaque red", got)
	}
}
