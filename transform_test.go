package storeshots

import (
	"image"
	"image/color"
	"testing"
)

func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestResize(t *testing.T) {
	src := solidRGBA(100, 200, color.RGBA{200, 30, 60, 255})
	got := Resize(src, 37, 61)

	if size := got.Bounds().Size(); size != image.Pt(37, 61) {
		t.Fatalf("size = %v, want 37x61", size)
	}
	c := got.RGBAAt(18, 30)
	if !near(c.R, 200, 1) || !near(c.G, 30, 1) || !near(c.B, 60, 1) || c.A != 255 {
		t.Errorf("pixel = %v, want ~(200,30,60,255)", c)
	}
}

func TestRotateSize(t *testing.T) {
	src := solidRGBA(100, 50, color.RGBA{255, 255, 255, 255})
	tests := []struct {
		degrees float64
		want    image.Point
	}{
		{0, image.Pt(100, 50)},
		{90, image.Pt(50, 100)},
		{-90, image.Pt(50, 100)},
		{180, image.Pt(100, 50)},
	}
	for _, tt := range tests {
		if got := Rotate(src, tt.degrees).Bounds().Size(); got != tt.want {
			t.Errorf("Rotate(%v) size = %v, want %v", tt.degrees, got, tt.want)
		}
	}
}

func TestRotateExpands(t *testing.T) {
	src := solidRGBA(300, 600, color.RGBA{255, 255, 255, 255})
	got := Rotate(src, 3)
	size := got.Bounds().Size()
	if size.X <= 300 || size.Y <= 600 {
		t.Fatalf("size = %v, want larger than 300x600", size)
	}
	// The top-left corner of the expanded box lies outside the rotated source.
	if a := got.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := got.RGBAAt(size.X/2, size.Y/2).A; a != 255 {
		t.Errorf("centre alpha = %d, want 255", a)
	}
}

func TestRotateDirection(t *testing.T) {
	// Mark the right half red; after a quarter turn counter-clockwise the red
	// half must be on top.
	src := solidRGBA(40, 20, color.RGBA{0, 0, 255, 255})
	for y := 0; y < 20; y++ {
		for x := 20; x < 40; x++ {
			src.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	got := Rotate(src, 90)
	if c := got.RGBAAt(10, 5); c.R < 200 || c.B > 50 {
		t.Errorf("top pixel = %v, want red", c)
	}
	if c := got.RGBAAt(10, 34); c.B < 200 || c.R > 50 {
		t.Errorf("bottom pixel = %v, want blue", c)
	}
}

func TestFlatten(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.SetRGBA(0, 0, color.RGBA{10, 20, 30, 255})
	src.SetRGBA(1, 0, color.RGBA{50, 0, 0, 128})
	// (2,0) stays transparent.

	got := Flatten(src)

	if c := got.RGBAAt(0, 0); c != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("opaque pixel = %v", c)
	}
	if c := got.RGBAAt(1, 0); c.A != 255 || !near(c.R, 99, 1) {
		t.Errorf("translucent pixel = %v, want straight red ~99", c)
	}
	if c := got.RGBAAt(2, 0); c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("transparent pixel = %v, want opaque black", c)
	}
}
