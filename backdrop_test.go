package storeshots

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

func TestBubblesDeterministic(t *testing.T) {
	a := Bubbles(1284, 2778)
	b := Bubbles(1284, 2778)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Bubbles should return the same layout for the same size")
	}
	if len(a) != BubbleCount {
		t.Fatalf("len = %d, want %d", len(a), BubbleCount)
	}
}

func TestBubblesRanges(t *testing.T) {
	w, h := 1284, 2778
	for i, b := range Bubbles(w, h) {
		if b.X < int(float64(w)*0.05) || b.X > int(float64(w)*0.95) {
			t.Errorf("bubble %d: x = %d out of range", i, b.X)
		}
		if b.Y < int(float64(h)*0.02) || b.Y > int(float64(h)*0.32) {
			t.Errorf("bubble %d: y = %d out of range", i, b.Y)
		}
		if b.R < int(float64(w)*0.01) || b.R > int(float64(w)*0.025) {
			t.Errorf("bubble %d: r = %d out of range", i, b.R)
		}
		if b.Opacity < 25 || b.Opacity > 50 {
			t.Errorf("bubble %d: opacity = %d out of range", i, b.Opacity)
		}
	}
}

func TestRandIntDegenerateRange(t *testing.T) {
	// Tiny canvases collapse ranges; this must not panic.
	for _, b := range Bubbles(10, 10) {
		if b.R != 0 {
			t.Errorf("r = %d, want 0 on a 10px canvas", b.R)
		}
	}
}

func TestSoftCircle(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 100, 100))
	SoftCircle(canvas, 50, 50, 20, color.NRGBA{R: 255, A: 255}, 4)

	center := canvas.RGBAAt(50, 50)
	if center.A < 250 || center.R < 250 {
		t.Errorf("center = %v, want nearly opaque red", center)
	}
	if edge := canvas.RGBAAt(50, 71); edge.A == 0 || edge.A == 255 {
		t.Errorf("pixel just outside radius = %v, want soft falloff", edge)
	}
	if far := canvas.RGBAAt(0, 0); far.A != 0 {
		t.Errorf("far corner = %v, want transparent", far)
	}
}

func TestSoftCircleOffCanvas(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// Should not panic.
	SoftCircle(canvas, -500, -500, 10, color.NRGBA{A: 255}, 2)
	if got := canvas.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel = %v, want untouched", got)
	}
}

func TestOrganicOverlayDeterministic(t *testing.T) {
	render := func() *image.RGBA {
		bg, err := VerticalGradient(120, 260, pinkStops)
		if err != nil {
			t.Fatalf("VerticalGradient: %v", err)
		}
		OrganicOverlay(bg, pinkStops[1])
		return bg
	}
	a, b := render(), render()
	if !reflect.DeepEqual(a.Pix, b.Pix) {
		t.Error("OrganicOverlay should be deterministic")
	}
	// The canvas stays opaque.
	for i := 3; i < len(a.Pix); i += 4 {
		if a.Pix[i] != 255 {
			t.Fatalf("alpha at byte %d = %d, want 255", i, a.Pix[i])
		}
	}
}
