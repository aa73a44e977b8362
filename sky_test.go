package storeshots

import (
	"reflect"
	"testing"
)

func TestStars(t *testing.T) {
	w, h := 1290, 2796
	stars := Stars(w, h, StarCount, 1)
	if len(stars) != StarCount {
		t.Fatalf("len = %d, want %d", len(stars), StarCount)
	}
	if !reflect.DeepEqual(stars, Stars(w, h, StarCount, 1)) {
		t.Error("Stars should be deterministic")
	}
	for i, s := range stars {
		if s.X < 0 || s.X > w || s.Y < 0 || s.Y > h {
			t.Errorf("star %d at (%d, %d) outside canvas", i, s.X, s.Y)
		}
		if s.R < 1 || s.R >= 3 {
			t.Errorf("star %d: r = %v, want [1, 3)", i, s.R)
		}
		if s.Color.R < 200 || s.Color.G < 200 || s.Color.B != 255 {
			t.Errorf("star %d: color = %v", i, s.Color)
		}
	}
}

func TestStarsScale(t *testing.T) {
	base := Stars(500, 500, 10, 1)
	scaled := Stars(500, 500, 10, 2)
	for i := range base {
		if base[i].X != scaled[i].X || base[i].Y != scaled[i].Y {
			t.Fatalf("star %d moved when scaled", i)
		}
		if d := scaled[i].R - 2*base[i].R; d > 1e-9 || d < -1e-9 {
			t.Errorf("star %d: r = %v, want %v", i, scaled[i].R, 2*base[i].R)
		}
	}
}

func TestStarsEmpty(t *testing.T) {
	if got := Stars(100, 100, 0, 1); got != nil {
		t.Errorf("Stars(n=0) = %v, want nil", got)
	}
}
