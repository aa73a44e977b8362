package appscreens

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/leona-app/storeshots"
	"github.com/leona-app/storeshots/internal/imageio"
)

// Small canvases keep the tests fast; layouts scale with the width.
const (
	testW = 258
	testH = 559
)

func TestRenderAllShots(t *testing.T) {
	g := New()
	defer func() { _ = g.Close() }()

	for _, shot := range AllShots {
		t.Run(shot.String(), func(t *testing.T) {
			img, err := g.Render(shot, testW, testH)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got := img.Bounds().Size(); got != image.Pt(testW, testH) {
				t.Errorf("size = %v, want %dx%d", got, testW, testH)
			}
			for _, pt := range []image.Point{{0, 0}, {testW - 1, testH - 1}, {testW / 2, testH / 2}} {
				if a := img.RGBAAt(pt.X, pt.Y).A; a != 255 {
					t.Errorf("alpha at %v = %d, want 255", pt, a)
				}
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	g := New()
	defer func() { _ = g.Close() }()

	for _, shot := range []Shot{NightMode, Statistics} {
		a, err := g.Render(shot, testW, testH)
		if err != nil {
			t.Fatalf("Render(%s): %v", shot, err)
		}
		b, err := g.Render(shot, testW, testH)
		if err != nil {
			t.Fatalf("Render(%s): %v", shot, err)
		}
		if !reflect.DeepEqual(a.Pix, b.Pix) {
			t.Errorf("%s: renders differ", shot)
		}
	}
}

func TestRenderBackground(t *testing.T) {
	g := New()
	defer func() { _ = g.Close() }()

	img, err := g.Render(NightMode, testW, testH)
	if err != nil {
		t.Fatal(err)
	}
	// The night gradient is dark blue; average the bottom row, below all
	// content, so scattered stars do not matter.
	var r, b int
	for x := 0; x < testW; x++ {
		c := img.RGBAAt(x, testH-1)
		r += int(c.R)
		b += int(c.B)
	}
	r, b = r/testW, b/testW
	if b <= r || r > 60 {
		t.Errorf("bottom row mean r=%d b=%d, want a dark blue", r, b)
	}
}

func TestRenderErrors(t *testing.T) {
	g := New()
	defer func() { _ = g.Close() }()

	if _, err := g.Render(Welcome, 0, 100); !errors.Is(err, storeshots.ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
	if _, err := g.Render(Shot(42), 100, 100); !errors.Is(err, ErrUnknownShot) {
		t.Errorf("err = %v, want ErrUnknownShot", err)
	}
}

func TestWelcomeIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	icon := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(icon.Pix); i += 4 {
		icon.Pix[i], icon.Pix[i+1], icon.Pix[i+2], icon.Pix[i+3] = 255, 0, 0, 255
	}
	if _, err := imageio.Save(path, icon); err != nil {
		t.Fatal(err)
	}

	g := New(WithIcon(path))
	defer func() { _ = g.Close() }()
	img, err := g.Render(Welcome, testW, testH)
	if err != nil {
		t.Fatal(err)
	}
	// Icon is 40px at y=40, centred horizontally.
	c := img.RGBAAt(testW/2, 60)
	if c.R < 200 || c.G > 80 || c.B > 80 {
		t.Errorf("icon centre = %v, want red", c)
	}
	// Rounded corners let the background through.
	corner := img.RGBAAt((testW-40)/2, 40)
	if corner.R == 255 && corner.G == 0 {
		t.Errorf("icon corner = %v, want background", corner)
	}
}

func TestMissingIcon(t *testing.T) {
	g := New(WithIcon(filepath.Join(t.TempDir(), "missing.png")))
	defer func() { _ = g.Close() }()
	if _, err := g.Render(Welcome, testW, testH); err != nil {
		t.Fatalf("Render without icon: %v", err)
	}
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	targets := []Target{
		{Name: "phone", OutputDir: filepath.Join(root, "iPhone"), Width: testW, Height: testH},
		{Name: "tablet", OutputDir: filepath.Join(root, "iPad"), Width: 205, Height: 273},
	}
	shots := []Shot{Welcome, NightMode}

	sum, err := Run(context.Background(), targets, shots, WithWorkers(3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Written != 4 {
		t.Fatalf("written = %d, want 4", sum.Written)
	}
	want := []struct {
		target string
		shot   Shot
	}{
		{"phone", Welcome}, {"tablet", Welcome}, {"phone", NightMode}, {"tablet", NightMode},
	}
	var total int64
	for i, w := range want {
		r := sum.Results[i]
		if r.Target != w.target || r.Shot != w.shot {
			t.Errorf("result %d = %s/%s, want %s/%s", i, r.Target, r.Shot, w.target, w.shot)
		}
		fi, err := os.Stat(r.Path)
		if err != nil {
			t.Errorf("result %d: %v", i, err)
			continue
		}
		if fi.Size() != r.Bytes {
			t.Errorf("result %d: bytes = %d, file has %d", i, r.Bytes, fi.Size())
		}
		total += r.Bytes
	}
	if sum.Bytes != total {
		t.Errorf("summary bytes = %d, want %d", sum.Bytes, total)
	}

	img, err := imageio.Load(filepath.Join(root, "iPad", "05_NightMode.png"))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(205, 273) {
		t.Errorf("tablet size = %v", got)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, []Target{{Name: "x", OutputDir: t.TempDir(), Width: 10, Height: 10}}, AllShots)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestAlpha(t *testing.T) {
	got := alpha(color.NRGBA{R: 1, G: 2, B: 3, A: 255}, 40)
	if got != (color.NRGBA{R: 1, G: 2, B: 3, A: 40}) {
		t.Errorf("alpha = %v", got)
	}
}
