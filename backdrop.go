package storeshots

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/gogpu/gg"

	"github.com/leona-app/storeshots/internal/filter"
)

// DefaultSeed seeds every decorative scatter so repeated runs match.
const DefaultSeed = 42

// BubbleCount is the number of floating bubbles drawn by OrganicOverlay.
const BubbleCount = 8

// bubbleBlur is the blur radius applied to the bubble layer.
const bubbleBlur = 8

// Bubble is one floating circle of the organic overlay.
type Bubble struct {
	X, Y, R int
	Opacity uint8
}

// Bubbles returns the bubble placements for a w x h canvas. Each bubble
// draws x, y, radius and opacity from a PRNG seeded with DefaultSeed, in
// that order, so the layout depends only on the canvas size.
func Bubbles(w, h int) []Bubble {
	rng := rand.New(rand.NewSource(DefaultSeed))
	fw, fh := float64(w), float64(h)

	out := make([]Bubble, BubbleCount)
	for i := range out {
		x := randInt(rng, int(fw*0.05), int(fw*0.95))
		y := randInt(rng, int(fh*0.02), int(fh*0.32))
		r := randInt(rng, int(fw*0.01), int(fw*0.025))
		a := randInt(rng, 25, 50)
		out[i] = Bubble{X: x, Y: y, R: r, Opacity: uint8(a)}
	}
	return out
}

// randInt returns a uniform integer in the closed range [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randFloat returns a uniform float in [lo, hi).
func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// SoftCircle composites a blurred filled circle of radius r centred on
// (cx, cy) over canvas. A blur <= 0 uses half the radius.
func SoftCircle(canvas *image.RGBA, cx, cy, r int, c color.NRGBA, blur float64) {
	if blur <= 0 {
		blur = float64(r) * 0.5
	}
	box := image.Rect(cx-r, cy-r, cx+r+1, cy+r+1)
	blurredLayer(canvas, box, blur, func(dc *gg.Context, o image.Point) {
		FillEllipseBox(dc, cx-r-o.X, cy-r-o.Y, cx+r-o.X, cy+r-o.Y, c)
	})
}

// OrganicOverlay decorates canvas with two large soft glows derived from
// base and a scatter of small white bubbles.
func OrganicOverlay(canvas *image.RGBA, base RGB) {
	w, h := canvas.Rect.Dx(), canvas.Rect.Dy()
	fw, fh := float64(w), float64(h)

	SoftCircle(canvas, int(fw*0.15), int(fh*0.08), int(fw*0.5), base.Shift(30).Alpha(50), 0)
	SoftCircle(canvas, int(fw*0.85), int(fh*0.7), int(fw*0.4), base.Shift(-20).Alpha(35), 0)

	bubbles := Bubbles(w, h)
	var box image.Rectangle
	for _, b := range bubbles {
		box = box.Union(image.Rect(b.X-b.R, b.Y-b.R, b.X+b.R+1, b.Y+b.R+1))
	}
	blurredLayer(canvas, box, bubbleBlur, func(dc *gg.Context, o image.Point) {
		for _, b := range bubbles {
			FillEllipseBox(dc, b.X-b.R-o.X, b.Y-b.R-o.Y, b.X+b.R-o.X, b.Y+b.R-o.Y, White.Alpha(b.Opacity))
		}
	})

	Logger().Debug("organic overlay", "size", canvas.Rect.Size(), "bubbles", len(bubbles))
}

// blurredLayer renders paint onto a transparent layer covering box grown by
// the blur reach, blurs it, and composites it over canvas. paint receives
// the layer origin in canvas coordinates.
func blurredLayer(canvas *image.RGBA, box image.Rectangle, blur float64, paint func(dc *gg.Context, origin image.Point)) {
	pad := int(math.Ceil(3*blur)) + 2
	region := box.Inset(-pad).Intersect(canvas.Rect)
	if region.Empty() {
		return
	}

	dc := gg.NewContext(region.Dx(), region.Dy())
	defer func() { _ = dc.Close() }()
	paint(dc, region.Min)

	layer := contextRGBA(dc)
	filter.Blur(layer, blur)
	Composite(canvas, layer, region.Min)
}
