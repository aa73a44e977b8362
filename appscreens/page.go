package appscreens

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/leona-app/storeshots"
	"github.com/leona-app/storeshots/fonts"
)

// referenceWidth is the canvas width layouts are authored at.
const referenceWidth = 1290

// page is the drawing state of one screen. Background gradients and pasted
// images go to bg; everything else is drawn on the vector layer dc, which
// is composited over bg when the screen is done.
type page struct {
	bg   *image.RGBA
	dc   *gg.Context
	w, h int
	s    float64

	icon  image.Image
	fonts *fonts.Resolver
	faces map[faceKey]text.Face
}

type faceKey struct {
	size int
	bold bool
}

func newPage(w, h int, r *fonts.Resolver, icon image.Image) *page {
	return &page{
		bg:    image.NewRGBA(image.Rect(0, 0, w, h)),
		dc:    gg.NewContext(w, h),
		w:     w,
		h:     h,
		s:     float64(w) / referenceWidth,
		icon:  icon,
		fonts: r,
		faces: make(map[faceKey]text.Face),
	}
}

// finish composites the vector layer over the background and returns the
// opaque result.
func (p *page) finish() *image.RGBA {
	storeshots.Composite(p.bg, p.dc.Image(), image.Point{})
	return storeshots.Flatten(p.bg)
}

func (p *page) close() {
	_ = p.dc.Close()
}

// S scales a reference length to the canvas.
func (p *page) S(v float64) int {
	return storeshots.Scaled(v, p.s)
}

func (p *page) face(size int, bold bool) text.Face {
	size = max(size, 1)
	k := faceKey{size: size, bold: bold}
	if f, ok := p.faces[k]; ok {
		return f
	}
	fallback := fonts.Regular
	if bold {
		fallback = fonts.Bold
	}
	f := p.fonts.Face(fonts.SystemCandidates(size, bold), fallback, float64(size))
	p.faces[k] = f
	return f
}

// bold and regular return faces for a reference font size.
func (p *page) bold(size float64) text.Face    { return p.face(p.S(size), true) }
func (p *page) regular(size float64) text.Face { return p.face(p.S(size), false) }

func (p *page) gradient(stops ...storeshots.RGB) {
	storeshots.SteppedGradient(p.bg, p.bg.Rect, stops, storeshots.DefaultGradientSteps)
}

func (p *page) textWidth(f text.Face, s string) int {
	return int(storeshots.TextWidth(f, s))
}

func (p *page) text(s string, x, y int, f text.Face, c color.NRGBA) {
	storeshots.DrawText(p.dc, s, float64(x), float64(y), f, c)
}

// center draws s horizontally centred on the canvas.
func (p *page) center(s string, y int, f text.Face, c color.NRGBA) {
	p.text(s, (p.w-p.textWidth(f, s))/2, y, f, c)
}

// centerIn draws s centred within the span [x, x+w).
func (p *page) centerIn(s string, x, w, y int, f text.Face, c color.NRGBA) {
	p.text(s, x+(w-p.textWidth(f, s))/2, y, f, c)
}

// right draws s so that it ends at xr.
func (p *page) right(s string, xr, y int, f text.Face, c color.NRGBA) {
	p.text(s, xr-p.textWidth(f, s), y, f, c)
}

func (p *page) box(x0, y0, x1, y1 int, c color.NRGBA) {
	storeshots.FillBox(p.dc, x0, y0, x1, y1, c)
}

func (p *page) rrect(x0, y0, x1, y1, r int, c color.NRGBA) {
	storeshots.FillRoundedBox(p.dc, x0, y0, x1, y1, r, c)
}

func (p *page) outline(x0, y0, x1, y1, r int, c color.NRGBA) {
	storeshots.StrokeRoundedBox(p.dc, x0, y0, x1, y1, r, c, 1)
}

// circle fills the circle of radius r centred on (cx, cy).
func (p *page) circle(cx, cy, r int, c color.NRGBA) {
	storeshots.FillEllipseBox(p.dc, cx-r, cy-r, cx+r, cy+r, c)
}

func (p *page) ellipse(x0, y0, x1, y1 int, c color.NRGBA) {
	storeshots.FillEllipseBox(p.dc, x0, y0, x1, y1, c)
}

func (p *page) line(x0, y0, x1, y1 int, c color.NRGBA, width float64) {
	storeshots.DrawLine(p.dc, float64(x0), float64(y0), float64(x1), float64(y1), c, width)
}

// pasteIcon places the app icon at (x, y) scaled to sz x sz with rounded
// corners. Without an icon nothing is drawn.
func (p *page) pasteIcon(x, y, sz int) {
	if p.icon == nil || sz <= 0 {
		return
	}
	ic := storeshots.Resize(p.icon, sz, sz)
	mask := storeshots.RoundedMask(sz, sz, int(float64(sz)*iconRadiusFrac))
	storeshots.Composite(p.bg, storeshots.ApplyMask(ic, mask), image.Pt(x, y))
}

const iconRadiusFrac = 0.22
