package storeshots

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/text/unicode/norm"
)

// The box helpers below take inclusive pixel corners (x0, y0)-(x1, y1), so a
// box from 0 to 9 covers ten pixels. This keeps layout code in whole pixels.

// SetColor sets c as the current color of dc, keeping straight alpha.
func SetColor(dc *gg.Context, c color.NRGBA) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

// FillBox fills the inclusive box with c.
func FillBox(dc *gg.Context, x0, y0, x1, y1 int, c color.NRGBA) {
	SetColor(dc, c)
	dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0+1), float64(y1-y0+1))
	_ = dc.Fill()
}

// FillRoundedBox fills the inclusive box with c using corner radius r.
// Negative radii are treated as square corners.
func FillRoundedBox(dc *gg.Context, x0, y0, x1, y1, r int, c color.NRGBA) {
	SetColor(dc, c)
	roundedBoxPath(dc, x0, y0, x1, y1, r, 0)
	_ = dc.Fill()
}

// StrokeRoundedBox outlines the inclusive box with a line of the given
// width, keeping the stroke inside the box.
func StrokeRoundedBox(dc *gg.Context, x0, y0, x1, y1, r int, c color.NRGBA, width float64) {
	SetColor(dc, c)
	dc.SetStroke(gg.DefaultStroke().WithWidth(width))
	roundedBoxPath(dc, x0, y0, x1, y1, r, width/2)
	_ = dc.Stroke()
}

func roundedBoxPath(dc *gg.Context, x0, y0, x1, y1, r int, inset float64) {
	w := float64(x1-x0+1) - 2*inset
	h := float64(y1-y0+1) - 2*inset
	rr := float64(r) - inset
	if rr < 0 {
		rr = 0
	}
	if rr == 0 {
		dc.DrawRectangle(float64(x0)+inset, float64(y0)+inset, w, h)
		return
	}
	dc.DrawRoundedRectangle(float64(x0)+inset, float64(y0)+inset, w, h, rr)
}

// FillEllipseBox fills the ellipse inscribed in the inclusive box.
func FillEllipseBox(dc *gg.Context, x0, y0, x1, y1 int, c color.NRGBA) {
	SetColor(dc, c)
	rx := float64(x1-x0+1) / 2
	ry := float64(y1-y0+1) / 2
	dc.DrawEllipse(float64(x0)+rx, float64(y0)+ry, rx, ry)
	_ = dc.Fill()
}

// FillCircle fills a circle of radius r centred on pixel (cx, cy).
func FillCircle(dc *gg.Context, cx, cy, r float64, c color.NRGBA) {
	SetColor(dc, c)
	dc.DrawCircle(cx+0.5, cy+0.5, r+0.5)
	_ = dc.Fill()
}

// DrawLine strokes a straight line between pixel centres.
func DrawLine(dc *gg.Context, x0, y0, x1, y1 float64, c color.NRGBA, width float64) {
	SetColor(dc, c)
	dc.SetStroke(gg.DefaultStroke().WithWidth(width))
	dc.DrawLine(x0+0.5, y0+0.5, x1+0.5, y1+0.5)
	_ = dc.Stroke()
}

// DrawText draws s with its top-left corner at (x, y). Strings are NFC
// normalized before shaping. A nil face draws nothing.
func DrawText(dc *gg.Context, s string, x, y float64, face text.Face, c color.NRGBA) {
	if face == nil || s == "" {
		return
	}
	dc.SetFont(face)
	SetColor(dc, c)
	dc.DrawString(norm.NFC.String(s), x, y+face.Metrics().Ascent)
}

// TextWidth returns the advance width of s in face, or 0 for a nil face.
func TextWidth(face text.Face, s string) float64 {
	if face == nil || s == "" {
		return 0
	}
	return face.Advance(norm.NFC.String(s))
}

// contextRGBA returns the pixels of dc as an *image.RGBA.
func contextRGBA(dc *gg.Context) *image.RGBA {
	return toRGBA(dc.Image())
}

// toRGBA returns img as an *image.RGBA anchored at the origin, copying only
// when img is some other type.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Composite draws layer over dst with its top-left corner at pt.
func Composite(dst *image.RGBA, layer image.Image, pt image.Point) {
	b := layer.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(b.Size())}
	draw.Draw(dst, r, layer, b.Min, draw.Over)
}

// Scaled returns v*scale truncated to whole pixels. Layouts are authored at
// a reference width and scaled to the canvas with it.
func Scaled(v, scale float64) int {
	return int(v * scale)
}
