package storeshots

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/gg"
)

// DeviceKind selects the mockup style drawn around a screenshot.
type DeviceKind int

const (
	// Phone is a thin-bezel phone with rounded corners, a Dynamic Island and
	// side buttons.
	Phone DeviceKind = iota

	// Tablet is a squared tablet with a small front camera.
	Tablet
)

// String returns the lowercase name of the kind.
func (k DeviceKind) String() string {
	switch k {
	case Phone:
		return "phone"
	case Tablet:
		return "tablet"
	default:
		return fmt.Sprintf("DeviceKind(%d)", int(k))
	}
}

// ParseDeviceKind parses a device name. "phone" and "iphone" select Phone,
// "tablet" and "ipad" select Tablet; case is ignored.
func ParseDeviceKind(s string) (DeviceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "phone", "iphone":
		return Phone, nil
	case "tablet", "ipad":
		return Tablet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDevice, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k DeviceKind) MarshalText() ([]byte, error) {
	if _, ok := deviceStyles[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDevice, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DeviceKind) UnmarshalText(b []byte) error {
	v, err := ParseDeviceKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// deviceStyle holds the per-kind proportions and palette of a mockup.
type deviceStyle struct {
	bezelFrac  float64
	radiusFrac float64
	minInner   int
	offset     int // clearance for side buttons
	body       RGB
	chamfer    RGB
	highlight  uint8
}

var deviceStyles = map[DeviceKind]deviceStyle{
	Phone: {
		bezelFrac:  0.022,
		radiusFrac: 0.082,
		minInner:   0,
		offset:     4,
		body:       RGB{42, 42, 47},
		chamfer:    RGB{55, 55, 60},
		highlight:  18,
	},
	Tablet: {
		bezelFrac:  0.018,
		radiusFrac: 0.028,
		minInner:   2,
		offset:     0,
		body:       RGB{38, 38, 42},
		chamfer:    RGB{52, 52, 56},
		highlight:  15,
	},
}

// minBezel is the thinnest bezel drawn at any frame width.
const minBezel = 5

// Decoration colors.
var (
	islandColor     = RGB{5, 5, 5}
	lensColor       = RGB{15, 15, 20}
	reflectionColor = RGB{30, 30, 45}
	cameraColor     = RGB{25, 25, 30}
	buttonColor     = RGB{50, 50, 55}
)

// FrameGeometry describes the layout of a device mockup. All values are in
// pixels. The body occupies FrameWidth x FrameHeight starting at
// (Offset, Offset) of the output image; the screen sits one bezel inside it.
type FrameGeometry struct {
	Kind        DeviceKind
	FrameWidth  int
	FrameHeight int
	Bezel       int
	InnerWidth  int
	InnerHeight int
	OuterRadius int
	InnerRadius int
	Offset      int
}

// Size returns the dimensions of the rendered mockup, including the side
// button clearance.
func (g FrameGeometry) Size() image.Point {
	return image.Pt(g.FrameWidth+2*g.Offset, g.FrameHeight+2*g.Offset)
}

// BodyRect returns the device body within the mockup image.
func (g FrameGeometry) BodyRect() image.Rectangle {
	return image.Rect(g.Offset, g.Offset, g.Offset+g.FrameWidth, g.Offset+g.FrameHeight)
}

// ScreenRect returns the screen area within the mockup image.
func (g FrameGeometry) ScreenRect() image.Rectangle {
	o := g.Offset + g.Bezel
	return image.Rect(o, o, o+g.InnerWidth, o+g.InnerHeight)
}

// ComputeGeometry derives the mockup layout for a screenshot of the given
// size drawn frameWidth pixels wide. The screen keeps the screenshot aspect
// ratio; the frame height follows from it.
func ComputeGeometry(kind DeviceKind, frameWidth int, screenshot image.Point) (FrameGeometry, error) {
	st, ok := deviceStyles[kind]
	if !ok {
		return FrameGeometry{}, fmt.Errorf("%w: %d", ErrUnknownDevice, int(kind))
	}
	if screenshot.X <= 0 || screenshot.Y <= 0 {
		return FrameGeometry{}, ErrEmptyImage
	}

	fw := float64(frameWidth)
	bezel := max(int(fw*st.bezelFrac), minBezel)
	innerW := frameWidth - 2*bezel
	if innerW <= 0 {
		return FrameGeometry{}, fmt.Errorf("%w: width %d, bezel %d", ErrFrameTooSmall, frameWidth, bezel)
	}
	innerH := max(screenshot.Y*innerW/screenshot.X, 1)
	outer := int(fw * st.radiusFrac)

	return FrameGeometry{
		Kind:        kind,
		FrameWidth:  frameWidth,
		FrameHeight: innerH + 2*bezel,
		Bezel:       bezel,
		InnerWidth:  innerW,
		InnerHeight: innerH,
		OuterRadius: outer,
		InnerRadius: max(outer-bezel, st.minInner),
		Offset:      st.offset,
	}, nil
}

// BuildDeviceFrame draws screenshot inside a device mockup frameWidth pixels
// wide. The result is transparent outside the device body and its buttons.
func BuildDeviceFrame(screenshot image.Image, frameWidth int, kind DeviceKind) (*image.RGBA, error) {
	if screenshot == nil {
		return nil, ErrEmptyImage
	}
	g, err := ComputeGeometry(kind, frameWidth, screenshot.Bounds().Size())
	if err != nil {
		return nil, err
	}
	st := deviceStyles[kind]
	size := g.Size()

	frame := drawBody(g, st)

	screen := Resize(screenshot, g.InnerWidth, g.InnerHeight)
	screen = ApplyMask(screen, RoundedMask(g.InnerWidth, g.InnerHeight, g.InnerRadius))
	Composite(frame, screen, g.ScreenRect().Min)

	deco := gg.NewContext(size.X, size.Y)
	defer func() { _ = deco.Close() }()
	switch kind {
	case Phone:
		drawIsland(deco, g)
		drawButtons(deco, g)
	case Tablet:
		drawCamera(deco, g)
	}
	Composite(frame, contextRGBA(deco), image.Point{})

	// 1px edge highlight over the outer outline.
	hl := gg.NewContext(size.X, size.Y)
	defer func() { _ = hl.Close() }()
	b := g.BodyRect()
	StrokeRoundedBox(hl, b.Min.X, b.Min.Y, b.Max.X-1, b.Max.Y-1, g.OuterRadius, White.Alpha(st.highlight), 1)
	Composite(frame, contextRGBA(hl), image.Point{})

	Logger().Debug("device frame",
		"kind", kind,
		"frame", image.Pt(g.FrameWidth, g.FrameHeight),
		"bezel", g.Bezel,
		"screen", image.Pt(g.InnerWidth, g.InnerHeight),
		"radius", g.OuterRadius)
	return frame, nil
}

// drawBody renders the body as three nested rounded rectangles: the body
// color, a lighter chamfer one pixel in, and the body again two pixels in.
func drawBody(g FrameGeometry, st deviceStyle) *image.RGBA {
	size := g.Size()
	dc := gg.NewContext(size.X, size.Y)
	defer func() { _ = dc.Close() }()

	b := g.BodyRect()
	layers := []RGB{st.body, st.chamfer, st.body}
	for inset, c := range layers {
		FillRoundedBox(dc,
			b.Min.X+inset, b.Min.Y+inset, b.Max.X-1-inset, b.Max.Y-1-inset,
			g.OuterRadius-inset, c.NRGBA())
	}
	return contextRGBA(dc)
}

// drawIsland draws the Dynamic Island pill with its camera lens.
func drawIsland(dc *gg.Context, g FrameGeometry) {
	fw := float64(g.FrameWidth)
	o := g.Offset

	w := int(fw * 0.23)
	h := int(fw * 0.052)
	x := o + (g.FrameWidth-w)/2
	y := o + g.Bezel + int(float64(g.InnerHeight)*0.005) + 2
	FillRoundedBox(dc, x, y, x+w, y+h, h/2, islandColor.NRGBA())

	lensR := int(float64(h) * 0.22)
	lx := x + w - int(float64(w)*0.28)
	ly := y + h/2
	FillEllipseBox(dc, lx-lensR, ly-lensR, lx+lensR, ly+lensR, lensColor.NRGBA())

	reflR := max(lensR/3, 1)
	FillEllipseBox(dc, lx-reflR+1, ly-reflR-1, lx+reflR+1, ly+reflR-1, reflectionColor.NRGBA())
}

// Side button layout as fractions of the frame height.
const (
	buttonThickness = 4
	buttonRadius    = 2
	powerY          = 0.23
	powerH          = 0.048
	volumeY         = 0.19
	volumeH         = 0.033
	volumeGap       = 0.012
	actionH         = 0.018
	actionLift      = 0.03
)

// drawButtons draws the power button on the right and the action and
// volume buttons on the left.
func drawButtons(dc *gg.Context, g FrameGeometry) {
	fh := float64(g.FrameHeight)
	o := g.Offset
	right := o + g.FrameWidth
	c := buttonColor.NRGBA()

	btnH := int(fh * powerH)
	btnY := int(fh * powerY)
	FillRoundedBox(dc, right-1, o+btnY, right+buttonThickness, o+btnY+btnH, buttonRadius, c)

	left := func(top, h int) {
		FillRoundedBox(dc, o-buttonThickness, o+top, o+1, o+top+h, buttonRadius, c)
	}
	volH := int(fh * volumeH)
	vol1 := int(fh * volumeY)
	left(vol1, volH)
	left(vol1+volH+int(fh*volumeGap), volH)
	left(vol1-int(fh*actionLift), int(fh*actionH))
}

// drawCamera draws the tablet front camera centred in the top bezel.
func drawCamera(dc *gg.Context, g FrameGeometry) {
	r := max(int(float64(g.FrameWidth)*0.004), 2)
	x := g.Offset + g.FrameWidth/2
	y := g.Offset + g.Bezel/2 + 1
	FillEllipseBox(dc, x-r, y-r, x+r, y+r, cameraColor.NRGBA())
}

