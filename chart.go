package storeshots

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// ChartRegion is the plot area of a chart in canvas pixels.
type ChartRegion struct {
	X, Y, Width, Height int
}

// Rect returns the region as a half-open rectangle.
func (r ChartRegion) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// GrowthModel is a saturating curve Base + Range*(1 - e^(-Rate*t)) plotted
// against an axis running from 0 to AxisMax.
type GrowthModel struct {
	Base    float64
	Range   float64
	Rate    float64
	AxisMax float64
}

// DefaultGrowthModel returns the infant weight curve: 3 kg at birth
// approaching 8.5 kg, on a 10 kg axis.
func DefaultGrowthModel() GrowthModel {
	return GrowthModel{Base: 3.0, Range: 5.5, Rate: 2.5, AxisMax: 10}
}

// Value returns the model value at t in [0, 1].
func (m GrowthModel) Value(t float64) float64 {
	return m.Base + m.Range*(1-math.Exp(-m.Rate*t))
}

// DefaultSampleCount is the number of curve samples drawn by GrowthChart.
const DefaultSampleCount = 30

// GrowthCurve samples model at n evenly spaced points across region and
// returns them in canvas pixels, left to right. A value of 0 maps to the
// bottom of the region and AxisMax to the top. A non-positive AxisMax uses
// the default axis.
func GrowthCurve(region ChartRegion, model GrowthModel, n int) ([]image.Point, error) {
	if region.Width <= 0 || region.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidChartRegion, region.Width, region.Height)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}
	axis := model.AxisMax
	if axis <= 0 {
		axis = DefaultGrowthModel().AxisMax
	}

	w, h := float64(region.Width), float64(region.Height)
	pts := make([]image.Point, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		pts[i] = image.Point{
			X: region.X + int(t*w),
			Y: region.Y + region.Height - int(model.Value(t)/axis*h),
		}
	}
	return pts, nil
}

// PercentileBand is a dashed reference line drawn at a fraction of the
// chart height from the top.
type PercentileBand struct {
	Label    string
	Fraction float64
}

// DefaultPercentiles are the P97, P50 and P3 reference lines.
var DefaultPercentiles = []PercentileBand{
	{Label: "P97", Fraction: 0.25},
	{Label: "P50", Fraction: 0.5},
	{Label: "P3", Fraction: 0.78},
}

// GrowthChart draws a growth curve over a tinted plot area with grid,
// axis labels and percentile reference lines.
type GrowthChart struct {
	Region ChartRegion
	Model  GrowthModel

	// Samples is the number of curve points; 0 means DefaultSampleCount.
	Samples int

	// Scale multiplies line widths, marker radii and label offsets.
	Scale float64

	Curve  RGB // curve and markers
	Accent RGB // band, grid and percentile lines
	Muted  RGB // axis labels

	YLabels     []string
	XLabels     []string
	Title       string
	Percentiles []PercentileBand

	// Faces for axis labels, the axis title and percentile labels. A nil
	// face skips that text.
	LabelFace      text.Face
	TitleFace      text.Face
	PercentileFace text.Face
}

// Default chart labels.
var (
	DefaultYLabels = []string{"10 kg", "8 kg", "6 kg", "4 kg", "2 kg", "0"}
	DefaultXLabels = []string{"0", "3", "6", "9", "12"}
)

// NewGrowthChart returns a weight chart over region with the default model,
// labels and palette. Faces are left nil for the caller to set.
func NewGrowthChart(region ChartRegion, scale float64) *GrowthChart {
	return &GrowthChart{
		Region:      region,
		Model:       DefaultGrowthModel(),
		Samples:     DefaultSampleCount,
		Scale:       scale,
		Curve:       RGB{102, 153, 217},
		Accent:      RGB{87, 179, 135},
		Muted:       RGB{130, 130, 140},
		YLabels:     DefaultYLabels,
		XLabels:     DefaultXLabels,
		Title:       "Age (months)",
		Percentiles: DefaultPercentiles,
	}
}

const (
	gridLines       = 6
	markerEvery     = 6
	dashLength      = 9
	bandAlpha       = 18
	gridAlpha       = 40
	percentileAlpha = 80
)

// Draw renders the chart onto dc and returns the plotted curve points.
func (c *GrowthChart) Draw(dc *gg.Context) ([]image.Point, error) {
	n := c.Samples
	if n == 0 {
		n = DefaultSampleCount
	}
	pts, err := GrowthCurve(c.Region, c.Model, n)
	if err != nil {
		return nil, err
	}
	s := c.Scale
	if s <= 0 {
		s = 1
	}
	r := c.Region
	x1, y1 := r.X+r.Width, r.Y+r.Height

	FillRoundedBox(dc, r.X, r.Y, x1, y1, Scaled(12, s), c.Accent.Alpha(bandAlpha))

	step := r.Height / (gridLines - 1)
	for i := 0; i < gridLines; i++ {
		gy := float64(r.Y + i*step)
		DrawLine(dc, float64(r.X), gy, float64(x1), gy, c.Accent.Alpha(gridAlpha), 1)
	}

	labelX := float64(r.X - Scaled(60, s))
	for i, l := range c.YLabels {
		ly := float64(r.Y + i*step - Scaled(10, s))
		DrawText(dc, l, labelX, ly, c.LabelFace, c.Muted.NRGBA())
	}
	if len(c.XLabels) > 1 {
		xstep := r.Width / (len(c.XLabels) - 1)
		for i, l := range c.XLabels {
			lx := float64(r.X + i*xstep - Scaled(5, s))
			DrawText(dc, l, lx, float64(y1+Scaled(10, s)), c.LabelFace, c.Muted.NRGBA())
		}
	}
	if c.Title != "" {
		tx := float64(r.X + r.Width/2 - Scaled(60, s))
		DrawText(dc, c.Title, tx, float64(y1+Scaled(38, s)), c.TitleFace, c.Muted.NRGBA())
	}

	c.drawPercentiles(dc, s)
	c.drawCurve(dc, pts, s)
	return pts, nil
}

func (c *GrowthChart) drawPercentiles(dc *gg.Context, s float64) {
	r := c.Region
	for _, p := range c.Percentiles {
		ly := float64(r.Y+int(p.Fraction*float64(r.Height))) + 0.5
		SetColor(dc, c.Accent.Alpha(percentileAlpha))
		dc.SetStroke(gg.DashedStroke(dashLength, dashLength))
		dc.DrawLine(float64(r.X), ly, float64(r.X+r.Width), ly)
		_ = dc.Stroke()
	}
	dc.SetStroke(gg.DefaultStroke())

	for _, p := range c.Percentiles {
		ly := r.Y + int(p.Fraction*float64(r.Height))
		lx := float64(r.X + r.Width + Scaled(8, s))
		DrawText(dc, p.Label, lx, float64(ly-Scaled(10, s)), c.PercentileFace, c.Accent.NRGBA())
	}
}

func (c *GrowthChart) drawCurve(dc *gg.Context, pts []image.Point, s float64) {
	SetColor(dc, c.Curve.NRGBA())
	dc.SetStroke(gg.RoundStroke().WithWidth(float64(max(Scaled(5, s), 1))))
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(float64(p.X)+0.5, float64(p.Y)+0.5)
			continue
		}
		dc.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	_ = dc.Stroke()
	dc.SetStroke(gg.DefaultStroke())

	outer, inner := Scaled(9, s), Scaled(4, s)
	for i := 0; i < len(pts); i += markerEvery {
		p := pts[i]
		FillEllipseBox(dc, p.X-outer, p.Y-outer, p.X+outer, p.Y+outer, c.Curve.NRGBA())
		FillEllipseBox(dc, p.X-inner, p.Y-inner, p.X+inner, p.Y+inner, White.NRGBA())
	}
}
