package marketing

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/gg"
	"golang.org/x/sync/errgroup"

	"github.com/leona-app/storeshots"
	"github.com/leona-app/storeshots/fonts"
	"github.com/leona-app/storeshots/internal/imageio"
)

// Layout proportions, relative to the canvas.
const (
	phoneWidthFrac  = 0.55
	tabletWidthFrac = 0.62
	deviceTopFrac   = 0.365

	headlineSizeFrac = 0.085
	headlineTopFrac  = 0.045
	lineHeightFactor = 1.2
	subtitleSizeFrac = 0.034
	subtitleGapFrac  = 0.012
	dotsOffsetFactor = 1.8

	shadowBlur    = 45
	shadowOpacity = 45
	glowOffset    = 2
	dotRadius     = 4
	dotSpacing    = 20
)

var (
	shadowOffset  = image.Pt(12, 16)
	textColor     = storeshots.RGB{R: 55, G: 45, B: 55}
	glowColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 90}
	subtitleColor = color.NRGBA{R: 80, G: 70, B: 80, A: 180}
	dotColor      = textColor.Alpha(40)
)

// Generator renders marketing images.
type Generator struct {
	opts      options
	fonts     *fonts.Resolver
	ownsFonts bool
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Generator{opts: o, fonts: o.fonts}
	if g.fonts == nil {
		g.fonts = fonts.NewResolver()
		g.ownsFonts = true
	}
	return g
}

// Generate renders screen for target and writes it to the target output
// directory. A missing screenshot is not an error: it is logged and
// reported as skipped, and nothing is written.
func (g *Generator) Generate(ctx context.Context, screen Screen, target Target) (Result, error) {
	res := Result{Target: target.Name, Screen: screen.Out}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	src := filepath.Join(target.InputDir, screen.File)
	shot, err := imageio.Load(src)
	if errors.Is(err, fs.ErrNotExist) {
		storeshots.Logger().Warn("missing screenshot", "path", src, "target", target.Name)
		res.Skipped = true
		return res, nil
	}
	if err != nil {
		return res, err
	}

	img, err := g.Render(shot, screen, target)
	if err != nil {
		return res, fmt.Errorf("marketing: %s/%s: %w", target.Name, screen.Out, err)
	}

	out := filepath.Join(target.OutputDir, screen.Out)
	n, err := imageio.Save(out, img)
	if err != nil {
		return res, err
	}
	res.Path, res.Bytes = out, n
	storeshots.Logger().Info("wrote marketing image",
		"path", out, "size", humanize.Bytes(uint64(n)), "target", target.Name)
	return res, nil
}

// Render composes the marketing image for an already loaded screenshot and
// returns it flattened to an opaque image.
func (g *Generator) Render(shot image.Image, screen Screen, target Target) (*image.RGBA, error) {
	cw, ch := target.Width, target.Height
	canvas, err := storeshots.VerticalGradient(cw, ch, screen.Colors)
	if err != nil {
		return nil, err
	}
	storeshots.OrganicOverlay(canvas, screen.Colors[1])

	frac := phoneWidthFrac
	if target.Device == storeshots.Tablet {
		frac = tabletWidthFrac
	}
	frame, err := storeshots.BuildDeviceFrame(shot, int(float64(cw)*frac), target.Device)
	if err != nil {
		return nil, err
	}

	device := storeshots.Rotate(frame, screen.Tilt)
	pos := image.Pt((cw-device.Rect.Dx())/2, int(float64(ch)*deviceTopFrac))

	shadow := storeshots.RenderShadow(device, canvas.Rect.Size(), pos, shadowOffset, shadowBlur, shadowOpacity)
	storeshots.Composite(canvas, shadow, image.Point{})
	storeshots.Composite(canvas, device, pos)

	g.drawText(canvas, screen)
	return storeshots.Flatten(canvas), nil
}

// drawText renders the headline, subtitle and dot separator on a layer and
// composites it over canvas.
func (g *Generator) drawText(canvas *image.RGBA, screen Screen) {
	cw, ch := canvas.Rect.Dx(), canvas.Rect.Dy()
	fcw, fch := float64(cw), float64(ch)

	dc := gg.NewContext(cw, ch)
	defer func() { _ = dc.Close() }()

	headSize := int(fcw * headlineSizeFrac)
	subSize := int(fcw * subtitleSizeFrac)
	headFace := g.fonts.Face(g.opts.headline, fonts.Bold, float64(headSize))
	subFace := g.fonts.Face(g.opts.subtitle, fonts.Regular, float64(subSize))

	lines := strings.Split(screen.Headline, "\n")
	lineH := int(float64(headSize) * lineHeightFactor)
	startY := int(fch * headlineTopFrac)

	for i, line := range lines {
		tx := float64((cw - int(storeshots.TextWidth(headFace, line))) / 2)
		ty := float64(startY + i*lineH)
		storeshots.DrawText(dc, line, tx, ty+glowOffset, headFace, glowColor)
		storeshots.DrawText(dc, line, tx, ty, headFace, textColor.NRGBA())
	}

	subY := startY + len(lines)*lineH + int(fch*subtitleGapFrac)
	sx := float64((cw - int(storeshots.TextWidth(subFace, screen.Subtitle))) / 2)
	storeshots.DrawText(dc, screen.Subtitle, sx, float64(subY), subFace, subtitleColor)

	dotY := subY + int(float64(subSize)*dotsOffsetFactor)
	for _, off := range []int{-dotSpacing, 0, dotSpacing} {
		x := cw/2 + off
		storeshots.FillEllipseBox(dc, x-dotRadius, dotY-dotRadius, x+dotRadius, dotY+dotRadius, dotColor)
	}

	storeshots.Composite(canvas, dc.Image(), image.Point{})
}

// Run renders every screen for every target. Images are rendered by up to
// the configured number of workers; the summary lists results in
// target-major order regardless of completion order. The first error
// cancels the remaining work.
func (g *Generator) Run(ctx context.Context, batch Batch) (Summary, error) {
	type job struct {
		screen Screen
		target Target
	}
	var jobs []job
	for _, t := range batch.Targets {
		for _, s := range batch.Screens {
			jobs = append(jobs, job{screen: s, target: t})
		}
	}

	results := make([]Result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.workers)
	for i, j := range jobs {
		eg.Go(func() error {
			r, err := g.Generate(ctx, j.screen, j.target)
			results[i] = r
			return err
		})
	}
	err := eg.Wait()

	var sum Summary
	for _, r := range results {
		if r.Path == "" && !r.Skipped {
			continue
		}
		sum.add(r)
	}
	if err != nil {
		return sum, err
	}
	storeshots.Logger().Info("marketing batch done",
		"written", sum.Written, "skipped", sum.Skipped, "total", humanize.Bytes(uint64(sum.Bytes)))
	return sum, nil
}

// Close releases the fonts loaded by the generator. A resolver passed with
// WithFonts is left open for its owner.
func (g *Generator) Close() error {
	if !g.ownsFonts {
		return nil
	}
	return g.fonts.Close()
}

// Generate renders one image with a Generator built from opts.
func Generate(ctx context.Context, screen Screen, target Target, opts ...Option) (Result, error) {
	g := New(opts...)
	defer func() { _ = g.Close() }()
	return g.Generate(ctx, screen, target)
}

// Run renders batch with a Generator built from opts.
func Run(ctx context.Context, batch Batch, opts ...Option) (Summary, error) {
	g := New(opts...)
	defer func() { _ = g.Close() }()
	return g.Run(ctx, batch)
}
