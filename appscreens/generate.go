package appscreens

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/leona-app/storeshots"
	"github.com/leona-app/storeshots/fonts"
	"github.com/leona-app/storeshots/internal/imageio"
)

// Generator renders app screens.
type Generator struct {
	opts      options
	fonts     *fonts.Resolver
	ownsFonts bool

	iconOnce sync.Once
	icon     image.Image
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

// loadIcon decodes the app icon once. Failures are logged and leave the
// icon out of every screen.
func (g *Generator) loadIcon() image.Image {
	g.iconOnce.Do(func() {
		if g.opts.icon == "" {
			return
		}
		img, err := imageio.Load(g.opts.icon)
		if err != nil {
			storeshots.Logger().Debug("app icon unavailable", "path", g.opts.icon, "err", err)
			return
		}
		g.icon = img
	})
	return g.icon
}

// Render draws shot on a w x h canvas and returns the opaque image.
func (g *Generator) Render(shot Shot, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, storeshots.ErrInvalidSize
	}
	draw := shot.draw()
	if draw == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShot, int(shot))
	}

	p := newPage(w, h, g.fonts, g.loadIcon())
	defer p.close()
	if err := draw(p); err != nil {
		return nil, fmt.Errorf("appscreens: %s: %w", shot, err)
	}
	return p.finish(), nil
}

// Generate renders shot at the target size and writes it to the target
// output directory.
func (g *Generator) Generate(ctx context.Context, shot Shot, target Target) (Result, error) {
	res := Result{Target: target.Name, Shot: shot}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	img, err := g.Render(shot, target.Width, target.Height)
	if err != nil {
		return res, err
	}
	out := filepath.Join(target.OutputDir, shot.Filename())
	n, err := imageio.Save(out, img)
	if err != nil {
		return res, err
	}
	res.Path, res.Bytes = out, n
	storeshots.Logger().Info("wrote app screen",
		"path", out, "size", humanize.Bytes(uint64(n)), "target", target.Name)
	return res, nil
}

// Run renders every shot for every target. The summary lists results in
// shot-major order (each screen at every size) regardless of completion
// order; the first error cancels the remaining work.
func (g *Generator) Run(ctx context.Context, targets []Target, shots []Shot) (Summary, error) {
	type job struct {
		shot   Shot
		target Target
	}
	var jobs []job
	for _, s := range shots {
		for _, t := range targets {
			jobs = append(jobs, job{shot: s, target: t})
		}
	}

	results := make([]Result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.workers)
	for i, j := range jobs {
		eg.Go(func() error {
			r, err := g.Generate(ctx, j.shot, j.target)
			results[i] = r
			return err
		})
	}
	err := eg.Wait()

	var sum Summary
	for _, r := range results {
		if r.Path != "" {
			sum.add(r)
		}
	}
	if err != nil {
		return sum, err
	}
	storeshots.Logger().Info("app screens done",
		"written", sum.Written, "total", humanize.Bytes(uint64(sum.Bytes)))
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

// Run renders shots for targets with a Generator built from opts.
func Run(ctx context.Context, targets []Target, shots []Shot, opts ...Option) (Summary, error) {
	g := New(opts...)
	defer func() { _ = g.Close() }()
	return g.Run(ctx, targets, shots)
}
