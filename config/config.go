// Package config describes a screenshot batch: where inputs and outputs
// live, which screens to render, and at which sizes. [Default] reproduces
// the stock batch; [Load] overlays a TOML file on top of it.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/leona-app/storeshots"
	"github.com/leona-app/storeshots/appscreens"
	"github.com/leona-app/storeshots/marketing"
)

// ErrInvalid is returned by Validate and wraps every problem found.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is a complete batch description. Relative paths are resolved
// against BaseDir.
type Config struct {
	// BaseDir is the root of the screenshot tree.
	BaseDir string `toml:"base_dir"`

	// Workers is the number of images rendered concurrently.
	Workers int `toml:"workers"`

	Marketing  Marketing  `toml:"marketing"`
	AppScreens AppScreens `toml:"app_screens"`
}

// Marketing configures the marketing compositor.
type Marketing struct {
	HeadlineFonts []string          `toml:"headline_fonts"`
	SubtitleFonts []string          `toml:"subtitle_fonts"`
	Targets       []MarketingTarget `toml:"targets"`
	Screens       []Screen          `toml:"screens"`
}

// MarketingTarget is one marketing canvas class.
type MarketingTarget struct {
	Name   string                `toml:"name"`
	Device storeshots.DeviceKind `toml:"device"`
	Input  string                `toml:"input"`
	Output string                `toml:"output"`
	Width  int                   `toml:"width"`
	Height int                   `toml:"height"`
}

// Screen is one marketing image.
type Screen struct {
	File     string           `toml:"file"`
	Out      string           `toml:"out"`
	Headline string           `toml:"headline"`
	Subtitle string           `toml:"subtitle"`
	Colors   []storeshots.RGB `toml:"colors"`
	Tilt     float64          `toml:"tilt"`
}

// AppScreens configures the synthetic app screen generator.
type AppScreens struct {
	Icon    string            `toml:"icon"`
	Shots   []appscreens.Shot `toml:"shots"`
	Targets []AppTarget       `toml:"targets"`
}

// AppTarget is one app screen size class.
type AppTarget struct {
	Name   string `toml:"name"`
	Output string `toml:"output"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Load reads the TOML file at path over the defaults. Keys missing from the
// file keep their default values; a list given in the file replaces the
// default list as a whole. Unknown keys are an error.
func Load(path string) (*Config, error) {
	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parsing %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := Default()
	cfg.merge(&file, md)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// merge copies every key defined in md from f into c.
func (c *Config) merge(f *Config, md toml.MetaData) {
	if md.IsDefined("base_dir") {
		c.BaseDir = f.BaseDir
	}
	if md.IsDefined("workers") {
		c.Workers = f.Workers
	}
	if md.IsDefined("marketing", "headline_fonts") {
		c.Marketing.HeadlineFonts = f.Marketing.HeadlineFonts
	}
	if md.IsDefined("marketing", "subtitle_fonts") {
		c.Marketing.SubtitleFonts = f.Marketing.SubtitleFonts
	}
	if md.IsDefined("marketing", "targets") {
		c.Marketing.Targets = f.Marketing.Targets
	}
	if md.IsDefined("marketing", "screens") {
		c.Marketing.Screens = f.Marketing.Screens
	}
	if md.IsDefined("app_screens", "icon") {
		c.AppScreens.Icon = f.AppScreens.Icon
	}
	if md.IsDefined("app_screens", "shots") {
		c.AppScreens.Shots = f.AppScreens.Shots
	}
	if md.IsDefined("app_screens", "targets") {
		c.AppScreens.Targets = f.AppScreens.Targets
	}
}

// Validate reports every problem in c, joined into one error wrapping
// ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Workers < 0 {
		bad("workers must not be negative, got %d", c.Workers)
	}
	for i, t := range c.Marketing.Targets {
		if t.Width <= 0 || t.Height <= 0 {
			bad("marketing target %d (%s): size %dx%d must be positive", i, t.Name, t.Width, t.Height)
		}
		if t.Device != storeshots.Phone && t.Device != storeshots.Tablet {
			bad("marketing target %d (%s): %v", i, t.Name, storeshots.ErrUnknownDevice)
		}
		if t.Output == "" {
			bad("marketing target %d (%s): output is required", i, t.Name)
		}
	}
	for i, s := range c.Marketing.Screens {
		if s.File == "" || s.Out == "" {
			bad("marketing screen %d: file and out are required", i)
		}
		if len(s.Colors) < 2 {
			bad("marketing screen %d (%s): %v", i, s.Out, storeshots.ErrTooFewStops)
		}
	}
	for i, t := range c.AppScreens.Targets {
		if t.Width <= 0 || t.Height <= 0 {
			bad("app target %d (%s): size %dx%d must be positive", i, t.Name, t.Width, t.Height)
		}
		if t.Output == "" {
			bad("app target %d (%s): output is required", i, t.Name)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Path resolves p against BaseDir. Absolute paths are returned unchanged.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// MarketingBatch returns the marketing batch with resolved directories.
func (c *Config) MarketingBatch() marketing.Batch {
	var b marketing.Batch
	for _, t := range c.Marketing.Targets {
		b.Targets = append(b.Targets, marketing.Target{
			Name:      t.Name,
			Device:    t.Device,
			InputDir:  c.Path(t.Input),
			OutputDir: c.Path(t.Output),
			Width:     t.Width,
			Height:    t.Height,
		})
	}
	for _, s := range c.Marketing.Screens {
		b.Screens = append(b.Screens, marketing.Screen{
			File:     s.File,
			Out:      s.Out,
			Headline: s.Headline,
			Subtitle: s.Subtitle,
			Colors:   s.Colors,
			Tilt:     s.Tilt,
		})
	}
	return b
}

// MarketingOptions returns the generator options implied by c.
func (c *Config) MarketingOptions() []marketing.Option {
	return []marketing.Option{
		marketing.WithWorkers(c.Workers),
		marketing.WithHeadlineFonts(c.Marketing.HeadlineFonts),
		marketing.WithSubtitleFonts(c.Marketing.SubtitleFonts),
	}
}

// AppTargets returns the app screen targets with resolved directories.
func (c *Config) AppTargets() []appscreens.Target {
	var out []appscreens.Target
	for _, t := range c.AppScreens.Targets {
		out = append(out, appscreens.Target{
			Name:      t.Name,
			OutputDir: c.Path(t.Output),
			Width:     t.Width,
			Height:    t.Height,
		})
	}
	return out
}

// AppOptions returns the app screen generator options implied by c.
func (c *Config) AppOptions() []appscreens.Option {
	return []appscreens.Option{
		appscreens.WithWorkers(c.Workers),
		appscreens.WithIcon(c.Path(c.AppScreens.Icon)),
	}
}
