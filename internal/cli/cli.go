// Package cli holds the flag handling, logging setup and execution shared by
// the storeshots and appshots commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/gogpu/gg/text"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leona-app/storeshots"
	"github.com/leona-app/storeshots/config"
)

// Version is reported by --version.
var Version = "dev"

// Options are the flags common to both commands.
type Options struct {
	Config  string
	BaseDir string
	Jobs    int
	Debug   bool
}

// Bind registers the options on fs.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Config, "config", "c", "", "TOML file overriding the default batch")
	fs.StringVar(&o.BaseDir, "base-dir", "", "root of the screenshot tree (default from config)")
	fs.IntVarP(&o.Jobs, "jobs", "j", 0, "images rendered concurrently (default from config)")
	fs.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// Setup installs logging and text shaping, then loads the configuration
// with flag overrides applied.
func (o *Options) Setup(stderr io.Writer) (*config.Config, error) {
	SetupLogging(stderr, o.Debug)
	text.SetShaper(text.NewGoTextShaper())
	return o.Load()
}

// Load returns the configuration selected by the options: the defaults,
// or the --config file over them, then --base-dir and --jobs.
func (o *Options) Load() (*config.Config, error) {
	cfg := config.Default()
	if o.Config != "" {
		var err error
		if cfg, err = config.Load(o.Config); err != nil {
			return nil, err
		}
	}
	if o.BaseDir != "" {
		cfg.BaseDir = o.BaseDir
	}
	if o.Jobs > 0 {
		cfg.Workers = o.Jobs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogging routes storeshots logging to w through a tint handler.
// Colors are used only when w is a terminal.
func SetupLogging(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
	storeshots.SetLogger(logger)
	return logger
}

// Execute runs cmd until it finishes or the process is interrupted and
// returns the process exit code.
func Execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, cmd,
		fang.WithVersion(Version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		return 1
	}
	return 0
}
