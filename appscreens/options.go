package appscreens

import "github.com/leona-app/storeshots/fonts"

// Option configures a Generator.
type Option func(*options)

type options struct {
	workers int
	fonts   *fonts.Resolver
	icon    string
}

func defaultOptions() options {
	return options{workers: 1}
}

// WithWorkers sets the number of screens rendered concurrently by Run.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithFonts shares a font resolver across generators.
func WithFonts(r *fonts.Resolver) Option {
	return func(o *options) {
		o.fonts = r
	}
}

// WithIcon sets the app icon image shown on the welcome screen. An empty
// path or an unreadable file leaves the icon out.
func WithIcon(path string) Option {
	return func(o *options) {
		o.icon = path
	}
}
