package marketing

import "github.com/leona-app/storeshots/fonts"

// Option configures a Generator.
type Option func(*options)

type options struct {
	workers  int
	fonts    *fonts.Resolver
	headline []string
	subtitle []string
}

func defaultOptions() options {
	return options{
		workers:  1,
		headline: fonts.HeadlineCandidates,
		subtitle: fonts.SubtitleCandidates,
	}
}

// WithWorkers sets the number of images rendered concurrently by Run.
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

// WithHeadlineFonts sets the candidate font files for headlines, tried in
// order before the embedded bold fallback.
func WithHeadlineFonts(paths []string) Option {
	return func(o *options) {
		o.headline = paths
	}
}

// WithSubtitleFonts sets the candidate font files for subtitles, tried in
// order before the embedded regular fallback.
func WithSubtitleFonts(paths []string) Option {
	return func(o *options) {
		o.subtitle = paths
	}
}
