// Package fonts resolves font files from ordered candidate lists.
//
// Lookups never fail: when no candidate can be read and parsed, the embedded
// Go fonts serve as the fallback, so rendering always has a face to draw
// with.
package fonts

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/leona-app/storeshots"
)

// Builtin selects an embedded fallback font.
type Builtin int

const (
	// Regular is Go Regular.
	Regular Builtin = iota

	// Bold is Go Bold.
	Bold
)

// String returns the builtin name.
func (b Builtin) String() string {
	if b == Bold {
		return "go-bold"
	}
	return "go-regular"
}

func (b Builtin) data() []byte {
	if b == Bold {
		return gobold.TTF
	}
	return goregular.TTF
}

// Resolver loads and caches font sources. A Resolver is safe for
// concurrent use; the zero value is not, use NewResolver.
type Resolver struct {
	mu       sync.Mutex
	sources  map[string]*text.FontSource // nil entries record failed paths
	builtins map[Builtin]*text.FontSource
}

// NewResolver returns an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		sources:  make(map[string]*text.FontSource),
		builtins: make(map[Builtin]*text.FontSource),
	}
}

// Source returns the first candidate path that loads as a font, or the
// builtin fallback when none does. Failed paths are remembered and not
// retried.
func (r *Resolver) Source(candidates []string, fallback Builtin) *text.FontSource {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, path := range candidates {
		src, seen := r.sources[path]
		if !seen {
			var err error
			src, err = text.NewFontSourceFromFile(path)
			if err != nil {
				storeshots.Logger().Debug("font candidate unavailable", "path", path, "err", err)
				src = nil
			}
			r.sources[path] = src
		}
		if src != nil {
			return src
		}
	}

	storeshots.Logger().Debug("font fallback", "candidates", len(candidates), "builtin", fallback)
	return r.builtin(fallback)
}

// Face returns a face of the given size for the first loadable candidate.
func (r *Resolver) Face(candidates []string, fallback Builtin, size float64) text.Face {
	return r.Source(candidates, fallback).Face(size)
}

// builtin returns the cached embedded source. r.mu must be held.
func (r *Resolver) builtin(b Builtin) *text.FontSource {
	if src, ok := r.builtins[b]; ok {
		return src
	}
	src, err := text.NewFontSource(b.data())
	if err != nil {
		// The embedded fonts are valid TrueType; failure here is a build defect.
		panic(fmt.Sprintf("fonts: parse %s: %v", b, err))
	}
	r.builtins[b] = src
	return src
}

// Close releases every cached source. Faces obtained earlier become invalid.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for path, src := range r.sources {
		if src != nil {
			errs = append(errs, src.Close())
		}
		delete(r.sources, path)
	}
	for b, src := range r.builtins {
		errs = append(errs, src.Close())
		delete(r.builtins, b)
	}
	return errors.Join(errs...)
}
