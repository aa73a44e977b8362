package marketing

import (
	"github.com/leona-app/storeshots"
)

// Screen describes one marketing image.
type Screen struct {
	File     string           // screenshot file name within the target input dir
	Out      string           // output file name within the target output dir
	Headline string           // may contain "\n" line breaks
	Subtitle string
	Colors   []storeshots.RGB // gradient stops, top to bottom; Colors[1] tints the glows
	Tilt     float64          // counter-clockwise rotation in degrees
}

// Target is a canvas class rendered for every screen.
type Target struct {
	Name      string
	Device    storeshots.DeviceKind
	InputDir  string
	OutputDir string
	Width     int
	Height    int
}

// Batch is the full set of images to render: every screen for every target.
type Batch struct {
	Targets []Target
	Screens []Screen
}

// Result reports the outcome of one screen and target pair.
type Result struct {
	Target  string
	Screen  string
	Path    string // written file, empty when skipped
	Bytes   int64
	Skipped bool
}

// Summary aggregates the results of a batch in target-major order.
type Summary struct {
	Results []Result
	Written int
	Skipped int
	Bytes   int64
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	if r.Skipped {
		s.Skipped++
		return
	}
	s.Written++
	s.Bytes += r.Bytes
}
