package appscreens

import "errors"

// ErrUnknownShot is returned for a Shot value or name that names no screen.
var ErrUnknownShot = errors.New("appscreens: unknown shot")

// Target is one output size class.
type Target struct {
	Name      string
	OutputDir string
	Width     int
	Height    int
}

// Result describes one written screen.
type Result struct {
	Target string
	Shot   Shot
	Path   string
	Bytes  int64
}

// Summary aggregates the results of a batch.
type Summary struct {
	Results []Result
	Written int
	Bytes   int64
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	s.Written++
	s.Bytes += r.Bytes
}
