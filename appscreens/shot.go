package appscreens

import (
	"fmt"
	"strings"
)

// Shot identifies one synthetic app screen.
type Shot int

const (
	Welcome Shot = iota
	Dashboard
	Growth
	Statistics
	NightMode
	Sharing
)

// AllShots lists every screen in output order.
var AllShots = []Shot{Welcome, Dashboard, Growth, Statistics, NightMode, Sharing}

var shotNames = map[Shot]string{
	Welcome:    "01_Welcome",
	Dashboard:  "02_Dashboard",
	Growth:     "03_Growth",
	Statistics: "04_Statistics",
	NightMode:  "05_NightMode",
	Sharing:    "06_Sharing",
}

// String returns the output base name of the screen, e.g. "03_Growth".
func (s Shot) String() string {
	if n, ok := shotNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shot(%d)", int(s))
}

// Filename returns the PNG file name the screen is written to.
func (s Shot) Filename() string {
	return s.String() + ".png"
}

// ParseShot parses a screen name. It accepts the output base name
// ("05_NightMode") or the bare name in any case ("nightmode").
func ParseShot(name string) (Shot, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range AllShots {
		full := strings.ToLower(shotNames[s])
		if key == full || key == full[3:] {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShot, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shot) MarshalText() ([]byte, error) {
	if _, ok := shotNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShot, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shot) UnmarshalText(b []byte) error {
	v, err := ParseShot(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Shot) draw() func(*page) error {
	switch s {
	case Welcome:
		return drawWelcome
	case Dashboard:
		return drawDashboard
	case Growth:
		return drawGrowth
	case Statistics:
		return drawStatistics
	case NightMode:
		return drawNightMode
	case Sharing:
		return drawSharing
	}
	return nil
}
