package appscreens

import (
	"image/color"

	"github.com/leona-app/storeshots"
)

// App palette.
var (
	pink      = rgb(220, 132, 163)
	pinkDark  = rgb(177, 92, 122)
	pinkLight = rgb(242, 200, 216)
	blue      = rgb(102, 153, 217)
	purple    = rgb(153, 102, 204)
	orange    = rgb(242, 153, 77)
	green     = rgb(87, 179, 135)
	cyan      = rgb(80, 190, 210)
	indigo    = rgb(100, 100, 200)
	white     = rgb(255, 255, 255)
	textDark  = rgb(25, 25, 30)
	textMuted = rgb(130, 130, 140)
	night     = rgb(18, 18, 40)
)

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// alpha returns c with straight alpha a.
func alpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// stop returns a gradient stop.
func stop(r, g, b uint8) storeshots.RGB {
	return storeshots.RGB{R: r, G: g, B: b}
}
