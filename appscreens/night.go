package appscreens

import "github.com/leona-app/storeshots"

var tonight = []stat{
	{"6h 42m", "Total sleep", indigo},
	{"2", "Awakenings", purple},
	{"3h 15m", "Longest stretch", blue},
}

var (
	nightTitle    = rgb(220, 220, 245)
	nightAccent   = rgb(160, 160, 230)
	nightCaption  = rgb(130, 130, 175)
	nightCard     = rgb(30, 30, 60)
	nightLabel    = rgb(120, 120, 165)
	nightGlow     = rgb(180, 180, 255)
	nightMoon     = rgb(220, 220, 240)
	nightTagline  = rgb(110, 110, 155)
	nightFootnote = rgb(90, 90, 130)
)

func drawNightMode(p *page) error {
	p.gradient(stop(12, 12, 35), stop(25, 20, 55))

	for _, st := range storeshots.Stars(p.w, p.h, storeshots.StarCount, p.s) {
		storeshots.FillCircle(p.dc, float64(st.X), float64(st.Y), st.R, st.Color.NRGBA())
	}

	y := p.headline(p.S(140), "Sweet Dreams", "Mode", "Ambient night sky while baby sleeps",
		nightTitle, nightAccent, nightCaption)
	y += p.S(130)

	mx, my := p.w/2, y+p.S(80)
	p.moon(mx, my)
	y = my + p.S(130)

	p.center("02:34:17", y, p.regular(110), nightTitle)
	y += p.S(135)
	p.center("Sleeping peacefully...", y, p.regular(32), rgb(140, 140, 190))
	y += p.S(100)

	cardW, cardH := p.S(550), p.S(130)
	cx := (p.w - cardW) / 2
	p.rrect(cx, y, cx+cardW, y+cardH, p.S(22), nightCard)
	p.outline(cx, y, cx+cardW, y+cardH, p.S(22), rgb(60, 60, 100))
	p.text("Fell asleep at", cx+p.S(30), y+p.S(18), p.regular(22), nightLabel)
	p.text("9:26 PM", cx+p.S(30), y+p.S(58), p.bold(36), rgb(210, 210, 240))
	p.right("Night sleep", cx+cardW-p.S(30), y+p.S(18), p.regular(22), nightLabel)
	p.right("Since 2h 34m", cx+cardW-p.S(30), y+p.S(58), p.bold(28), rgb(180, 180, 215))
	y += p.S(175)

	btnW := p.S(420)
	bx := (p.w - btnW) / 2
	p.rrect(bx, y, bx+btnW, y+p.S(80), p.S(40), indigo)
	p.center("Wake Up", y+p.S(20), p.bold(30), white)
	y += p.S(145)

	p.center("Tonight's Summary", y, p.bold(30), rgb(190, 190, 220))
	y += p.S(60)
	rowW := p.S(450)
	for _, it := range tonight {
		if y+p.S(80) > p.h-p.S(150) {
			break
		}
		ix := (p.w - rowW) / 2
		p.rrect(ix, y, ix+rowW, y+p.S(70), p.S(16), nightCard)
		p.outline(ix, y, ix+rowW, y+p.S(70), p.S(16), rgb(50, 50, 80))
		p.text(it.label, ix+p.S(20), y+p.S(20), p.regular(24), rgb(140, 140, 180))
		p.right(it.value, ix+rowW-p.S(20), y+p.S(18), p.bold(28), it.color)
		y += p.S(85)
	}
	y += p.S(30)

	p.center("The app transforms into a calming", y, p.regular(26), nightTagline)
	y += p.S(40)
	p.center("night sky while your baby sleeps", y, p.regular(26), nightTagline)
	y += p.S(65)
	p.center("Screen dims automatically • No blue light", y, p.regular(22), nightFootnote)
	return nil
}

// moon draws a crescent centred on (x, y) over a soft glow of stacked
// translucent rings.
func (p *page) moon(x, y int) {
	step := max(p.S(4), 1)
	div := max(p.S(5), 1)
	for r := p.S(140); r > p.S(20); r -= step {
		a := max(2, 30-r/div)
		p.circle(x, y, r, alpha(nightGlow, uint8(a)))
	}
	p.circle(x, y, p.S(60), nightMoon)
	p.circle(x+p.S(20), y-p.S(14), p.S(52), night)
}
