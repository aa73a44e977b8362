package appscreens

import "image/color"

// activity is one row of an activity feed.
type activity struct {
	name, detail, time string
	color              color.NRGBA
}

// stat is a value with a caption, as shown on summary cards.
type stat struct {
	value, label string
	color        color.NRGBA
}

var recentActivities = []activity{
	{"Breastfeeding", "15 min • Left breast", "10:30 AM", pink},
	{"Formula", "120 ml", "9:15 AM", orange},
	{"Sleep", "2h 10m • Nap", "7:00 AM", indigo},
	{"Diaper Change", "Pee + Poop", "6:45 AM", cyan},
	{"Mom's Milk", "90 ml", "5:30 AM", purple},
	{"Solid Food", "Banana, 45g", "4:00 AM", green},
}

var todaySummary = []stat{
	{"5", "Feedings", orange},
	{"9h 20m", "Sleep", indigo},
	{"6", "Diapers", cyan},
}

// activityRow draws a feed row of height rh at y and returns rh.
func (p *page) activityRow(margin, y, rh int, a activity) int {
	p.rrect(margin, y, p.w-margin, y+rh-p.S(8), p.S(16), white)
	cx, cy := margin+p.S(45), y+rh/2-p.S(4)
	p.circle(cx, cy, p.S(20), alpha(a.color, 45))
	p.circle(cx, cy, p.S(11), a.color)
	p.text(a.name, margin+p.S(82), y+p.S(18), p.bold(28), textDark)
	p.text(a.detail, margin+p.S(82), y+p.S(52), p.regular(22), textMuted)
	p.right(a.time, p.w-margin-p.S(20), y+p.S(32), p.regular(22), textMuted)
	return rh
}

// activityFeed draws rows from y down while they fit above the bottom
// margin and returns the y after the last row.
func (p *page) activityFeed(margin, y int, acts []activity) int {
	rh := p.S(95)
	for _, a := range acts {
		if y+rh > p.h-p.S(20) {
			break
		}
		y += p.activityRow(margin, y, rh, a)
	}
	return y
}

// summaryCards draws three stat cards side by side and returns their
// height.
func (p *page) summaryCards(margin, y, ch int, items []stat) int {
	cw := (p.w - margin*2 - p.S(40)) / 3
	for j, it := range items {
		cx := margin + j*(cw+p.S(20))
		p.rrect(cx, y, cx+cw, y+ch, p.S(24), white)
		p.circle(cx+cw/2, y+p.S(55), p.S(30), alpha(it.color, 40))
		p.circle(cx+cw/2, y+p.S(55), p.S(18), it.color)
		p.centerIn(it.value, cx, cw, y+p.S(105), p.bold(46), textDark)
		p.centerIn(it.label, cx, cw, y+p.S(160), p.regular(22), textMuted)
	}
	return ch
}

// segmented draws a segmented control with the selected segment raised.
// The selected label uses accent; the others are muted.
func (p *page) segmented(margin, y, h int, labels []string, selected int, accent, track color.NRGBA, size float64, textDY int) {
	sw := p.w - margin*2
	p.rrect(margin, y, margin+sw, y+h, p.S(14), track)
	tw := sw / len(labels)
	inset := p.S(4)
	for j, l := range labels {
		tx := margin + j*tw
		f, c := p.regular(size), textMuted
		if j == selected {
			p.rrect(tx+inset, y+inset, tx+tw-inset, y+h-inset, p.S(12), white)
			f, c = p.bold(size), accent
		}
		p.centerIn(l, tx, tw, y+textDY, f, c)
	}
}

// tile draws a tinted card with a caption above a large value.
func (p *page) tile(x, y, w, h int, label, value string, c color.NRGBA) {
	p.rrect(x, y, x+w, y+h, p.S(16), alpha(c, 15))
	p.text(label, x+p.S(15), y+p.S(15), p.regular(20), textMuted)
	p.text(value, x+p.S(15), y+p.S(55), p.bold(34), c)
}

// headline draws the two-line marketing title (the second line in accent)
// with its caption, starting at y, and returns the y below the caption.
func (p *page) headline(y int, first, second, caption string, firstColor, accent, captionColor color.NRGBA) int {
	p.center(first, y, p.bold(78), firstColor)
	y += p.S(95)
	p.center(second, y, p.bold(78), accent)
	y += p.S(100)
	p.center(caption, y, p.regular(32), captionColor)
	return y
}
