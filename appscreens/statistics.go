package appscreens

import (
	"image/color"

	"github.com/leona-app/storeshots"
)

var feedingStats = []stat{
	{"28", "Total Feedings", orange},
	{"12", "Breastfeeding", pink},
	{"1.4 L", "Formula Total", orange},
	{"2h 45m", "Avg. Interval", blue},
}

var (
	weekDays      = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	segmentColors = []color.NRGBA{orange, pink, purple, green}
	feedingLegend = []stat{{"", "Formula", orange}, {"", "Breast", pink}, {"", "Pumped", purple}, {"", "Solids", green}}

	sleepOverview = []stat{{"8h 45m", "Avg. Night", indigo}, {"2h 30m", "Avg. Naps", blue}, {"78h 15m", "Total", purple}}
	diaperCount   = []stat{{"24", "Wet", cyan}, {"14", "Dirty", orange}, {"8", "Mixed", green}}
)

func drawStatistics(p *page) error {
	p.gradient(stop(255, 244, 235), stop(255, 248, 245), stop(240, 236, 255))

	margin := p.S(80)
	y := p.headline(p.S(100), "Insightful", "Statistics", "Patterns and trends at your fingertips",
		textDark, orange, textMuted)
	y += p.S(75)

	segH := p.S(50)
	track := rgb(240, 235, 230)
	p.segmented(margin, y, segH, []string{"Today", "3 Days", "7 Days", "30 Days"}, 2, orange, track, 22, p.S(13))
	y += segH + p.S(25)
	p.segmented(margin, y, segH, []string{"Feeding", "Sleep", "Diaper"}, 0, orange, track, 22, p.S(13))
	y += segH + p.S(30)

	cardW := (p.w - margin*2 - p.S(20)) / 2
	cardH, gap := p.S(165), p.S(20)
	for i, st := range feedingStats {
		cx := margin + (i%2)*(cardW+gap)
		cy := y + (i/2)*(cardH+gap)
		p.rrect(cx, cy, cx+cardW, cy+cardH, p.S(20), white)
		p.circle(cx+p.S(35), cy+p.S(35), p.S(18), alpha(st.color, 35))
		p.circle(cx+p.S(35), cy+p.S(35), p.S(10), st.color)
		p.text(st.value, cx+p.S(25), cy+p.S(60), p.bold(40), textDark)
		p.text(st.label, cx+p.S(25), cy+p.S(115), p.regular(22), textMuted)
	}
	y += 2*(cardH+gap) + p.S(20)

	p.text("Weekly Feeding Breakdown", margin, y, p.bold(28), textDark)
	y += p.S(45)
	y = p.weeklyBars(margin, y)

	lx := margin
	for _, l := range feedingLegend {
		p.circle(lx+p.S(10), y+p.S(10), p.S(8), l.color)
		p.text(l.label, lx+p.S(25), y-p.S(2), p.regular(20), textMuted)
		lx += p.S(170)
	}
	y += p.S(55)

	tw := (p.w - margin*2 - p.S(30)) / 3
	th := p.S(120)
	p.text("Sleep Overview (7 days)", margin, y, p.bold(28), textDark)
	y += p.S(45)
	for j, st := range sleepOverview {
		p.tile(margin+j*(tw+p.S(15)), y, tw, th, st.label, st.value, st.color)
	}
	y += th + p.S(30)

	p.text("Diaper Count (7 days)", margin, y, p.bold(28), textDark)
	y += p.S(45)
	if y+th > p.h-p.S(20) {
		return nil
	}
	for j, st := range diaperCount {
		p.tile(margin+j*(tw+p.S(15)), y, tw, th, st.label, st.value, st.color)
	}
	return nil
}

// weeklyBars draws the stacked bar chart card at y and returns the y below
// it.
func (p *page) weeklyBars(margin, y int) int {
	ch := p.S(380)
	p.rrect(margin, y, p.w-margin, y+ch, p.S(20), white)
	for i := 0; i < 5; i++ {
		gy := y + p.S(25) + i*((ch-p.S(75))/4)
		p.line(margin+p.S(20), gy, p.w-margin-p.S(20), gy, rgb(242, 242, 242), 1)
	}

	barW := p.S(50)
	innerW := p.w - margin*2 - p.S(40)
	barGap := (innerW - len(weekDays)*barW) / (len(weekDays) + 1)
	for d, segs := range storeshots.WeeklyBreakdown(len(weekDays)) {
		bx := margin + p.S(20) + barGap + d*(barW+barGap)
		bottom := y + ch - p.S(50)
		for i, v := range segs {
			sh := int(v * p.s)
			if sh <= 0 {
				continue
			}
			top := bottom - sh
			if i == len(segs)-1 {
				p.rrect(bx, top, bx+barW, bottom, p.S(6), segmentColors[i])
			} else {
				p.box(bx, top, bx+barW, bottom, segmentColors[i])
			}
			bottom = top
		}
		p.centerIn(weekDays[d], bx, barW, y+ch-p.S(32), p.regular(16), textMuted)
	}
	return y + ch + p.S(25)
}
