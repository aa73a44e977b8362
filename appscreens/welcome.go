package appscreens

import "image/color"

type feature struct {
	title, subtitle string
	color           color.NRGBA
}

var welcomeFeatures = []feature{
	{"Track Sleep Patterns", "Know exactly when and how long baby sleeps", indigo},
	{"Monitor Every Feeding", "Breast, formula, solids — all in one place", orange},
	{"Growth Charts", "WHO percentiles built right in", green},
	{"Share with Partner", "Real-time sync via iCloud", blue},
}

var welcomeFeed = append(recentActivities[:len(recentActivities):len(recentActivities)],
	activity{"Note", "First smile today!", "3:15 AM", textMuted})

func drawWelcome(p *page) error {
	p.gradient(stop(252, 235, 243), stop(240, 235, 252), stop(248, 238, 248))

	p.ellipse(p.S(-80), p.S(100), p.S(350), p.S(530), alpha(pinkLight, 50))
	p.ellipse(p.S(900), p.S(150), p.S(1450), p.S(700), alpha(blue, 25))
	p.ellipse(p.S(400), p.S(2200), p.S(1100), p.S(2900), alpha(purple, 18))

	margin := p.S(80)
	icon := p.S(200)
	p.pasteIcon((p.w-icon)/2, p.S(200), icon)

	p.center("Leona", p.S(440), p.bold(90), pinkDark)
	p.center("The Parents' Companion", p.S(555), p.regular(38), textMuted)

	cardH, gap := p.S(115), p.S(18)
	for i, f := range welcomeFeatures {
		cy := p.S(680) + i*(cardH+gap)
		p.rrect(margin, cy, p.w-margin, cy+cardH, p.S(22), white)
		p.rrect(margin, cy+p.S(10), margin+p.S(7), cy+cardH-p.S(10), p.S(3), f.color)
		p.circle(margin+p.S(52), cy+cardH/2, p.S(26), alpha(f.color, 30))
		p.circle(margin+p.S(52), cy+cardH/2, p.S(16), f.color)
		p.text(f.title, margin+p.S(95), cy+p.S(22), p.bold(30), textDark)
		p.text(f.subtitle, margin+p.S(95), cy+p.S(62), p.regular(22), textMuted)
	}

	y := p.S(1310)
	p.center("Your daily dashboard", y, p.bold(34), textDark)
	y += p.S(65)
	y += p.summaryCards(margin, y, p.S(190), todaySummary) + p.S(30)
	p.activityFeed(margin, y, welcomeFeed)
	return nil
}
