package appscreens

import "image/color"

type partner struct {
	label      string
	badge      color.NRGBA
	badgeLabel color.NRGBA
}

var partners = []partner{
	{"Mom", pink, pinkDark},
	{"Dad", blue, rgb(50, 80, 160)},
}

var (
	partnerSummary = []stat{{"5", "Meals", orange}, {"8h", "Sleep", indigo}, {"4", "Diapers", cyan}}
	partnerFeed    = []activity{
		{"Breastfeed", "15 min • Left", "10:30 AM", pink},
		{"Formula", "120 ml", "9:15 AM", orange},
		{"Sleep", "2h 10m", "7:00 AM", indigo},
		{"Diaper", "Pee + Poop", "6:45 AM", cyan},
		{"Mom's Milk", "90 ml", "5:30 AM", purple},
		{"Solid Food", "Banana", "4:00 AM", green},
	}
	setupSteps = []stat{
		{"1", "Enable iCloud sync in Settings", blue},
		{"2", "Invite your partner from the Share menu", purple},
		{"3", "Both see the same data in real-time", green},
	}
	miniCard = rgb(248, 248, 252)
)

func drawSharing(p *page) error {
	p.gradient(stop(232, 240, 255), stop(242, 238, 252), stop(248, 240, 250))

	margin := p.S(80)
	y := p.headline(p.S(100), "Share with", "Your Partner", "Both parents, always in sync via iCloud",
		textDark, blue, textMuted)
	y += p.S(80)

	gap := p.S(40)
	scrW := (p.w - margin*2 - gap) / 2
	scrH := p.S(850)
	for i, pt := range partners {
		p.partnerScreen(margin+i*(scrW+gap), y, scrW, scrH, pt)
	}

	sx, sy := p.w/2, y+scrH/2
	p.circle(sx, sy, p.S(38), alpha(blue, 70))
	p.circle(sx, sy, p.S(26), alpha(blue, 200))
	p.center("⇄", sy-p.S(15), p.bold(30), white)

	y += scrH + p.S(40)
	p.center("Same data, real-time sync", y, p.bold(34), textDark)
	y += p.S(50)
	p.center("No account needed • Just iCloud", y, p.regular(28), textMuted)
	y += p.S(65)

	p.rrect(margin, y, p.w-margin, y+p.S(85), p.S(16), white)
	p.text("Your data stays private", margin+p.S(25), y+p.S(12), p.bold(26), textDark)
	p.text("Stored only in your personal iCloud • No third parties", margin+p.S(25), y+p.S(48), p.regular(20), textMuted)
	y += p.S(110)

	if y+p.S(250) >= p.h-p.S(20) {
		return nil
	}
	p.center("How it works", y, p.bold(30), textDark)
	y += p.S(55)
	for _, st := range setupSteps {
		if y+p.S(65) > p.h-p.S(20) {
			break
		}
		p.rrect(margin, y, p.w-margin, y+p.S(60), p.S(14), alpha(st.color, 12))
		p.circle(margin+p.S(35), y+p.S(30), p.S(18), st.color)
		nf := p.bold(22)
		p.text(st.value, margin+p.S(35)-p.textWidth(nf, st.value)/2, y+p.S(18), nf, white)
		p.text(st.label, margin+p.S(70), y+p.S(17), p.regular(24), textDark)
		y += p.S(72)
	}
	return nil
}

// partnerScreen draws a miniature home screen card for one parent.
func (p *page) partnerScreen(x, y, w, h int, pt partner) {
	p.rrect(x, y, x+w, y+h, p.S(24), white)

	sy := y + p.S(20)
	p.text("Home", x+p.S(20), sy, p.bold(24), textDark)
	bw, bh := p.S(72), p.S(28)
	bx := x + w - bw - p.S(12)
	p.rrect(bx, sy, x+w-p.S(12), sy+bh, p.S(14), alpha(pt.badge, 35))
	p.centerIn(pt.label, bx, bw, sy+p.S(4), p.bold(16), pt.badgeLabel)
	sy += p.S(50)

	mcw := (w - p.S(40)) / 3
	mch := p.S(120)
	for j, st := range partnerSummary {
		mx := x + p.S(12) + j*(mcw+p.S(8))
		p.rrect(mx, sy, mx+mcw, sy+mch, p.S(12), miniCard)
		p.circle(mx+mcw/2, sy+p.S(28), p.S(14), st.color)
		p.centerIn(st.value, mx, mcw, sy+p.S(52), p.bold(24), textDark)
		p.centerIn(st.label, mx, mcw, sy+p.S(82), p.regular(14), textMuted)
	}
	sy += mch + p.S(15)

	rh := p.S(65)
	for _, a := range partnerFeed {
		if sy+rh > y+h-p.S(10) {
			break
		}
		p.rrect(x+p.S(12), sy, x+w-p.S(12), sy+rh-p.S(5), p.S(10), miniCard)
		p.circle(x+p.S(30), sy+rh/2-p.S(3), p.S(9), a.color)
		p.text(a.name, x+p.S(48), sy+p.S(8), p.bold(18), textDark)
		p.text(a.detail, x+p.S(48), sy+p.S(32), p.regular(14), textMuted)
		p.right(a.time, x+w-p.S(20), sy+p.S(16), p.regular(14), textMuted)
		sy += rh
	}
}
