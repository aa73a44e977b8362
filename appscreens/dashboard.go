package appscreens

import "image/color"

type quickAction struct {
	name  string
	color color.NRGBA
}

var quickActions = []quickAction{
	{"Breast", pink}, {"Formula", orange}, {"Pumped", purple}, {"Solids", green},
	{"Sleep", indigo}, {"Diaper", cyan}, {"Growth", blue}, {"Note", rgb(160, 160, 165)},
}

var dashboardFeed = append(recentActivities[:len(recentActivities):len(recentActivities)],
	activity{"Breastfeeding", "12 min • Right breast", "2:30 AM", pink},
	activity{"Sleep", "3h 15m • Night", "11:00 PM", indigo},
	activity{"Diaper Change", "Pee", "10:30 PM", cyan},
	activity{"Formula", "90 ml", "9:45 PM", orange},
)

const quickActionColumns = 4

func drawDashboard(p *page) error {
	p.gradient(stop(255, 240, 245), stop(252, 242, 255), stop(242, 238, 255))

	margin := p.S(80)
	y := p.headline(p.S(100), "Track Every", "Moment", "Feedings, sleep & diapers at a glance",
		textDark, pinkDark, textMuted)
	y += p.S(80)

	p.rrect(margin, y, p.w-margin, y+p.S(110), p.S(20), white)
	p.circle(margin+p.S(50), y+p.S(55), p.S(32), pinkLight)
	p.text("Emma", margin+p.S(95), y+p.S(22), p.bold(32), textDark)
	p.text("3 months, 12 days", margin+p.S(95), y+p.S(60), p.regular(22), textMuted)
	y += p.S(140)

	p.text("Today's Summary", margin, y, p.bold(30), textDark)
	y += p.S(50)
	y += p.summaryCards(margin, y, p.S(210), todaySummary) + p.S(35)

	p.text("Quick Actions", margin, y, p.bold(30), textDark)
	y += p.S(50)
	aw := (p.w - margin*2 - p.S(36)) / quickActionColumns
	ah := p.S(85)
	for i, a := range quickActions {
		row, col := i/quickActionColumns, i%quickActionColumns
		ax := margin + col*(aw+p.S(12))
		ay := y + row*(ah+p.S(12))
		p.rrect(ax, ay, ax+aw, ay+ah, p.S(16), alpha(a.color, 20))
		p.centerIn(a.name, ax, aw, ay+p.S(28), p.bold(22), a.color)
	}
	y += 2*(ah+p.S(12)) + p.S(30)

	p.text("Recent Activities", margin, y, p.bold(30), textDark)
	y += p.S(50)
	p.activityFeed(margin, y, dashboardFeed)
	return nil
}
