package appscreens

import (
	"fmt"
	"image/color"

	"github.com/leona-app/storeshots"
)

type measurement struct {
	value, label string
	color        color.NRGBA
	percentile   string
}

var latestMeasurements = []measurement{
	{"6.2 kg", "Weight", blue, "P62"},
	{"64 cm", "Height", green, "P55"},
	{"42 cm", "Head", purple, "P48"},
}

var measurementHistory = [][4]string{
	{"Today", "6.2 kg", "64 cm", "42 cm"},
	{"2 weeks ago", "5.9 kg", "63 cm", "41.5 cm"},
	{"1 month ago", "5.5 kg", "61.5 cm", "41 cm"},
	{"2 months ago", "4.8 kg", "58 cm", "40 cm"},
}

var (
	measurementHeaders = [4]string{"Date", "Weight", "Height", "Head"}
	measurementColors  = [4]color.NRGBA{textDark, blue, green, purple}
)

func drawGrowth(p *page) error {
	p.gradient(stop(235, 250, 242), stop(240, 248, 255), stop(235, 240, 255))

	margin := p.S(80)
	y := p.headline(p.S(100), "Watch Them", "Grow", "WHO percentile charts built right in",
		textDark, green, textMuted)
	y += p.S(80)

	pw := (p.w - margin*2 - p.S(30)) / 3
	ph := p.S(155)
	for j, m := range latestMeasurements {
		px := margin + j*(pw+p.S(15))
		p.rrect(px, y, px+pw, y+ph, p.S(20), white)
		p.text(m.label, px+p.S(18), y+p.S(14), p.regular(22), textMuted)
		p.text(m.value, px+p.S(18), y+p.S(44), p.bold(36), m.color)

		bw, bh := p.S(65), p.S(28)
		bx, by := px+p.S(18), y+p.S(100)
		p.rrect(bx, by, bx+bw, by+bh, p.S(14), alpha(green, 30))
		p.centerIn(m.percentile, bx, bw, by+p.S(3), p.bold(18), green)
	}
	y += ph + p.S(30)

	segH := p.S(52)
	p.segmented(margin, y, segH, []string{"Weight", "Height", "Head"}, 0, blue, rgb(230, 235, 240), 24, p.S(12))
	y += segH + p.S(30)

	region := storeshots.ChartRegion{
		X:      margin + p.S(60),
		Y:      y,
		Width:  p.w - margin*2 - p.S(80),
		Height: p.S(650),
	}
	chart := storeshots.NewGrowthChart(region, p.s)
	chart.LabelFace = p.regular(18)
	chart.TitleFace = p.regular(20)
	chart.PercentileFace = p.regular(16)
	if _, err := chart.Draw(p.dc); err != nil {
		return fmt.Errorf("growth chart: %w", err)
	}
	y += region.Height + p.S(65)

	p.circle(margin+p.S(15), y+p.S(10), p.S(8), blue)
	p.text("Emma", margin+p.S(35), y-p.S(2), p.bold(24), textDark)
	p.line(margin+p.S(140), y+p.S(10), margin+p.S(190), y+p.S(10), green, 2)
	p.text("P50 median", margin+p.S(205), y-p.S(2), p.regular(22), textMuted)
	y += p.S(45)
	p.rrect(margin, y, margin+p.S(28), y+p.S(20), p.S(4), alpha(green, 30))
	p.text("P3–P97 normal range", margin+p.S(42), y-p.S(2), p.regular(22), textMuted)
	y += p.S(60)

	p.text("Recent Measurements", margin, y, p.bold(30), textDark)
	y += p.S(50)
	colW := (p.w - margin*2) / 4
	for j, h := range measurementHeaders {
		p.text(h, margin+j*colW+p.S(10), y, p.bold(22), textMuted)
	}
	y += p.S(40)
	p.line(margin, y, p.w-margin, y, rgb(220, 220, 225), 1)
	y += p.S(10)
	for _, row := range measurementHistory {
		if y+p.S(50) > p.h-p.S(20) {
			break
		}
		p.rrect(margin, y, p.w-margin, y+p.S(48), p.S(10), white)
		for j, v := range row {
			p.text(v, margin+j*colW+p.S(10), y+p.S(12), p.regular(22), measurementColors[j])
		}
		y += p.S(55)
	}
	return nil
}
