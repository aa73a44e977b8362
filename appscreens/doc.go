// Package appscreens renders synthetic full-bleed app screenshots: a
// marketing headline at the top and a simulated app UI filling the rest of
// the canvas.
//
// Six screens are available (see [Shot]). Layouts are authored for a
// 1290 px wide canvas and scaled proportionally to the target width, so the
// same screen renders at iPhone and iPad sizes:
//
//	g := appscreens.New(appscreens.WithIcon("AppIcon.png"))
//	defer g.Close()
//	img, err := g.Render(appscreens.Growth, 1290, 2796)
//
// Rendering is deterministic. Decorative scatter (night-sky stars, weekly
// bar heights) comes from PRNGs with a fixed seed.
package appscreens
