package config

import (
	"slices"

	"github.com/leona-app/storeshots"
	"github.com/leona-app/storeshots/appscreens"
	"github.com/leona-app/storeshots/fonts"
)

// Default returns the stock batch: six marketing screens at the four App
// Store canvas classes, and every app screen at iPhone and iPad size, all
// under ./Screenshots.
func Default() *Config {
	return &Config{
		BaseDir: "Screenshots",
		Workers: 1,
		Marketing: Marketing{
			HeadlineFonts: slices.Clone(fonts.HeadlineCandidates),
			SubtitleFonts: slices.Clone(fonts.SubtitleCandidates),
			Targets: []MarketingTarget{
				{Name: "iPhone 6.7", Device: storeshots.Phone, Input: "iPhone", Output: "Marketing_iPhone_6.7", Width: 1284, Height: 2778},
				{Name: "iPhone 6.5", Device: storeshots.Phone, Input: "iPhone", Output: "Marketing_iPhone_6.5", Width: 1242, Height: 2688},
				{Name: "iPad 13", Device: storeshots.Tablet, Input: "iPad", Output: "Marketing_iPad_13", Width: 2048, Height: 2732},
				{Name: "iPad 12.9", Device: storeshots.Tablet, Input: "iPad", Output: "Marketing_iPad_12.9", Width: 2064, Height: 2752},
			},
			Screens: defaultScreens(),
		},
		AppScreens: AppScreens{
			Icon:  "../Leona/Resources/Assets.xcassets/AppIcon.appiconset/AppIcon.png",
			Shots: slices.Clone(appscreens.AllShots),
			Targets: []AppTarget{
				{Name: "iPhone", Output: "iPhone", Width: 1290, Height: 2796},
				{Name: "iPad", Output: "iPad", Width: 2048, Height: 2732},
			},
		},
	}
}

func defaultScreens() []Screen {
	return []Screen{
		{
			File:     "01_Onboarding.png",
			Out:      "01_Welcome.png",
			Headline: "Your baby's\nfirst companion",
			Subtitle: "Every feeding, every nap, every smile",
			Colors:   []storeshots.RGB{rgb(255, 230, 240), rgb(255, 190, 215), rgb(250, 150, 190)},
			Tilt:     3,
		},
		{
			File:     "02_Dashboard.png",
			Out:      "02_Dashboard.png",
			Headline: "Everything you\nneed, one tap away",
			Subtitle: "Feedings · Sleep · Diapers · Notes",
			Colors:   []storeshots.RGB{rgb(220, 235, 255), rgb(180, 210, 255), rgb(140, 175, 240)},
			Tilt:     -2.5,
		},
		{
			File:     "03_Statistics.png",
			Out:      "03_Statistics.png",
			Headline: "Understand your\nbaby's rhythm",
			Subtitle: "Beautiful charts that make sense",
			Colors:   []storeshots.RGB{rgb(220, 245, 225), rgb(170, 225, 185), rgb(120, 200, 150)},
			Tilt:     3,
		},
		{
			File:     "04_Growth.png",
			Out:      "04_Growth.png",
			Headline: "Watch them\ngrow, every day",
			Subtitle: "WHO growth charts included",
			Colors:   []storeshots.RGB{rgb(255, 240, 220), rgb(255, 215, 175), rgb(250, 190, 130)},
			Tilt:     -3,
		},
		{
			File:     "05_Health.png",
			Out:      "05_Health.png",
			Headline: "Peace of mind\nfor every parent",
			Subtitle: "Vaccines, illnesses, medications",
			Colors:   []storeshots.RGB{rgb(240, 230, 255), rgb(215, 195, 250), rgb(185, 160, 235)},
			Tilt:     2.5,
		},
		{
			File:     "06_Settings.png",
			Out:      "06_Settings.png",
			Headline: "Made with love,\njust for you",
			Subtitle: "Themes · iCloud sync · Your way",
			Colors:   []storeshots.RGB{rgb(225, 245, 250), rgb(185, 225, 240), rgb(145, 200, 225)},
			Tilt:     -2.5,
		},
	}
}

func rgb(r, g, b uint8) storeshots.RGB {
	return storeshots.RGB{R: r, G: g, B: b}
}
