package fonts

import "fmt"

// systemFontDir is where macOS keeps its bundled fonts.
const systemFontDir = "/System/Library/Fonts"

// SystemCandidates returns the UI font lookup order for a size: SF Pro
// Display above 24 px and SF Pro Text otherwise, under both file naming
// schemes, then Arial.
func SystemCandidates(size int, bold bool) []string {
	optical := "Text"
	if size > 24 {
		optical = "Display"
	}
	weight := "Regular"
	arial := systemFontDir + "/Supplemental/Arial.ttf"
	if bold {
		weight = "Bold"
		arial = systemFontDir + "/Supplemental/Arial Bold.ttf"
	}
	return []string{
		fmt.Sprintf("%s/SFPro%s-%s.otf", systemFontDir, optical, weight),
		fmt.Sprintf("%s/SF-Pro%s-%s.otf", systemFontDir, optical, weight),
		arial,
	}
}

// Marketing font candidates.
var (
	HeadlineCandidates = []string{systemFontDir + "/Supplemental/Arial Rounded Bold.ttf"}
	SubtitleCandidates = []string{systemFontDir + "/Avenir Next.ttc"}
)
