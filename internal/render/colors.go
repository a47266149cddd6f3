package render

import "github.com/gdamore/tcell/v2"

// Theme colours the frame around the map for one level.
type Theme struct {
	Name   string
	Border tcell.Color
	Accent tcell.Color
}

// Themes cycle with the level number.
var Themes = []Theme{
	{Name: "The Old Manor", Border: tcell.ColorSaddleBrown, Accent: tcell.ColorYellow},
	{Name: "Flooded Gardens", Border: tcell.ColorTeal, Accent: tcell.ColorAqua},
	{Name: "The Catacombs", Border: tcell.ColorGray, Accent: tcell.ColorSilver},
	{Name: "Clockwork Vaults", Border: tcell.ColorGoldenrod, Accent: tcell.ColorOrange},
	{Name: "The Last Archive", Border: tcell.ColorPurple, Accent: tcell.ColorFuchsia},
}

// ThemeFor returns the theme of a 1-based level.
func ThemeFor(level int) Theme {
	if level < 1 {
		level = 1
	}
	return Themes[(level-1)%len(Themes)]
}

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleHPFull  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHPEmpty = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	stylePanel   = tcell.StyleDefault.Background(tcell.ColorNavy)
)
