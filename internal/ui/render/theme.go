package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	BorderFg    tcell.Color
	TitleFg     tcell.Color
	DirectoryFg tcell.Color
	WatchedFg   tcell.Color
	FileFg      tcell.Color
	MarkerFg    tcell.Color
	StatusFg    tcell.Color
	HelpBg      tcell.Color
	HelpFg      tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		BorderFg:    tcell.ColorDefault,
		TitleFg:     tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		WatchedFg:   tcell.ColorGreen,
		FileFg:      tcell.ColorDefault,
		MarkerFg:    tcell.ColorWhite,
		StatusFg:    tcell.ColorRed,
		HelpBg:      tcell.Color234,
		HelpFg:      tcell.Color252,
	}
}
