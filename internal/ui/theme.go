package ui

import "github.com/vovakirdan/tui-clangen/internal/core"

// Theme holds the colors widgets draw with.
type Theme struct {
	Dark       bool
	Background core.Color
	Text       core.Color
	Muted      core.Color
	Accent     core.Color
	Focus      core.Color
	Error      core.Color
	Debug      core.Color
}

// LightTheme matches the default parchment background.
func LightTheme() Theme {
	return Theme{
		Background: core.ColorBgLight,
		Text:       core.ColorBlack,
		Muted:      core.ColorBrown,
		Accent:     core.ColorBlue,
		Focus:      core.ColorRed,
		Error:      core.ColorRed,
		Debug:      core.ColorMagenta,
	}
}

// DarkTheme is used when dark mode is enabled in settings.
func DarkTheme() Theme {
	return Theme{
		Dark:       true,
		Background: core.ColorBgDark,
		Text:       core.ColorBrightWhite,
		Muted:      core.ColorGray,
		Accent:     core.ColorCyan,
		Focus:      core.ColorBrightYellow,
		Error:      core.ColorBrightRed,
		Debug:      core.ColorMagenta,
	}
}

// ThemeFor picks the theme matching the dark-mode setting.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
