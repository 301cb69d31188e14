package core

// Color represents a foreground or background color for a surface cell.
// Uses ANSI 256-color codes for terminal compatibility, except for the
// camp backgrounds which carry exact RGB values.
type Color uint8

// Predefined colors for widgets and text.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown

	// Backgrounds painted by the frame loop and the start screen.
	ColorBgDark  // (57, 50, 36)
	ColorBgLight // (206, 194, 168)
	ColorBgTitle
)
