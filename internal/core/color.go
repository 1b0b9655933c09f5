package core

// Color is a palette index for a screen cell.
// The platform maps each index to an ANSI 256-color code.
type Color uint8

// Palette used by the world, widgets and HUD.
const (
	ColorDefault Color = iota
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
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Semantic aliases.
const (
	ColorWall   = ColorGray
	ColorFloor  = ColorDefault
	ColorCoin   = ColorBrightYellow
	ColorHazard = ColorBrightRed
	ColorExit   = ColorBrightGreen
	ColorPlayer = ColorBrightCyan
	ColorFrame  = ColorBlue
	ColorFocus  = ColorMagenta
)
