package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBlack
)

// Gray maps a colour onto the gray ramp, used for desaturated frames.
// Bright colours land on the light gray, the rest on the dark one.
func (c Color) Gray() Color {
	switch c {
	case ColorDefault, ColorBlack, ColorDarkGray:
		return c
	case ColorWhite, ColorBrightWhite, ColorBrightYellow, ColorYellow,
		ColorBrightCyan, ColorBrightGreen, ColorOrange:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
