package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for cave elements.
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
	ColorBrightWhite
	ColorOrange
	ColorAmber
	ColorBrown
	ColorGray
	ColorDarkGray
	ColorBlack
)

// Shade returns the color a cell should take when covered by a fade overlay
// of the given opacity (0..max). Fully covered cells go black.
func (c Color) Shade(alpha, max int) Color {
	if max <= 0 || alpha <= 0 {
		return c
	}
	switch {
	case alpha >= max:
		return ColorBlack
	case alpha*3 >= max*2:
		return ColorDarkGray
	case alpha*3 >= max:
		return ColorGray
	default:
		return c
	}
}
