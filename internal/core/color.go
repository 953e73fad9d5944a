package core

// Color is a cell foreground. Frontends map it to a terminal palette entry;
// the zero value leaves the terminal's own colour.
type Color uint8

// Colors available to the board renderer. Tiles walk this palette as their
// value doubles, so the order only matters for Bright.
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
)

// Bright reports whether c is one of the high-intensity colors.
func (c Color) Bright() bool {
	return c >= ColorBrightRed && c <= ColorBrightWhite
}
