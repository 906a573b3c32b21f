package core

// Color is the foreground color of a screen cell. Hosts map it to a terminal
// style.
type Color uint8

// The chromatic colors follow the game palette order: red, green, blue,
// yellow, magenta, cyan.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// PaletteSize is the number of chromatic cell colors.
const PaletteSize = 6

// PaletteColor returns the cell color for palette index i. Indices outside
// the palette render white.
func PaletteColor(i int) Color {
	if i < 0 || i >= PaletteSize {
		return ColorWhite
	}
	return ColorRed + Color(i)
}
