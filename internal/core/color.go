package core

import "github.com/vovakirdan/hexblocks/internal/hex"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDim
)

// DefaultPalette is the set of colors pieces are painted with.
// A piece color index selects one entry.
var DefaultPalette = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
}

// CellColor maps a cell color index to a screen color.
// Reserved indices get neutral colors; palette indices wrap around.
func CellColor(index int) Color {
	switch {
	case index == hex.ColorEmpty:
		return ColorDim
	case index == hex.ColorFilled || index < 0:
		return ColorGray
	default:
		return DefaultPalette[index%len(DefaultPalette)]
	}
}
