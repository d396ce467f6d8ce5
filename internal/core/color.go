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
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
	ColorDim
)

// ShadeForIntensity maps a 0..255 light level to a color, from almost
// invisible to bright white. Used to fake alpha blending in the terminal.
func ShadeForIntensity(intensity int) Color {
	switch {
	case intensity <= 0:
		return ColorDim
	case intensity < 96:
		return ColorGray
	case intensity < 192:
		return ColorWhite
	default:
		return ColorBrightWhite
	}
}
