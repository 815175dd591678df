package core

// Color is the foreground colour of a screen cell.
// Values map to ANSI 256-colour codes in the platform renderer.
type Color uint8

// Palette used by the playfield.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorNavy
	ColorSand
)

// String returns the palette name of the colour.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightWhite:
		return "bright-white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "dark-gray"
	case ColorNavy:
		return "navy"
	case ColorSand:
		return "sand"
	default:
		return "unknown"
	}
}
