package core

// Color is a foreground color for a screen cell. The terminal layer maps
// each value to a style through its theme.
type Color uint8

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

// Board colors.
const (
	ColorWater  = ColorGray         // Unknown or empty cell
	ColorSplash = ColorBlue         // Miss
	ColorShip   = ColorWhite        // Intact ship segment
	ColorHit    = ColorRed          // Hit segment on the player's own grid
	ColorStruck = ColorYellow       // Hit on the enemy grid, ship still afloat
	ColorSunk   = ColorBrightRed    // Segment of a sunk enemy ship
	ColorCursor = ColorBrightYellow // Aim and placement cursor, flashes
)

var colorNames = [...]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

// String returns the lower-case color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
