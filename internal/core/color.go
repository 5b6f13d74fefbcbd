package core

// Color is the foreground color of a screen cell. The front end maps it to a
// terminal color; games only pick from this palette.
type Color uint8

// Palette. Piece colors come first, then UI colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorBrightWhite
	ColorGray

	colorCount
)

// ansiCodes holds the ANSI 256 color index for each palette entry.
var ansiCodes = [colorCount]string{
	ColorDefault:     "",
	ColorRed:         "1",
	ColorGreen:       "2",
	ColorYellow:      "3",
	ColorBlue:        "4",
	ColorMagenta:     "5",
	ColorCyan:        "6",
	ColorOrange:      "208",
	ColorWhite:       "7",
	ColorBrightWhite: "15",
	ColorGray:        "245",
}

// Colors returns every palette entry in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// ANSI returns the terminal color index for c, or "" for the terminal's
// default foreground. Unknown colors fall back to the default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}
