package core

// Color is the foreground colour of a screen cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)

// ansiCodes holds the 256-colour palette index for each Color.
// ColorDefault has none and keeps the terminal's own foreground.
var ansiCodes = [...]string{
	ColorRed:          "1",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorCyan:         "6",
	ColorMagenta:      "5",
	ColorWhite:        "7",
	ColorGray:         "245",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
}

// ANSI returns the palette index as a string, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// Bright reports whether c is one of the high-intensity colours.
func (c Color) Bright() bool {
	return c >= ColorBrightRed && int(c) < len(ansiCodes)
}
