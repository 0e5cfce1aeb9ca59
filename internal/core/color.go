package core

import "fmt"

// Color represents a foreground color for a screen cell.
// The renderer maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for world elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightGreen
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_yellow": ColorBrightYellow,
	"bright_green":  ColorBrightGreen,
	"orange":        ColorOrange,
	"gray":          ColorGray,
}

// ParseColor resolves a color name as used in sprite definitions.
// An empty name is the default color.
func ParseColor(name string) (Color, error) {
	if name == "" {
		return ColorDefault, nil
	}
	c, ok := colorNames[name]
	if !ok {
		return ColorDefault, fmt.Errorf("core: unknown color %q", name)
	}
	return c, nil
}
