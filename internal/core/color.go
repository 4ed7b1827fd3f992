package core

import (
	"fmt"
	"strconv"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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

// RGB is a 24-bit color decoded from a "#RRGGBB" string.
type RGB struct {
	R, G, B uint8
}

// ParseHexColor decodes "#RRGGBB" (or "#RGB") into an RGB value.
func ParseHexColor(s string) (RGB, error) {
	if len(s) == 0 || s[0] != '#' {
		return RGB{}, fmt.Errorf("color %q: missing leading '#'", s)
	}
	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
