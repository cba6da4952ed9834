// Package core provides shared value types for styled text output.
// It exists so the syntax, theme, and terminal packages can exchange
// styles without importing each other.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// RGB creates a true color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Indexed creates an indexed palette color.
func Indexed(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ParseHex creates a color from a hex string like "#rrggbb" or "#rgb".
func ParseHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
		// Already expanded
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(amount float64) Color {
	if c.Indexed || c.Default {
		return c
	}
	return Color{
		R: uint8(min(255, float64(c.R)+float64(255-c.R)*amount)),
		G: uint8(min(255, float64(c.G)+float64(255-c.G)*amount)),
		B: uint8(min(255, float64(c.B)+float64(255-c.B)*amount)),
	}
}

// Darken returns a darker version of the color.
func (c Color) Darken(amount float64) Color {
	if c.Indexed || c.Default {
		return c
	}
	return Color{
		R: uint8(float64(c.R) * (1 - amount)),
		G: uint8(float64(c.G) * (1 - amount)),
		B: uint8(float64(c.B) * (1 - amount)),
	}
}
