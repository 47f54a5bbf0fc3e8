// Package colour provides colour types and analysis primitives used by
// the screenshot verification checks.
package colour

import (
	"fmt"
	"image/color"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB, discarding the alpha channel.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses a 6-digit hex colour string with optional leading '#'.
func ParseHex(s string) (RGB, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
	}

	var rgb RGB
	for i, dst := range []*uint8{&rgb.R, &rgb.G, &rgb.B} {
		v, err := parseHexByte(h[i*2 : i*2+2])
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
		}
		*dst = v
	}
	return rgb, nil
}

// MustParseHex parses a hex colour string and panics on failure.
// Intended for static palette definitions.
func MustParseHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}

// parseHexByte converts a two-character hex string to a byte.
func parseHexByte(s string) (uint8, error) {
	var result uint8
	for i := 0; i < len(s); i++ {
		result *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			result += c - '0'
		case c >= 'a' && c <= 'f':
			result += c - 'a' + 10
		case c >= 'A' && c <= 'F':
			result += c - 'A' + 10
		default:
			return 0, fmt.Errorf("invalid hex digit: %q", c)
		}
	}
	return result, nil
}

// Similar reports whether two colours are within the given per-channel
// absolute tolerance of each other.
func Similar(a, b RGB, tolerance uint8) bool {
	return channelDiff(a.R, b.R) <= tolerance &&
		channelDiff(a.G, b.G) <= tolerance &&
		channelDiff(a.B, b.B) <= tolerance
}

func channelDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
