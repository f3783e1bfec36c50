// Package colorspace converts between HEX, RGB, HSL, HSV and CMYK
// representations and scores WCAG contrast between two colors.
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidFormat is returned for any malformed HEX input.
var ErrInvalidFormat = errors.New("color must be in #RGB or #RRGGBB hex format")

// RGB holds 8-bit channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the canonical lowercase form of c.
func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

// HexToRGB parses #RRGGBB or #RGB, with or without the leading '#'.
func HexToRGB(hex string) (RGB, error) {
	v := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(v) {
	case 3:
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}

	var channels [3]int
	for i := range channels {
		hi, okHi := hexDigit(v[2*i])
		lo, okLo := hexDigit(v[2*i+1])
		if !okHi || !okLo {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
		}
		channels[i] = hi<<4 | lo
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Normalize returns hex in canonical "#rrggbb" form.
func Normalize(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// RGBToHex rounds and clamps each channel to [0,255].
func RGBToHex(r, g, b float64) string {
	c := RGBFromFloats(r, g, b)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBFromFloats rounds each channel to the nearest integer and clamps it
// to [0,255]. NaN becomes 0.
func RGBFromFloats(r, g, b float64) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func clampChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(clamp(math.Round(v), 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
