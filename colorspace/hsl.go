package colorspace

import (
	"fmt"
	"math"
)

// HSL holds hue in degrees [0,360) and saturation/lightness in percent.
// Components are unrounded; use Round or String for display.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Round rounds each component to the nearest integer. The hue is
// normalized after rounding so 359.6 becomes 0.
func (c HSL) Round() HSL {
	return HSL{
		H: normalizeHue(math.Round(c.H)),
		S: math.Round(c.S),
		L: math.Round(c.L),
	}
}

func (c HSL) String() string {
	r := c.Round()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(r.H), int(r.S), int(r.L))
}

// HSV holds hue in degrees [0,360) and saturation/value in percent.
type HSV struct {
	H int `json:"h"`
	S int `json:"s"`
	V int `json:"v"`
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
}

// HexToHSL parses hex and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// RGBToHSL converts using the max/min chroma formula. Grays have hue and
// saturation 0. HSLToRGB of the result reproduces c exactly.
func RGBToHSL(c RGB) HSL {
	r := clamp(float64(c.R), 0, 255) / 255
	g := clamp(float64(c.G), 0, 255) / 255
	b := clamp(float64(c.B), 0, 255) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	chroma := hi - lo
	l := (hi + lo) / 2

	if chroma == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	s := chroma / (1 - math.Abs(2*l-1))

	var h float64
	switch hi {
	case r:
		h = math.Mod((g-b)/chroma, 6)
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}

	return HSL{
		H: normalizeHue(h * 60),
		S: clamp(s, 0, 1) * 100,
		L: l * 100,
	}
}

// HSLToHex converts HSL to canonical hex. Hue wraps modulo 360 and
// saturation/lightness are clamped to [0,100].
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// HSLToRGB converts with the six-sector piecewise formula.
func HSLToRGB(h, s, l float64) RGB {
	h = normalizeHue(h)
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: clampChannel((r + m) * 255),
		G: clampChannel((g + m) * 255),
		B: clampChannel((b + m) * 255),
	}
}

// HSLToHSV converts HSL percentages to HSV. The hue is passed through.
func HSLToHSV(h, s, l float64) HSV {
	sn := clamp(s, 0, 100) / 100
	ln := clamp(l, 0, 100) / 100

	v := ln + sn*math.Min(ln, 1-ln)
	var sv float64
	if v != 0 {
		sv = 2 * (1 - ln/v)
	}

	return HSV{
		H: int(math.Round(h)),
		S: int(math.Round(sv * 100)),
		V: int(math.Round(v * 100)),
	}
}

// normalizeHue maps any angle into [0,360).
func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
