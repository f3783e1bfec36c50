package models

import (
	"math"

	"github.com/color-studio/api/colorspace"
)

// ColorInfo is the converter response: one color in every supported
// representation.
type ColorInfo struct {
	Hex      ColorHex        `json:"hex"`
	RGB      ColorRGB        `json:"rgb"`
	HSL      ColorHSL        `json:"hsl"`
	HSV      ColorHSV        `json:"hsv"`
	CMYK     ColorCMYK       `json:"cmyk"`
	Name     colorspace.Name `json:"name"`
	CSS      string          `json:"css"`
	Contrast ColorContrast   `json:"contrast"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	colorspace.RGB
	Value string `json:"value"`
}

type ColorHSL struct {
	colorspace.HSL
	Value string `json:"value"`
}

type ColorHSV struct {
	colorspace.HSV
	Value string `json:"value"`
}

type ColorCMYK struct {
	colorspace.CMYK
	Value string `json:"value"`
}

// ColorContrast scores the color as text on white and on black.
type ColorContrast struct {
	OnWhite ContrastResult `json:"onWhite"`
	OnBlack ContrastResult `json:"onBlack"`
	// Best is the background ("#ffffff" or "#000000") with more contrast.
	Best string `json:"best"`
}

type ContrastResult struct {
	Foreground string           `json:"foreground"`
	Background string           `json:"background"`
	Ratio      float64          `json:"ratio"`
	Level      colorspace.Level `json:"level"`
	LargeText  bool             `json:"largeText"`
}

// NewColorInfo describes c in every representation.
func NewColorInfo(c colorspace.RGB) ColorInfo {
	hex := c.Hex()
	exact := colorspace.RGBToHSL(c)
	hsl := exact.Round()
	hsv := colorspace.HSLToHSV(hsl.H, exact.S, exact.L)
	cmyk := colorspace.RGBToCMYK(c.R, c.G, c.B)

	white := colorspace.RGB{R: 255, G: 255, B: 255}
	black := colorspace.RGB{}
	onWhite := NewContrastResult(c, white)
	onBlack := NewContrastResult(c, black)
	best := white.Hex()
	if onBlack.Ratio > onWhite.Ratio {
		best = black.Hex()
	}

	return ColorInfo{
		Hex:  ColorHex{Value: hex, Clean: hex[1:]},
		RGB:  ColorRGB{RGB: c, Value: c.String()},
		HSL:  ColorHSL{HSL: hsl, Value: hsl.String()},
		HSV:  ColorHSV{HSV: hsv, Value: hsv.String()},
		CMYK: ColorCMYK{CMYK: cmyk, Value: cmyk.String()},
		Name: colorspace.ClosestName(c),
		CSS:  "color: " + hex + ";",
		Contrast: ColorContrast{
			OnWhite: onWhite,
			OnBlack: onBlack,
			Best:    best,
		},
	}
}

// NewContrastResult scores fg against bg. Ratio is rounded to two
// decimals for display; Level is computed from the exact ratio.
func NewContrastResult(fg, bg colorspace.RGB) ContrastResult {
	ratio := colorspace.RGBContrastRatio(fg, bg)
	return ContrastResult{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		Ratio:      math.Round(ratio*100) / 100,
		Level:      colorspace.Compliance(ratio),
		LargeText:  colorspace.PassesLargeText(ratio),
	}
}
