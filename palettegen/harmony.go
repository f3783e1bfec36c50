package palettegen

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/color-studio/api/colorspace"
)

var ErrUnknownHarmony = errors.New("unknown harmony type")

type HarmonyKind string

const (
	HarmonyComplementary      HarmonyKind = "complementary"
	HarmonyTriadic            HarmonyKind = "triadic"
	HarmonyTetradic           HarmonyKind = "tetradic"
	HarmonyAnalogous          HarmonyKind = "analogous"
	HarmonySplitComplementary HarmonyKind = "split-complementary"
	HarmonyMonochromatic      HarmonyKind = "monochromatic"
)

// HarmonyKinds lists the supported harmonies.
var HarmonyKinds = []HarmonyKind{
	HarmonyComplementary,
	HarmonyTriadic,
	HarmonyTetradic,
	HarmonyAnalogous,
	HarmonySplitComplementary,
	HarmonyMonochromatic,
}

// Harmony derives a color scheme from base by rotating its hue or
// stepping its lightness. The normalized base color is part of the
// result.
func Harmony(base string, kind HarmonyKind) ([]string, error) {
	color, err := colorspace.Normalize(base)
	if err != nil {
		return nil, err
	}
	hsl, _ := colorspace.HexToHSL(color)
	h, s, l := hsl.H, hsl.S, hsl.L

	rotate := func(deg float64) string {
		return colorspace.HSLToHex(h+deg, s, l)
	}
	lighten := func(lightness float64) string {
		return colorspace.HSLToHex(h, s, lightness)
	}

	switch HarmonyKind(strings.ToLower(string(kind))) {
	case HarmonyComplementary:
		return []string{color, rotate(180)}, nil
	case HarmonyTriadic:
		return []string{color, rotate(120), rotate(240)}, nil
	case HarmonyTetradic:
		return []string{color, rotate(90), rotate(180), rotate(270)}, nil
	case HarmonyAnalogous:
		return []string{rotate(-30), color, rotate(30), rotate(60)}, nil
	case HarmonySplitComplementary:
		return []string{color, rotate(150), rotate(210)}, nil
	case HarmonyMonochromatic:
		return []string{
			lighten(math.Max(10, l-30)),
			lighten(math.Max(20, l-15)),
			color,
			lighten(math.Min(90, l+15)),
			lighten(math.Min(100, l+30)),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q, want one of %v", ErrUnknownHarmony, kind, HarmonyKinds)
	}
}
