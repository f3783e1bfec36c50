// Package palettegen builds reproducible theme palettes and color
// harmonies. Every generator is a pure function of its inputs.
package palettegen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/color-studio/api/colorspace"
)

var ErrUnknownTheme = errors.New("unknown palette theme")

// PaletteSize is the number of colors each theme produces.
const PaletteSize = 5

type Theme string

const (
	Random        Theme = "random"
	Warm          Theme = "warm"
	Cool          Theme = "cool"
	Monochromatic Theme = "monochromatic"
	Analogous     Theme = "analogous"
	Complementary Theme = "complementary"
	Vintage       Theme = "vintage"
	Modern        Theme = "modern"
	Nature        Theme = "nature"
	Sunset        Theme = "sunset"
	Ocean         Theme = "ocean"
	Forest        Theme = "forest"
)

type ThemeInfo struct {
	Key   Theme  `json:"key"`
	Label string `json:"label"`
}

var themes = []ThemeInfo{
	{Random, "Random Colors"},
	{Warm, "Warm Tones"},
	{Cool, "Cool Tones"},
	{Monochromatic, "Monochromatic"},
	{Analogous, "Analogous"},
	{Complementary, "Complementary"},
	{Vintage, "Vintage"},
	{Modern, "Modern"},
	{Nature, "Nature Inspired"},
	{Sunset, "Sunset"},
	{Ocean, "Ocean"},
	{Forest, "Forest"},
}

// Themes lists the supported themes in display order.
func Themes() []ThemeInfo {
	out := make([]ThemeInfo, len(themes))
	copy(out, themes)
	return out
}

var generators = map[Theme]func(r *rand.Rand) []string{
	Random:        randomPalette,
	Warm:          hueSetPalette([]float64{0, 30, 60, 15, 45}, 60, 30, 45, 30),
	Cool:          hueSetPalette([]float64{180, 210, 240, 270, 200}, 50, 40, 40, 35),
	Monochromatic: monochromaticPalette,
	Analogous:     analogousPalette,
	Complementary: complementaryPalette,
	Vintage:       shuffledPalette(vintageColors),
	Modern:        shuffledPalette(modernColors),
	Nature:        shuffledPalette(natureColors),
	Sunset:        fixedPalette(sunsetColors),
	Ocean:         fixedPalette(oceanColors),
	Forest:        fixedPalette(forestColors),
}

var (
	vintageColors = []string{
		"#8b4513", "#a0522d", "#cd853f", "#deb887", "#f5deb3",
		"#d2691e", "#bc8f8f", "#f4a460", "#daa520", "#b8860b",
	}
	modernColors = []string{
		"#2563eb", "#7c3aed", "#dc2626", "#059669", "#ea580c",
		"#6366f1", "#8b5cf6", "#ef4444", "#10b981", "#f59e0b",
	}
	natureColors = []string{
		"#228b22", "#32cd32", "#90ee90", "#8fbc8f", "#556b2f",
		"#9acd32", "#adff2f", "#00ff7f", "#2e8b57", "#3cb371",
	}
	sunsetColors = []string{"#ff4500", "#ff6347", "#ffd700", "#ffa500", "#dc143c"}
	oceanColors  = []string{"#006994", "#0892d0", "#00bfff", "#87ceeb", "#e0f6ff"}
	forestColors = []string{"#013220", "#228b22", "#32cd32", "#90ee90", "#f0fff0"}
)

// Generate returns the palette for theme. The same theme and seed always
// produce the same colors.
func Generate(theme Theme, seed uint64) ([]string, error) {
	gen, ok := generators[Theme(strings.ToLower(string(theme)))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	return gen(newRand(seed)), nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randomPalette(r *rand.Rand) []string {
	colors := make([]string, PaletteSize)
	for i := range colors {
		colors[i] = fmt.Sprintf("#%06x", r.IntN(0x1000000))
	}
	return colors
}

// hueSetPalette draws saturation from [satMin, satMin+satSpan) and
// lightness from [lightMin, lightMin+lightSpan) for each fixed hue.
func hueSetPalette(hues []float64, satMin, satSpan, lightMin, lightSpan float64) func(r *rand.Rand) []string {
	return func(r *rand.Rand) []string {
		colors := make([]string, len(hues))
		for i, h := range hues {
			s := satMin + r.Float64()*satSpan
			l := lightMin + r.Float64()*lightSpan
			colors[i] = colorspace.HSLToHex(h, s, l)
		}
		return colors
	}
}

func monochromaticPalette(r *rand.Rand) []string {
	hue := r.Float64() * 360
	sat := 60 + r.Float64()*30
	lightnesses := []float64{20, 35, 50, 65, 80}

	colors := make([]string, len(lightnesses))
	for i, l := range lightnesses {
		colors[i] = colorspace.HSLToHex(hue, sat, l)
	}
	return colors
}

func analogousPalette(r *rand.Rand) []string {
	base := r.Float64() * 360
	offsets := []float64{-30, -15, 0, 15, 30}

	colors := make([]string, len(offsets))
	for i, off := range offsets {
		s := 60 + r.Float64()*25
		l := 45 + r.Float64()*25
		colors[i] = colorspace.HSLToHex(base+off, s, l)
	}
	return colors
}

func complementaryPalette(r *rand.Rand) []string {
	base := r.Float64() * 360
	complement := base + 180
	return []string{
		colorspace.HSLToHex(base, 70, 30),
		colorspace.HSLToHex(base, 60, 50),
		colorspace.HSLToHex(base, 50, 70),
		colorspace.HSLToHex(complement, 60, 50),
		colorspace.HSLToHex(complement, 70, 30),
	}
}

func shuffledPalette(pool []string) func(r *rand.Rand) []string {
	return func(r *rand.Rand) []string {
		shuffled := make([]string, len(pool))
		copy(shuffled, pool)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return shuffled[:PaletteSize]
	}
}

func fixedPalette(colors []string) func(r *rand.Rand) []string {
	return func(*rand.Rand) []string {
		out := make([]string, len(colors))
		copy(out, colors)
		return out
	}
}
