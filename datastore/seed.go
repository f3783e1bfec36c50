package datastore

import (
	"fmt"

	"github.com/color-studio/api/models"
)

var samplePalettes = []models.Palette{
	{
		Name:        "Modern Minimalist",
		Description: "Clean and sophisticated grayscale palette",
		Colors:      []string{"#1a1a1a", "#666666", "#999999", "#cccccc", "#ffffff"},
		Tags:        []string{"minimal", "grayscale", "clean"},
	},
	{
		Name:        "Ocean Breeze",
		Description: "Calming blue tones inspired by the sea",
		Colors:      []string{"#1e3a8a", "#2563eb", "#60a5fa", "#67e8f9", "#ecfeff"},
		Tags:        []string{"blue", "ocean", "calming"},
	},
	{
		Name:        "Sunset Warmth",
		Description: "Vibrant warm colors of golden hour",
		Colors:      []string{"#ea580c", "#fb923c", "#fde047", "#f472b6", "#a855f7"},
		Tags:        []string{"warm", "sunset", "vibrant"},
	},
	{
		Name:        "Forest Fresh",
		Description: "Natural green tones from nature",
		Colors:      []string{"#166534", "#16a34a", "#4ade80", "#bef264", "#f7fee7"},
		Tags:        []string{"green", "nature", "fresh"},
	},
	{
		Name:        "Royal Purple",
		Description: "Luxurious purple shades for elegance",
		Colors:      []string{"#581c87", "#7c3aed", "#a855f7", "#c084fc", "#f3e8ff"},
		Tags:        []string{"purple", "luxury", "elegant"},
	},
	{
		Name:        "Autumn Vibes",
		Description: "Warm fall colors with earthy tones",
		Colors:      []string{"#b91c1c", "#ea580c", "#eab308", "#f59e0b", "#fef3c7"},
		Tags:        []string{"autumn", "warm", "earthy"},
	},
}

var sampleGradients = []models.Gradient{
	{
		Name:        "Sunset Glow",
		Description: "Warm gradient from pink to yellow",
		Colors:      []models.ColorStop{{Color: "#ec4899", Position: 0}, {Color: "#ef4444", Position: 50}, {Color: "#eab308", Position: 100}},
		Direction:   135,
		Type:        models.LinearGradient,
	},
	{
		Name:        "Ocean Depth",
		Description: "Cool blue to green gradient",
		Colors:      []models.ColorStop{{Color: "#4ade80", Position: 0}, {Color: "#3b82f6", Position: 100}},
		Direction:   45,
		Type:        models.LinearGradient,
	},
	{
		Name:        "Cotton Candy",
		Description: "Soft purple to pink gradient",
		Colors:      []models.ColorStop{{Color: "#a855f7", Position: 0}, {Color: "#ec4899", Position: 50}, {Color: "#ef4444", Position: 100}},
		Direction:   90,
		Type:        models.LinearGradient,
	},
	{
		Name:        "Dark Matter",
		Description: "Deep black gradient with subtle variations",
		Colors:      []models.ColorStop{{Color: "#374151", Position: 0}, {Color: "#111827", Position: 50}, {Color: "#000000", Position: 100}},
		Direction:   180,
		Type:        models.LinearGradient,
	},
}

// Seed loads the sample catalog into empty repositories. Repositories
// that already hold data are left untouched.
func Seed(palettes PaletteRepository, gradients GradientRepository) error {
	if n, err := palettes.Count(); err != nil {
		return fmt.Errorf("failed to count palettes: %v", err)
	} else if n == 0 {
		for _, p := range samplePalettes {
			if _, err := palettes.Create(p.Clone()); err != nil {
				return fmt.Errorf("failed to seed palette %q: %v", p.Name, err)
			}
		}
	}

	if n, err := gradients.Count(); err != nil {
		return fmt.Errorf("failed to count gradients: %v", err)
	} else if n == 0 {
		for _, g := range sampleGradients {
			if _, err := gradients.Create(g.Clone()); err != nil {
				return fmt.Errorf("failed to seed gradient %q: %v", g.Name, err)
			}
		}
	}

	return nil
}
