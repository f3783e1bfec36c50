package palettegen

import (
	"errors"
	"slices"
	"testing"

	"github.com/color-studio/api/colorspace"
	"github.com/google/go-cmp/cmp"
)

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	for _, info := range Themes() {
		t.Run(string(info.Key), func(t *testing.T) {
			t.Parallel()

			a, err := Generate(info.Key, 42)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			b, err := Generate(info.Key, 42)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("same seed produced different palettes (-first +second):\n%s", diff)
			}

			if len(a) != PaletteSize {
				t.Fatalf("len = %d, want %d", len(a), PaletteSize)
			}
			for _, c := range a {
				normalized, err := colorspace.Normalize(c)
				if err != nil {
					t.Fatalf("color %q is invalid: %v", c, err)
				}
				if normalized != c {
					t.Errorf("color %q is not canonical", c)
				}
			}
		})
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	t.Parallel()

	a, _ := Generate(Random, 1)
	b, _ := Generate(Random, 2)
	if slices.Equal(a, b) {
		t.Errorf("seeds 1 and 2 produced the same random palette %v", a)
	}
}

func TestGenerateFixedThemes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme Theme
		want  []string
	}{
		{Sunset, []string{"#ff4500", "#ff6347", "#ffd700", "#ffa500", "#dc143c"}},
		{Ocean, []string{"#006994", "#0892d0", "#00bfff", "#87ceeb", "#e0f6ff"}},
		{Forest, []string{"#013220", "#228b22", "#32cd32", "#90ee90", "#f0fff0"}},
	}

	for _, tt := range tests {
		got, err := Generate(tt.theme, 7)
		if err != nil {
			t.Fatalf("Generate(%s) returned error: %v", tt.theme, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Generate(%s) mismatch (-want +got):\n%s", tt.theme, diff)
		}
	}
}

func TestGenerateShuffledThemesDrawFromPool(t *testing.T) {
	t.Parallel()

	pools := map[Theme][]string{
		Vintage: vintageColors,
		Modern:  modernColors,
		Nature:  natureColors,
	}

	for theme, pool := range pools {
		got, err := Generate(theme, 99)
		if err != nil {
			t.Fatalf("Generate(%s) returned error: %v", theme, err)
		}
		seen := map[string]bool{}
		for _, c := range got {
			if !slices.Contains(pool, c) {
				t.Errorf("%s: %q not in pool", theme, c)
			}
			if seen[c] {
				t.Errorf("%s: %q repeated", theme, c)
			}
			seen[c] = true
		}
	}

	// Shuffling must not reorder the shared pool.
	if vintageColors[0] != "#8b4513" {
		t.Errorf("vintage pool mutated: %v", vintageColors)
	}
}

func TestGenerateWarmHues(t *testing.T) {
	t.Parallel()

	hues := []int{0, 30, 60, 15, 45}
	for seed := uint64(0); seed < 20; seed++ {
		got, _ := Generate(Warm, seed)
		for i, c := range got {
			hsl, err := colorspace.HexToHSL(c)
			if err != nil {
				t.Fatalf("HexToHSL(%q) returned error: %v", c, err)
			}
			hue := int(hsl.Round().H)
			d := hue - hues[i]
			if d > 180 {
				d -= 360
			}
			if d < -3 || d > 3 {
				t.Errorf("seed %d color %d: hue %d, want about %d", seed, i, hue, hues[i])
			}
		}
	}
}

func TestGenerateUnknownTheme(t *testing.T) {
	t.Parallel()

	if _, err := Generate("neon", 1); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("error = %v, want ErrUnknownTheme", err)
	}
}

func TestGenerateThemeCaseInsensitive(t *testing.T) {
	t.Parallel()

	got, err := Generate("OCEAN", 0)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got[0] != "#006994" {
		t.Errorf("Generate(OCEAN)[0] = %q", got[0])
	}
}

func TestHarmony(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind HarmonyKind
		want []string
	}{
		{HarmonyComplementary, []string{"#ff0000", "#00ffff"}},
		{HarmonyTriadic, []string{"#ff0000", "#00ff00", "#0000ff"}},
		{HarmonyTetradic, []string{"#ff0000", "#80ff00", "#00ffff", "#8000ff"}},
		{HarmonyAnalogous, []string{"#ff0080", "#ff0000", "#ff8000", "#ffff00"}},
		{HarmonySplitComplementary, []string{"#ff0000", "#00ff80", "#0080ff"}},
		{HarmonyMonochromatic, []string{"#660000", "#b30000", "#ff0000", "#ff4d4d", "#ff9999"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			got, err := Harmony("#FF0000", tt.kind)
			if err != nil {
				t.Fatalf("Harmony returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Harmony mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHarmonyRotatesUnroundedHue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind HarmonyKind
		want []string
	}{
		{HarmonyComplementary, []string{"#3b82f6", "#f6af3b"}},
		{HarmonyTriadic, []string{"#3b82f6", "#f63b82", "#82f63b"}},
		{HarmonyMonochromatic, []string{"#073b91", "#0a59da", "#3b82f6", "#84b1f9", "#cddffd"}},
	}

	for _, tt := range tests {
		got, err := Harmony("#3b82f6", tt.kind)
		if err != nil {
			t.Fatalf("Harmony(%s) returned error: %v", tt.kind, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Harmony(%s) mismatch (-want +got):\n%s", tt.kind, diff)
		}
	}
}

func TestHarmonyErrors(t *testing.T) {
	t.Parallel()

	if _, err := Harmony("#12", HarmonyTriadic); !errors.Is(err, colorspace.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
	if _, err := Harmony("#ff0000", "clashing"); !errors.Is(err, ErrUnknownHarmony) {
		t.Errorf("error = %v, want ErrUnknownHarmony", err)
	}
}
