package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/color-studio/api/colorspace"
	"github.com/color-studio/api/models"
	"github.com/lucasb-eyer/go-colorful"
)

func TestSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
		wantErr       bool
	}{
		{name: "defaults", wantW: DefaultWidth, wantH: DefaultHeight},
		{name: "explicit", width: 120, height: 40, wantW: 120, wantH: 40},
		{name: "partial default", width: 64, wantW: 64, wantH: DefaultHeight},
		{name: "negative", width: -1, height: 10, wantErr: true},
		{name: "too large", width: MaxDimension + 1, height: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, h, err := Size(tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Fatalf("Size(%d, %d) error = %v, want ErrInvalidSize", tt.width, tt.height, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Size returned error: %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size(%d, %d) = %d, %d, want %d, %d", tt.width, tt.height, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPaletteStripBands(t *testing.T) {
	t.Parallel()

	img, err := PaletteStrip([]string{"#ff0000", "0f0", "#0000FF"}, 300, 30)
	if err != nil {
		t.Fatalf("PaletteStrip returned error: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 300, 30) {
		t.Fatalf("bounds = %v", got)
	}

	checks := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 0xff, A: 0xff}},
		{99, color.NRGBA{R: 0xff, A: 0xff}},
		{100, color.NRGBA{G: 0xff, A: 0xff}},
		{150, color.NRGBA{G: 0xff, A: 0xff}},
		{299, color.NRGBA{B: 0xff, A: 0xff}},
	}
	for _, c := range checks {
		if got := img.NRGBAAt(c.x, 0); got != c.want {
			t.Errorf("pixel (%d, 0) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestPaletteStripLabels(t *testing.T) {
	t.Parallel()

	img, err := PaletteStrip([]string{"#000000", "#000000"}, 200, 60)
	if err != nil {
		t.Fatalf("PaletteStrip returned error: %v", err)
	}

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for band := 0; band < 2; band++ {
		found := false
		for y := 0; y < 60 && !found; y++ {
			for x := band * 100; x < (band+1)*100; x++ {
				if img.NRGBAAt(x, y) == white {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("band %d has no label pixels", band)
		}
	}

	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{A: 0xff}) {
		t.Errorf("corner pixel = %v, want unlabeled fill", got)
	}
}

func TestPaletteStripErrors(t *testing.T) {
	t.Parallel()

	if _, err := PaletteStrip(nil, 10, 10); !errors.Is(err, ErrNoColors) {
		t.Errorf("empty colors error = %v, want ErrNoColors", err)
	}
	if _, err := PaletteStrip([]string{"#zzzzzz"}, 10, 10); !errors.Is(err, colorspace.ErrInvalidFormat) {
		t.Errorf("invalid color error = %v, want ErrInvalidFormat", err)
	}
	if _, err := PaletteStrip([]string{"#000000"}, -5, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative size error = %v, want ErrInvalidSize", err)
	}
}

func blackToWhite(kind models.GradientType, direction int) models.Gradient {
	return models.Gradient{
		Colors:    []models.ColorStop{{Color: "#000000", Position: 0}, {Color: "#ffffff", Position: 100}},
		Direction: direction,
		Type:      kind,
	}
}

func TestGradientImageLinearDirections(t *testing.T) {
	t.Parallel()

	t.Run("90deg runs left to right", func(t *testing.T) {
		t.Parallel()
		img, err := GradientImage(blackToWhite(models.LinearGradient, 90), 100, 10)
		if err != nil {
			t.Fatalf("GradientImage returned error: %v", err)
		}
		if r := img.NRGBAAt(0, 5).R; r > 5 {
			t.Errorf("left edge R = %d, want near 0", r)
		}
		if r := img.NRGBAAt(99, 5).R; r < 250 {
			t.Errorf("right edge R = %d, want near 255", r)
		}
		for x := 1; x < 100; x++ {
			if img.NRGBAAt(x, 5).R < img.NRGBAAt(x-1, 5).R {
				t.Fatalf("row not monotonic at x=%d", x)
			}
		}
		if a, b := img.NRGBAAt(40, 0), img.NRGBAAt(40, 9); a != b {
			t.Errorf("column 40 not uniform: %v vs %v", a, b)
		}
	})

	t.Run("180deg runs top to bottom", func(t *testing.T) {
		t.Parallel()
		img, err := GradientImage(blackToWhite(models.LinearGradient, 180), 10, 100)
		if err != nil {
			t.Fatalf("GradientImage returned error: %v", err)
		}
		if r := img.NRGBAAt(5, 0).R; r > 5 {
			t.Errorf("top R = %d, want near 0", r)
		}
		if r := img.NRGBAAt(5, 99).R; r < 250 {
			t.Errorf("bottom R = %d, want near 255", r)
		}
	})

	t.Run("0deg runs bottom to top", func(t *testing.T) {
		t.Parallel()
		img, err := GradientImage(blackToWhite(models.LinearGradient, 0), 10, 100)
		if err != nil {
			t.Fatalf("GradientImage returned error: %v", err)
		}
		if r := img.NRGBAAt(5, 0).R; r < 250 {
			t.Errorf("top R = %d, want near 255", r)
		}
		if r := img.NRGBAAt(5, 99).R; r > 5 {
			t.Errorf("bottom R = %d, want near 0", r)
		}
	})

	t.Run("135deg corners", func(t *testing.T) {
		t.Parallel()
		img, err := GradientImage(blackToWhite(models.LinearGradient, 135), 50, 50)
		if err != nil {
			t.Fatalf("GradientImage returned error: %v", err)
		}
		if r := img.NRGBAAt(0, 0).R; r > 10 {
			t.Errorf("top-left R = %d, want near 0", r)
		}
		if r := img.NRGBAAt(49, 49).R; r < 245 {
			t.Errorf("bottom-right R = %d, want near 255", r)
		}
		a, b := int(img.NRGBAAt(49, 0).R), int(img.NRGBAAt(0, 49).R)
		if d := a - b; d < -1 || d > 1 || a < 126 || a > 129 {
			t.Errorf("anti-diagonal corners R = %d, %d, want both near the midpoint", a, b)
		}
	})
}

func TestGradientImageMiddleStop(t *testing.T) {
	t.Parallel()

	g := models.Gradient{
		Colors: []models.ColorStop{
			{Color: "#0000ff", Position: 100},
			{Color: "#ff0000", Position: 0},
			{Color: "#00ff00", Position: 50},
		},
		Direction: 90,
		Type:      models.LinearGradient,
	}
	img, err := GradientImage(g, 200, 4)
	if err != nil {
		t.Fatalf("GradientImage returned error: %v", err)
	}

	if got := img.NRGBAAt(0, 0); got.R < 250 || got.B > 5 {
		t.Errorf("left = %v, want red", got)
	}
	if got := img.NRGBAAt(99, 0); got.G < 245 {
		t.Errorf("middle = %v, want green", got)
	}
	if got := img.NRGBAAt(199, 0); got.B < 250 || got.R > 5 {
		t.Errorf("right = %v, want blue", got)
	}
}

func TestGradientImageRadial(t *testing.T) {
	t.Parallel()

	img, err := GradientImage(blackToWhite(models.RadialGradient, 0), 101, 101)
	if err != nil {
		t.Fatalf("GradientImage returned error: %v", err)
	}
	if got := img.NRGBAAt(50, 50); got != (color.NRGBA{A: 0xff}) {
		t.Errorf("center = %v, want black", got)
	}
	for _, p := range []image.Point{{0, 0}, {100, 0}, {0, 100}, {100, 100}} {
		if r := img.NRGBAAt(p.X, p.Y).R; r < 240 {
			t.Errorf("corner %v R = %d, want near 255", p, r)
		}
	}
	if a, b := img.NRGBAAt(50, 0), img.NRGBAAt(0, 50); a != b {
		t.Errorf("radial not symmetric: %v vs %v", a, b)
	}
}

func TestGradientImageConic(t *testing.T) {
	t.Parallel()

	g := models.Gradient{
		Colors: []models.ColorStop{{Color: "#ff0000", Position: 0}, {Color: "#0000ff", Position: 100}},
		Type:   models.ConicGradient,
	}
	img, err := GradientImage(g, 100, 100)
	if err != nil {
		t.Fatalf("GradientImage returned error: %v", err)
	}

	justRight := img.NRGBAAt(55, 5)
	if justRight.R <= justRight.B {
		t.Errorf("just clockwise of top = %v, want mostly red", justRight)
	}
	justLeft := img.NRGBAAt(44, 5)
	if justLeft.B <= justLeft.R {
		t.Errorf("just counterclockwise of top = %v, want mostly blue", justLeft)
	}

	quarter := img.NRGBAAt(99, 49)
	if quarter.R < quarter.B {
		t.Errorf("quarter turn = %v, want more red than blue", quarter)
	}
}

func TestGradientImageErrors(t *testing.T) {
	t.Parallel()

	if _, err := GradientImage(models.Gradient{}, 10, 10); !errors.Is(err, ErrNoColors) {
		t.Errorf("empty gradient error = %v, want ErrNoColors", err)
	}
	bad := models.Gradient{Colors: []models.ColorStop{{Color: "nope"}, {Color: "#000000", Position: 100}}}
	if _, err := GradientImage(bad, 10, 10); err == nil {
		t.Errorf("invalid stop color returned no error")
	}
	if _, err := GradientImage(blackToWhite(models.LinearGradient, 90), MaxDimension+1, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("oversized error = %v, want ErrInvalidSize", err)
	}
}

func TestColorAtPadsOutsideStops(t *testing.T) {
	t.Parallel()

	first, _ := colorful.Hex("#112233")
	second, _ := colorful.Hex("#445566")
	stops := []stop{{offset: 0.25, color: first}, {offset: 0.75, color: second}}

	if got := colorAt(stops, 0.1); got != first {
		t.Errorf("before first stop = %v, want %v", got.Hex(), first.Hex())
	}
	if got := colorAt(stops, 0.9); got != second {
		t.Errorf("after last stop = %v, want %v", got.Hex(), second.Hex())
	}
	if got := colorAt(stops, 0.5).Hex(); got != first.BlendRgb(second, 0.5).Hex() {
		t.Errorf("midpoint = %s", got)
	}
}

func TestColorAtInexactOffsets(t *testing.T) {
	t.Parallel()

	first, _ := colorful.Hex("#112233")
	second, _ := colorful.Hex("#445566")
	stops := []stop{{offset: 0.2, color: first}, {offset: 0.8, color: second}}

	// (0.5-0.2)/(0.8-0.2) is not exactly 0.5 in float64.
	gr, gg, gb := colorAt(stops, 0.5).Clamped().RGB255()
	wr, wg, wb := first.BlendRgb(second, 0.5).Clamped().RGB255()
	if channelDelta(gr, wr) > 1 || channelDelta(gg, wg) > 1 || channelDelta(gb, wb) > 1 {
		t.Errorf("midpoint = (%d, %d, %d), want within 1 of (%d, %d, %d)", gr, gg, gb, wr, wg, wb)
	}
}

func channelDelta(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	img, err := PaletteStrip([]string{"#3b82f6"}, 40, 20)
	if err != nil {
		t.Fatalf("PaletteStrip returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG returned error: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode returned error: %v", err)
	}
	if got := decoded.Bounds(); got != image.Rect(0, 0, 40, 20) {
		t.Errorf("decoded bounds = %v", got)
	}
	r, g, b, _ := decoded.At(0, 0).RGBA()
	if r>>8 != 0x3b || g>>8 != 0x82 || b>>8 != 0xf6 {
		t.Errorf("decoded corner = %02x%02x%02x", r>>8, g>>8, b>>8)
	}
}
