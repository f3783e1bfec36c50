package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/color-studio/api/models"
	"github.com/lucasb-eyer/go-colorful"
)

type stop struct {
	offset float64
	color  colorful.Color
}

// GradientImage rasterizes g the way a browser paints its CSS form:
// linear gradients follow the CSS angle (0deg up, clockwise), radial
// gradients are circles reaching the farthest corner, and conic
// gradients start at the top and sweep clockwise.
func GradientImage(g models.Gradient, width, height int) (*image.NRGBA, error) {
	if len(g.Colors) == 0 {
		return nil, ErrNoColors
	}
	width, height, err := Size(width, height)
	if err != nil {
		return nil, err
	}

	sorted := g.SortedStops()
	stops := make([]stop, len(sorted))
	for i, s := range sorted {
		c, err := colorful.Hex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("stop %d: invalid color %q: %v", i, s.Color, err)
		}
		stops[i] = stop{offset: float64(s.Position) / 100, color: c}
	}

	param := parameterFor(g, float64(width), float64(height))

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := colorAt(stops, param(float64(x)+0.5, float64(y)+0.5))
			r, gr, b := c.Clamped().RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: gr, B: b, A: 0xff})
		}
	}
	return img, nil
}

// parameterFor returns the function mapping a pixel center to its
// position t along the gradient, with t in [0, 1] inside the gradient.
func parameterFor(g models.Gradient, w, h float64) func(x, y float64) float64 {
	cx, cy := w/2, h/2

	switch g.Type {
	case models.RadialGradient:
		radius := math.Hypot(cx, cy)
		return func(x, y float64) float64 {
			return math.Hypot(x-cx, y-cy) / radius
		}

	case models.ConicGradient:
		return func(x, y float64) float64 {
			dx, dy := x-cx, y-cy
			if dx == 0 && dy == 0 {
				return 0
			}
			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			return angle / (2 * math.Pi)
		}

	default:
		theta := float64(g.Direction) * math.Pi / 180
		dx, dy := math.Sin(theta), -math.Cos(theta)
		length := math.Abs(w*dx) + math.Abs(h*dy)
		return func(x, y float64) float64 {
			return ((x-cx)*dx+(y-cy)*dy)/length + 0.5
		}
	}
}

// colorAt pads before the first and after the last stop and blends
// linearly between neighbours.
func colorAt(stops []stop, t float64) colorful.Color {
	if len(stops) == 1 || t <= stops[0].offset {
		return stops[0].color
	}
	last := stops[len(stops)-1]
	if t >= last.offset {
		return last.color
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].offset >= t
	})
	lo, hi := stops[idx-1], stops[idx]
	return lo.color.BlendRgb(hi.color, (t-lo.offset)/(hi.offset-lo.offset))
}
