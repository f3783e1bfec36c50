package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/color-studio/api/colorspace"
)

type GradientType string

const (
	LinearGradient GradientType = "linear"
	RadialGradient GradientType = "radial"
	ConicGradient  GradientType = "conic"
)

const (
	DefaultGradientDirection = 135
	DefaultGradientType      = LinearGradient
)

type ColorStop struct {
	Color    string `json:"color"`
	Position int    `json:"position"`
}

type Gradient struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Colors      []ColorStop  `json:"colors"`
	Direction   int          `json:"direction"`
	Type        GradientType `json:"type"`
	UsageCount  int          `json:"usageCount"`
	IsTrending  bool         `json:"isTrending"`
}

type GradientInput struct {
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Colors      []ColorStop `json:"colors"`
	Direction   *int        `json:"direction"`
	Type        *string     `json:"type"`
}

// Validate checks the input and returns the gradient to store.
func (in GradientInput) Validate() (Gradient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Gradient{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(in.Colors) < 2 {
		return Gradient{}, fmt.Errorf("%w: at least two color stops are required", ErrValidation)
	}

	stops := make([]ColorStop, len(in.Colors))
	for i, stop := range in.Colors {
		color, err := colorspace.Normalize(stop.Color)
		if err != nil {
			return Gradient{}, fmt.Errorf("%w: colors[%d]: %v", ErrValidation, i, err)
		}
		if stop.Position < 0 || stop.Position > 100 {
			return Gradient{}, fmt.Errorf("%w: colors[%d]: position %d outside 0-100", ErrValidation, i, stop.Position)
		}
		stops[i] = ColorStop{Color: color, Position: stop.Position}
	}

	direction := DefaultGradientDirection
	if in.Direction != nil {
		direction = *in.Direction
		if direction < 0 || direction > 360 {
			return Gradient{}, fmt.Errorf("%w: direction %d outside 0-360", ErrValidation, direction)
		}
	}

	kind := DefaultGradientType
	if in.Type != nil {
		kind = GradientType(strings.ToLower(strings.TrimSpace(*in.Type)))
		if !kind.Valid() {
			return Gradient{}, fmt.Errorf("%w: type %q must be linear, radial or conic", ErrValidation, *in.Type)
		}
	}

	description := ""
	if in.Description != nil {
		description = *in.Description
	}

	return Gradient{
		Name:        name,
		Description: description,
		Colors:      stops,
		Direction:   direction,
		Type:        kind,
	}, nil
}

func (t GradientType) Valid() bool {
	switch t {
	case LinearGradient, RadialGradient, ConicGradient:
		return true
	default:
		return false
	}
}

// SortedStops returns the stops ordered by position. Stops at the same
// position keep their declared order.
func (g Gradient) SortedStops() []ColorStop {
	stops := slices.Clone(g.Colors)
	slices.SortStableFunc(stops, func(a, b ColorStop) int {
		return a.Position - b.Position
	})
	return stops
}

// CSS renders g as a CSS gradient function.
func (g Gradient) CSS() string {
	parts := make([]string, 0, len(g.Colors))
	for _, stop := range g.SortedStops() {
		parts = append(parts, fmt.Sprintf("%s %d%%", stop.Color, stop.Position))
	}
	stops := strings.Join(parts, ", ")

	switch g.Type {
	case RadialGradient:
		return fmt.Sprintf("radial-gradient(circle, %s)", stops)
	case ConicGradient:
		return fmt.Sprintf("conic-gradient(%s)", stops)
	default:
		return fmt.Sprintf("linear-gradient(%ddeg, %s)", g.Direction, stops)
	}
}

// CSSDeclaration is the clipboard form of CSS.
func (g Gradient) CSSDeclaration() string {
	return "background: " + g.CSS() + ";"
}

// Clone returns a deep copy of g.
func (g Gradient) Clone() Gradient {
	g.Colors = slices.Clone(g.Colors)
	return g
}
