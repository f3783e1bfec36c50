package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/color-studio/api/colorspace"
)

var ErrValidation = errors.New("validation failed")

type Palette struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
	Tags        []string `json:"tags"`
	UsageCount  int      `json:"usageCount"`
	IsTrending  bool     `json:"isTrending"`
}

// PaletteInput is the create request body. Optional fields are pointers
// or nil slices and get explicit defaults in Validate.
type PaletteInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Colors      []string `json:"colors"`
	Tags        []string `json:"tags"`
}

// Validate checks the input and returns the palette to store, with
// colors in canonical form. ID and usage fields are left zero.
func (in PaletteInput) Validate() (Palette, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Palette{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(in.Colors) == 0 {
		return Palette{}, fmt.Errorf("%w: at least one color is required", ErrValidation)
	}

	colors := make([]string, len(in.Colors))
	for i, c := range in.Colors {
		normalized, err := colorspace.Normalize(c)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: colors[%d]: %v", ErrValidation, i, err)
		}
		colors[i] = normalized
	}

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	description := ""
	if in.Description != nil {
		description = *in.Description
	}

	return Palette{
		Name:        name,
		Description: description,
		Colors:      colors,
		Tags:        tags,
	}, nil
}

// Clone returns a deep copy of p.
func (p Palette) Clone() Palette {
	p.Colors = append([]string(nil), p.Colors...)
	p.Tags = append([]string{}, p.Tags...)
	return p
}
