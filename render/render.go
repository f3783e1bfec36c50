// Package render rasterizes palettes and gradients into PNG images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/color-studio/api/colorspace"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 400
	MaxDimension  = 4096
)

var (
	ErrNoColors    = errors.New("render: no colors")
	ErrInvalidSize = errors.New("render: invalid image size")
)

var (
	labelColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	shadowColor = color.NRGBA{A: 0x80}
)

// Size resolves a requested size, substituting the defaults for zero
// values. Negative or oversized dimensions are rejected.
func Size(width, height int) (int, int, error) {
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if width < 0 || height < 0 || width > MaxDimension || height > MaxDimension {
		return 0, 0, fmt.Errorf("%w: %dx%d (max %d)", ErrInvalidSize, width, height, MaxDimension)
	}
	return width, height, nil
}

// PaletteStrip paints one vertical band per color, left to right, each
// labeled with its hex value.
func PaletteStrip(colors []string, width, height int) (*image.NRGBA, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	width, height, err := Size(width, height)
	if err != nil {
		return nil, err
	}

	fills := make([]color.NRGBA, len(colors))
	labels := make([]string, len(colors))
	for i, c := range colors {
		rgb, err := colorspace.HexToRGB(c)
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		fills[i] = color.NRGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 0xff}
		labels[i] = rgb.Hex()
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	n := len(colors)
	for i := range fills {
		band := image.Rect(i*width/n, 0, (i+1)*width/n, height)
		draw.Draw(img, band, image.NewUniform(fills[i]), image.Point{}, draw.Src)
		drawLabel(img.SubImage(band).(*image.NRGBA), labels[i])
	}
	return img, nil
}

// drawLabel centers text in dst with a one pixel drop shadow, clipped to
// the bounds of dst.
func drawLabel(dst draw.Image, text string) {
	band := dst.Bounds()
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Face: face}

	advance := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	x := band.Min.X + (band.Dx()-advance)/2
	y := band.Min.Y + (band.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2

	d.Src = image.NewUniform(shadowColor)
	d.Dot = fixed.P(x+1, y+1)
	d.DrawString(text)

	d.Src = image.NewUniform(labelColor)
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}
