// Package extractor ranks the dominant colors of a decoded RGBA pixel
// buffer by sampled, quantized frequency.
package extractor

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"
	"slices"

	"github.com/color-studio/api/colorspace"
)

// Tunables for DefaultOptions.
const (
	// DefaultStride samples one pixel out of every DefaultStride.
	DefaultStride = 10
	// DefaultBucketSize is the quantization step per channel; 17 maps
	// 256 levels onto 16 buckets.
	DefaultBucketSize = 17
	// DefaultMaxColors caps the returned palette.
	DefaultMaxColors = 12
	// DefaultAlphaThreshold is the lowest alpha treated as opaque.
	DefaultAlphaThreshold = 128
)

var ErrMalformedBuffer = errors.New("pixel buffer does not match declared dimensions")

// ExtractedColor is one entry of a ranked palette. Percentage is
// relative to the retained entries, not to every sampled pixel.
type ExtractedColor struct {
	Color      string `json:"color"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type Options struct {
	Stride         int
	BucketSize     int
	MaxColors      int
	AlphaThreshold uint8
}

var DefaultOptions = Options{
	Stride:         DefaultStride,
	BucketSize:     DefaultBucketSize,
	MaxColors:      DefaultMaxColors,
	AlphaThreshold: DefaultAlphaThreshold,
}

// Extract runs DefaultOptions over pix, a row-major RGBA buffer with 4
// bytes per pixel.
func Extract(pix []uint8, width, height int) ([]ExtractedColor, error) {
	return DefaultOptions.Extract(pix, width, height)
}

// Extract samples pix, drops translucent pixels, quantizes the rest and
// returns the most frequent colors in descending count order. Equal
// counts keep the order in which the colors were first sampled. An image
// with no opaque samples yields an empty slice.
func (o Options) Extract(pix []uint8, width, height int) ([]ExtractedColor, error) {
	if err := validateBuffer(pix, width, height); err != nil {
		return nil, err
	}
	o = o.withDefaults()

	type bucket struct {
		hex   string
		count int
	}
	index := make(map[string]int)
	var buckets []bucket

	pixels := len(pix) / 4
	for p := 0; p < pixels; p += o.Stride {
		i := p * 4
		if pix[i+3] < o.AlphaThreshold {
			continue
		}

		hex := colorspace.RGBToHex(
			o.quantize(pix[i]),
			o.quantize(pix[i+1]),
			o.quantize(pix[i+2]),
		)
		if at, ok := index[hex]; ok {
			buckets[at].count++
			continue
		}
		index[hex] = len(buckets)
		buckets = append(buckets, bucket{hex: hex, count: 1})
	}

	slices.SortStableFunc(buckets, func(a, b bucket) int {
		return b.count - a.count
	})
	if len(buckets) > o.MaxColors {
		buckets = buckets[:o.MaxColors]
	}

	total := 0
	for _, b := range buckets {
		total += b.count
	}

	colors := make([]ExtractedColor, 0, len(buckets))
	for _, b := range buckets {
		colors = append(colors, ExtractedColor{
			Color:      b.hex,
			Count:      b.count,
			Percentage: int(math.Round(100 * float64(b.count) / float64(total))),
		})
	}

	return colors, nil
}

func (o Options) quantize(channel uint8) float64 {
	step := float64(o.BucketSize)
	return math.Min(255, math.Round(float64(channel)/step)*step)
}

func (o Options) withDefaults() Options {
	if o.Stride < 1 {
		o.Stride = DefaultStride
	}
	if o.BucketSize < 1 {
		o.BucketSize = DefaultBucketSize
	}
	if o.MaxColors < 1 {
		o.MaxColors = DefaultMaxColors
	}
	return o
}

func validateBuffer(pix []uint8, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrMalformedBuffer, width, height)
	}
	if len(pix)%4 != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of 4", ErrMalformedBuffer, len(pix))
	}
	if width*height*4 != len(pix) {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrMalformedBuffer, width, height, width*height*4, len(pix))
	}
	return nil
}

// PixelsFromImage flattens img into a non-premultiplied RGBA buffer
// suitable for Extract.
func PixelsFromImage(img image.Image) ([]uint8, int, int) {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix, b.Dx(), b.Dy()
}
