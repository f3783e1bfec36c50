package colorspace

import "math"

// Level is a WCAG conformance level for normal-size text.
type Level string

const (
	AAA  Level = "AAA"
	AA   Level = "AA"
	Fail Level = "Fail"
)

// WCAG thresholds.
const (
	ThresholdAAA       = 7.0
	ThresholdAA        = 4.5
	ThresholdLargeText = 3.0
)

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel int) float64 {
	v := clamp(float64(channel), 0, 255) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b. The
// result is at least 1 and does not depend on argument order.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := HexToRGB(a)
	if err != nil {
		return 0, err
	}
	cb, err := HexToRGB(b)
	if err != nil {
		return 0, err
	}
	return RGBContrastRatio(ca, cb), nil
}

// RGBContrastRatio is ContrastRatio for already parsed colors.
func RGBContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// Compliance classifies ratio for normal text.
func Compliance(ratio float64) Level {
	switch {
	case ratio >= ThresholdAAA:
		return AAA
	case ratio >= ThresholdAA:
		return AA
	default:
		return Fail
	}
}

// PassesLargeText reports whether ratio meets the large-text minimum. It
// is informational and does not change Compliance.
func PassesLargeText(ratio float64) bool {
	return ratio >= ThresholdLargeText
}
