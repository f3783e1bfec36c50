package colorspace

import (
	"fmt"
	"math"
)

// CMYK holds the four inks in percent.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}

// RGBToCMYK converts 8-bit channels to CMYK. Pure black has no
// chromatic ink: c=m=y=0, k=100.
func RGBToCMYK(r, g, b int) CMYK {
	rn := clamp(float64(r), 0, 255) / 255
	gn := clamp(float64(g), 0, 255) / 255
	bn := clamp(float64(b), 0, 255) / 255

	k := 1 - math.Max(rn, math.Max(gn, bn))
	if k == 1 {
		return CMYK{K: 100}
	}

	return CMYK{
		C: percent((1 - rn - k) / (1 - k)),
		M: percent((1 - gn - k) / (1 - k)),
		Y: percent((1 - bn - k) / (1 - k)),
		K: percent(k),
	}
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}
