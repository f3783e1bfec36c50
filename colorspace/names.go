package colorspace

import (
	"math"

	"golang.org/x/image/colornames"
)

// Name describes the closest SVG 1.1 named color.
type Name struct {
	Value           string `json:"value"`
	ClosestNamedHex string `json:"closest_named_hex"`
	ExactMatch      bool   `json:"exact_match_name"`
	Distance        int    `json:"distance"`
}

// ClosestName finds the named color nearest to c by Euclidean RGB
// distance. Names are scanned in sorted order and the first minimum
// wins, so aliases such as "aqua"/"cyan" resolve deterministically.
func ClosestName(c RGB) Name {
	best := Name{Distance: math.MaxInt}
	bestSq := math.MaxInt

	for _, name := range colornames.Names {
		nc := colornames.Map[name]
		dr := c.R - int(nc.R)
		dg := c.G - int(nc.G)
		db := c.B - int(nc.B)
		sq := dr*dr + dg*dg + db*db
		if sq < bestSq {
			bestSq = sq
			best = Name{
				Value:           name,
				ClosestNamedHex: RGBToHex(float64(nc.R), float64(nc.G), float64(nc.B)),
				ExactMatch:      sq == 0,
				Distance:        int(math.Round(math.Sqrt(float64(sq)))),
			}
		}
	}

	return best
}
