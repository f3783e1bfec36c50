package datastore

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/color-studio/api/models"
)

// Trending set sizes.
const (
	TrendingPaletteLimit  = 6
	TrendingGradientLimit = 4
)

type PaletteRepository interface {
	GetAll() ([]models.Palette, error)
	Get(id int) (models.Palette, error)
	Create(palette models.Palette) (models.Palette, error)
	IncrementUsage(id int) error
	GetTrending(limit int) ([]models.Palette, error)
	RefreshTrending(limit int) error
	Count() (int, error)
}

type GradientRepository interface {
	GetAll() ([]models.Gradient, error)
	Get(id int) (models.Gradient, error)
	Create(gradient models.Gradient) (models.Gradient, error)
	IncrementUsage(id int) error
	GetTrending(limit int) ([]models.Gradient, error)
	RefreshTrending(limit int) error
	Count() (int, error)
}

type NoRowsError struct {
	NoRows bool
	Err    error
}

func (nr NoRowsError) Error() string {
	return fmt.Sprintf("%v: no rows returned for scan: %v", nr.NoRows, nr.Err)
}

func (nr NoRowsError) Unwrap() error {
	return nr.Err
}

func notFound(kind string, id int) NoRowsError {
	return NoRowsError{true, fmt.Errorf("%s %d not found", kind, id)}
}

// rankByUsage orders items by usage count descending, then id ascending,
// and keeps at most limit of them.
func rankByUsage[T any](items []T, limit int, usage func(T) int, id func(T) int) []T {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		if c := cmp.Compare(usage(b), usage(a)); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
