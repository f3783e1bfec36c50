package datastore

import (
	"sync"

	"github.com/color-studio/api/models"
)

// record is what memoryTable needs from a stored model.
type record interface {
	models.Palette | models.Gradient
}

// memoryTable is an id-keyed map with sequential ids starting at 1.
// Reads and writes hand out copies so callers never share storage.
type memoryTable[T record] struct {
	mu     sync.RWMutex
	kind   string
	rows   map[int]T
	nextID int

	clone  func(T) T
	id     func(*T) *int
	usage  func(*T) *int
	trendy func(*T) *bool
}

func (t *memoryTable[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for id := 1; id < t.nextID; id++ {
		if row, ok := t.rows[id]; ok {
			out = append(out, t.clone(row))
		}
	}
	return out
}

func (t *memoryTable[T]) get(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, notFound(t.kind, id)
	}
	return t.clone(row), nil
}

func (t *memoryTable[T]) create(row T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	row = t.clone(row)
	*t.id(&row) = t.nextID
	*t.usage(&row) = 0
	*t.trendy(&row) = false
	t.rows[t.nextID] = row
	t.nextID++
	return t.clone(row)
}

func (t *memoryTable[T]) incrementUsage(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return notFound(t.kind, id)
	}
	*t.usage(&row)++
	t.rows[id] = row
	return nil
}

func (t *memoryTable[T]) trending(limit int) []T {
	return rankByUsage(t.all(), limit,
		func(row T) int { return *t.usage(&row) },
		func(row T) int { return *t.id(&row) },
	)
}

func (t *memoryTable[T]) refreshTrending(limit int) {
	top := map[int]bool{}
	for _, row := range t.trending(limit) {
		top[*t.id(&row)] = true
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for id, row := range t.rows {
		*t.trendy(&row) = top[id]
		t.rows[id] = row
	}
}

func (t *memoryTable[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// MemoryPaletteStore keeps palettes in process memory.
type MemoryPaletteStore struct {
	table *memoryTable[models.Palette]
}

func NewMemoryPaletteStore() *MemoryPaletteStore {
	return &MemoryPaletteStore{table: &memoryTable[models.Palette]{
		kind:   "palette",
		rows:   make(map[int]models.Palette),
		nextID: 1,
		clone:  models.Palette.Clone,
		id:     func(p *models.Palette) *int { return &p.ID },
		usage:  func(p *models.Palette) *int { return &p.UsageCount },
		trendy: func(p *models.Palette) *bool { return &p.IsTrending },
	}}
}

func (s *MemoryPaletteStore) GetAll() ([]models.Palette, error) { return s.table.all(), nil }

func (s *MemoryPaletteStore) Get(id int) (models.Palette, error) { return s.table.get(id) }

func (s *MemoryPaletteStore) Create(palette models.Palette) (models.Palette, error) {
	return s.table.create(palette), nil
}

func (s *MemoryPaletteStore) IncrementUsage(id int) error { return s.table.incrementUsage(id) }

func (s *MemoryPaletteStore) GetTrending(limit int) ([]models.Palette, error) {
	return s.table.trending(limit), nil
}

func (s *MemoryPaletteStore) RefreshTrending(limit int) error {
	s.table.refreshTrending(limit)
	return nil
}

func (s *MemoryPaletteStore) Count() (int, error) { return s.table.count(), nil }

// MemoryGradientStore keeps gradients in process memory.
type MemoryGradientStore struct {
	table *memoryTable[models.Gradient]
}

func NewMemoryGradientStore() *MemoryGradientStore {
	return &MemoryGradientStore{table: &memoryTable[models.Gradient]{
		kind:   "gradient",
		rows:   make(map[int]models.Gradient),
		nextID: 1,
		clone:  models.Gradient.Clone,
		id:     func(g *models.Gradient) *int { return &g.ID },
		usage:  func(g *models.Gradient) *int { return &g.UsageCount },
		trendy: func(g *models.Gradient) *bool { return &g.IsTrending },
	}}
}

func (s *MemoryGradientStore) GetAll() ([]models.Gradient, error) { return s.table.all(), nil }

func (s *MemoryGradientStore) Get(id int) (models.Gradient, error) { return s.table.get(id) }

func (s *MemoryGradientStore) Create(gradient models.Gradient) (models.Gradient, error) {
	return s.table.create(gradient), nil
}

func (s *MemoryGradientStore) IncrementUsage(id int) error { return s.table.incrementUsage(id) }

func (s *MemoryGradientStore) GetTrending(limit int) ([]models.Gradient, error) {
	return s.table.trending(limit), nil
}

func (s *MemoryGradientStore) RefreshTrending(limit int) error {
	s.table.refreshTrending(limit)
	return nil
}

func (s *MemoryGradientStore) Count() (int, error) { return s.table.count(), nil }
