package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/color-studio/api/datastore"
	"github.com/color-studio/api/models"
)

type failingGradients struct {
	*datastore.MemoryGradientStore
}

var errRefresh = errors.New("refresh failed")

func (failingGradients) RefreshTrending(int) error { return errRefresh }

func seededStores(t *testing.T) (*datastore.MemoryPaletteStore, *datastore.MemoryGradientStore) {
	t.Helper()

	palettes := datastore.NewMemoryPaletteStore()
	gradients := datastore.NewMemoryGradientStore()
	if err := datastore.Seed(palettes, gradients); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	return palettes, gradients
}

func trendingIDs(t *testing.T, palettes []models.Palette) map[int]bool {
	t.Helper()

	ids := map[int]bool{}
	for _, p := range palettes {
		if p.IsTrending {
			ids[p.ID] = true
		}
	}
	return ids
}

func TestRefreshTrendingFlagsTopPalettes(t *testing.T) {
	t.Parallel()

	palettes, gradients := seededStores(t)
	for i := 0; i < 3; i++ {
		palettes.IncrementUsage(6)
	}

	s := NewScheduler(palettes, gradients, time.Minute)
	if err := s.RefreshTrending(); err != nil {
		t.Fatalf("RefreshTrending returned error: %v", err)
	}

	all, _ := palettes.GetAll()
	flagged := trendingIDs(t, all)
	if len(flagged) != datastore.TrendingPaletteLimit {
		t.Errorf("%d palettes flagged, want %d", len(flagged), datastore.TrendingPaletteLimit)
	}
	if !flagged[6] {
		t.Errorf("most used palette not flagged")
	}

	grads, _ := gradients.GetAll()
	for _, g := range grads {
		if !g.IsTrending {
			t.Errorf("gradient %d not flagged with only %d gradients stored", g.ID, len(grads))
		}
	}
}

func TestRefreshTrendingReportsErrors(t *testing.T) {
	t.Parallel()

	palettes, gradients := seededStores(t)
	s := NewScheduler(palettes, failingGradients{gradients}, time.Minute)

	if err := s.RefreshTrending(); !errors.Is(err, errRefresh) {
		t.Errorf("RefreshTrending error = %v, want %v", err, errRefresh)
	}

	all, _ := palettes.GetAll()
	if len(trendingIDs(t, all)) == 0 {
		t.Errorf("palettes not refreshed when gradients failed")
	}
}

func TestStartRefreshesImmediately(t *testing.T) {
	t.Parallel()

	palettes, gradients := seededStores(t)
	s := NewScheduler(palettes, gradients, time.Hour)
	s.Start()
	defer s.Stop()

	all, _ := palettes.GetAll()
	if len(trendingIDs(t, all)) != datastore.TrendingPaletteLimit {
		t.Errorf("Start did not refresh trending flags")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()

	palettes, gradients := seededStores(t)
	s := NewScheduler(palettes, gradients, 10*time.Millisecond)
	s.Start()
	s.Stop()
	s.Stop()
}

func TestNewSchedulerDefaultInterval(t *testing.T) {
	t.Parallel()

	s := NewScheduler(datastore.NewMemoryPaletteStore(), datastore.NewMemoryGradientStore(), 0)
	if s.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", s.interval, DefaultInterval)
	}
}
