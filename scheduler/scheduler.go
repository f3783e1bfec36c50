package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/color-studio/api/datastore"
)

const DefaultInterval = 5 * time.Minute

// Scheduler periodically recomputes which palettes and gradients carry
// the trending flag.
type Scheduler struct {
	PaletteRepo  datastore.PaletteRepository
	GradientRepo datastore.GradientRepository
	interval     time.Duration
	ticker       *time.Ticker
	done         chan bool
	stopOnce     sync.Once
	logger       *slog.Logger
}

func NewScheduler(palettes datastore.PaletteRepository, gradients datastore.GradientRepository, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		PaletteRepo:  palettes,
		GradientRepo: gradients,
		interval:     interval,
		done:         make(chan bool),
		logger:       slog.Default().WithGroup("scheduler"),
	}
}

// Start refreshes once right away, then on every interval until Stop.
func (s *Scheduler) Start() {
	s.logger.Info("scheduler started", "interval", s.interval)

	if err := s.RefreshTrending(); err != nil {
		s.logger.Error("initial trending refresh failed", "error", err)
	}

	s.ticker = time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-s.ticker.C:
				if err := s.RefreshTrending(); err != nil {
					s.logger.Error("trending refresh failed", "error", err)
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Stop stops the scheduler. Calling it more than once is a no-op.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
		s.logger.Info("scheduler stopped")
	})
}

// RefreshTrending flags the current top palettes and gradients
func (s *Scheduler) RefreshTrending() error {
	var errs []error
	if err := s.PaletteRepo.RefreshTrending(datastore.TrendingPaletteLimit); err != nil {
		errs = append(errs, fmt.Errorf("palettes: %w", err))
	}
	if err := s.GradientRepo.RefreshTrending(datastore.TrendingGradientLimit); err != nil {
		errs = append(errs, fmt.Errorf("gradients: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.logger.Debug("trending flags refreshed")
	return nil
}
