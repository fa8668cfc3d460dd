package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/abhisek/hatchery/internal/species"
)

// MidnightSpec fires at the start of every day.
const MidnightSpec = "0 0 * * *"

// Resolver resolves, and caches, the featured legendary.
type Resolver interface {
	SpeciesFor(ctx context.Context, t time.Time) (species.ID, error)
}

// Scheduler refreshes the legendary cache when the day rolls over so the
// first read of a new day finds it current.
type Scheduler struct {
	cron     *cron.Cron
	resolver Resolver
	logger   *zap.Logger
	now      func() time.Time

	// OnRotate, when set, is called after each successful refresh.
	OnRotate func(at time.Time, id species.ID)
}

// New creates a scheduler running in loc.
func New(resolver Resolver, loc *time.Location, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// Start refreshes once immediately, then at every local midnight.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("starting rotation scheduler")

	if _, err := s.cron.AddFunc(MidnightSpec, func() { s.refresh(ctx) }); err != nil {
		return fmt.Errorf("schedule rotation: %w", err)
	}
	s.refresh(ctx)
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping rotation scheduler")
	<-s.cron.Stop().Done()
}

// Next returns the time of the next scheduled refresh.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// RunOnce performs a single refresh at the current time.
func (s *Scheduler) RunOnce(ctx context.Context) (species.ID, error) {
	at := s.now()
	id, err := s.resolver.SpeciesFor(ctx, at)
	if err != nil {
		return 0, err
	}
	if s.OnRotate != nil {
		s.OnRotate(at, id)
	}
	return id, nil
}

func (s *Scheduler) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	id, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("failed to refresh legendary", zap.Error(err))
		return
	}
	s.logger.Info("legendary refreshed", zap.Int("species", int(id)))
}
