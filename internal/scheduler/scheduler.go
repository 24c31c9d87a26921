package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/guttosm/holidaypulse/internal/logger"
	"github.com/guttosm/holidaypulse/internal/precompute"
)

// Sweeper removes expired cache entries and reports how many went.
type Sweeper func(ctx context.Context) (int64, error)

// Options configures the periodic warm-up.
type Options struct {
	Spec     string         // five-field cron expression
	Location *time.Location // schedule and "current year" timezone; nil means UTC
	Regions  []string       // empty means every supported region
	Years    int            // current year plus Years-1 following years
	Parallel int
	Now      func() time.Time
}

// Scheduler runs the warm-up and cache sweep on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	src    precompute.HolidaySource
	sweep  Sweeper
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc
	log    zerolog.Logger
}

// New registers the job. A malformed Spec is an error. sweep may be nil.
func New(src precompute.HolidaySource, sweep Sweeper, opts Options) (*Scheduler, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(opts.Location)),
		src:    src,
		sweep:  sweep,
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		log:    logger.Component("scheduler"),
	}

	if _, err := s.cron.AddFunc(opts.Spec, s.run); err != nil {
		cancel()
		return nil, fmt.Errorf("add warm-up job %q: %w", opts.Spec, err)
	}
	return s, nil
}

// Start begins firing jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Str("spec", s.opts.Spec).Str("tz", s.opts.Location.String()).Msg("scheduler started")
}

// Stop cancels a running job and waits for it to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// Next is when the job fires next, zero if the scheduler is not running.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) run() {
	if err := s.RunOnce(s.ctx); err != nil {
		s.log.Error().Err(err).Msg("scheduled warm-up failed")
	}
}

// RunOnce sweeps expired entries and warms the holiday sets starting at
// the current year in the scheduler's timezone.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if s.sweep != nil {
		n, err := s.sweep(ctx)
		if err != nil {
			// Stale rows are never served, so a failed sweep does not block the warm-up.
			s.log.Warn().Err(err).Msg("cache sweep failed")
		} else {
			s.log.Info().Int64("removed", n).Msg("cache swept")
		}
	}

	year := s.opts.Now().In(s.opts.Location).Year()
	n, err := precompute.WarmHolidays(ctx, s.src, s.opts.Regions, year, s.opts.Years, s.opts.Parallel)
	if err != nil {
		return fmt.Errorf("warm-up from %d: %w", year, err)
	}
	s.log.Info().Int("sets", n).Int("from_year", year).Msg("scheduled warm-up done")
	return nil
}
