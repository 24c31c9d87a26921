package precompute

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/holidaypulse/internal/holiday"
	"github.com/guttosm/holidaypulse/internal/logger"
)

const maxParallel = 8

// HolidaySource is the part of the calendar service a warm-up needs.
// Calling Holidays stores the resolved set in the service cache.
type HolidaySource interface {
	Holidays(ctx context.Context, region string, year int) ([]holiday.ResolvedHoliday, error)
}

type job struct {
	region string
	year   int
}

// WarmHolidays resolves the holiday set of every (region, year) pair so the
// next request is served from cache.
//
// Behavior:
//   - An empty regions list means every supported region.
//   - Years run from fromYear to fromYear+years-1; years < 1 is treated as 1.
//   - parallel <= 0 means min(NumCPU, 8); larger values are clamped to 8.
//   - The first failure cancels the remaining jobs and is returned.
//
// Returns:
//   - int: number of sets warmed before completion or failure.
//   - error: first error encountered (if any).
func WarmHolidays(ctx context.Context, src HolidaySource, regions []string, fromYear, years, parallel int) (int, error) {
	if len(regions) == 0 {
		regions = holiday.Regions()
	}
	if years < 1 {
		years = 1
	}

	jobs := make([]job, 0, len(regions)*years)
	for _, r := range regions {
		for y := fromYear; y < fromYear+years; y++ {
			jobs = append(jobs, job{region: holiday.Normalize(r), year: y})
		}
	}

	limit := workerCount(parallel)
	log := logger.Component("precompute")
	log.Info().Int("jobs", len(jobs)).Int("max_parallel", limit).Msg("warm-up start")
	start := time.Now()

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, limit)
	done := make(chan struct{}, len(jobs))

loop:
	for _, j := range jobs {
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			break loop
		}

		g.Go(func() error {
			defer func() { <-sem }()
			if err := gctx.Err(); err != nil {
				return err
			}
			hs, err := src.Holidays(gctx, j.region, j.year)
			if err != nil {
				log.Error().Err(err).Str("region", j.region).Int("year", j.year).Msg("warm-up job failed")
				return fmt.Errorf("warm %s %d: %w", j.region, j.year, err)
			}
			log.Debug().Str("region", j.region).Int("year", j.year).Int("holidays", len(hs)).Msg("warmed")
			done <- struct{}{}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// The loop can only stop early when the parent context ends.
		err = ctx.Err()
	}
	warmed := len(done)
	if err != nil {
		return warmed, err
	}
	log.Info().Int("warmed", warmed).Dur("elapsed", time.Since(start)).Msg("warm-up done")
	return warmed, nil
}

func workerCount(parallel int) int {
	if parallel > 0 {
		return min(parallel, maxParallel)
	}
	return min(runtime.NumCPU(), maxParallel)
}
