package app

import (
	"context"
	"fmt"

	"github.com/guttosm/holidaypulse/config"
	"github.com/guttosm/holidaypulse/internal/cache"
	"github.com/guttosm/holidaypulse/internal/scheduler"
	"github.com/guttosm/holidaypulse/internal/service"
	"github.com/guttosm/holidaypulse/internal/storage"
)

// backend is the configured cache store plus its housekeeping hooks.
// ping is nil unless the store lives outside the process.
type backend struct {
	cache cache.Cache
	sweep scheduler.Sweeper
	ping  func(ctx context.Context) error
	close func()
}

// openBackend selects the cache store named by cfg.Cache.Backend.
func openBackend(cfg config.Config) (backend, error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory, "":
		mem := cache.NewMemory()
		return backend{
			cache: mem,
			sweep: func(context.Context) (int64, error) { return int64(mem.Purge()), nil },
			close: func() {},
		}, nil

	case config.CachePostgres:
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return backend{}, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		repo := storage.NewCacheRepository(db)
		return backend{
			cache: repo,
			sweep: repo.DeleteExpired,
			ping:  db.PingContext,
			close: func() { _ = db.Close() },
		}, nil

	case config.CacheNone:
		return backend{cache: cache.Nop{}, close: func() {}}, nil

	default:
		return backend{}, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func newService(cfg config.Config, c cache.Cache) service.CalendarService {
	return service.NewCalendarService(c, service.Settings{
		CacheTTL:        cfg.Cache.TTL,
		DefaultTimezone: cfg.Calendar.DefaultTimezone,
	})
}

// NewCalendarService builds the calendar service on the configured cache
// backend without any HTTP wiring. Used by the CLI modes.
//
// Returns:
//   - service.CalendarService: ready to use.
//   - func(): releases the cache store.
//   - error: if the cache store cannot be opened.
func NewCalendarService(cfg config.Config) (service.CalendarService, func(), error) {
	b, err := openBackend(cfg)
	if err != nil {
		return nil, nil, err
	}
	return newService(cfg, b.cache), b.close, nil
}
