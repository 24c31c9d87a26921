package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/holidaypulse/config"
	"github.com/guttosm/holidaypulse/internal/api"
	"github.com/guttosm/holidaypulse/internal/scheduler"
	"github.com/guttosm/holidaypulse/internal/timezone"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the cache backend selected by CACHE_BACKEND (Postgres via InitPostgres()).
//   - Initializes the service layer (CalendarService).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Starts the warm-up scheduler when WARMUP_SCHEDULE is set.
//   - Provides a cleanup function to stop the scheduler and close the store.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Open the cache store
	b, err := openBackend(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Initialize service layer (business logic)
	svc := newService(cfg, b.cache)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.RateLimitPerMinute)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(b.ping)
	healthHandler.Register(router)

	// Periodic warm-up
	var sched *scheduler.Scheduler
	if cfg.Warmup.Schedule != "" {
		loc, err := timezone.Load(cfg.Calendar.DefaultTimezone)
		if err != nil {
			b.close()
			return nil, nil, fmt.Errorf("scheduler timezone: %w", err)
		}
		sched, err = scheduler.New(svc, b.sweep, scheduler.Options{
			Spec:     cfg.Warmup.Schedule,
			Location: loc,
			Regions:  cfg.Warmup.Regions,
			Years:    cfg.Warmup.Years,
		})
		if err != nil {
			b.close()
			return nil, nil, err
		}
		sched.Start()
	}

	// Cleanup resources on shutdown
	cleanup := func() {
		if sched != nil {
			sched.Stop()
		}
		b.close()
	}

	return router, cleanup, nil
}
