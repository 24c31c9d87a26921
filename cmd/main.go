package main

//
//  @title           holidaypulse API
//  @version         1.0
//  @description     Holiday calendars, business-day arithmetic and recurrence scheduling.
//  @termsOfService  https://github.com/guttosm/holidaypulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/holidaypulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        holidays
//  @tag.description Holiday tables and single-date checks
//
//  @tag.name        business-days
//  @tag.description Business-day counting
//
//  @tag.name        recurrence
//  @tag.description Next occurrence of daily, weekly, monthly and yearly patterns
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/holidaypulse/config"
	_ "github.com/guttosm/holidaypulse/docs" // swagger docs
	"github.com/guttosm/holidaypulse/internal/app"
	"github.com/guttosm/holidaypulse/internal/domain/dto"
	"github.com/guttosm/holidaypulse/internal/holiday"
	"github.com/guttosm/holidaypulse/internal/logger"
	"github.com/guttosm/holidaypulse/internal/precompute"
	"github.com/guttosm/holidaypulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// printHolidays writes the holiday table of region for year as indented JSON.
func printHolidays(ctx context.Context, w io.Writer, svc service.CalendarService, region string, year int) error {
	hs, err := svc.Holidays(ctx, region, year)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.HolidaysResponse{
		Region:   holiday.Normalize(region),
		Year:     year,
		Count:    len(hs),
		Holidays: dto.NewHolidays(hs),
	})
}

// splitRegions parses a comma separated --regions flag; empty means all.
// checkWarmBackend rejects backends that do not outlive the process, since
// a warm run would fill them and exit.
func checkWarmBackend(backend string) error {
	if backend != config.CachePostgres {
		return fmt.Errorf("warm mode needs CACHE_BACKEND=%s, got %q", config.CachePostgres, backend)
	}
	return nil
}

func splitRegions(s string) []string {
	var out []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, strings.ToUpper(r))
		}
	}
	return out
}

// main is the entry point of the holidaypulse application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API (and the warm-up scheduler when WARMUP_SCHEDULE is set).
//   - warm:     Precomputes holiday sets into the configured cache once and exits.
//   - holidays: Prints the holidays of --region for --year as JSON and exits.
//
// Flags:
//   - --mode:     Execution mode. Default: "api".
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --region:   Region for holidays mode. Default: "US".
//   - --year:     Year for holidays mode, or first year for warm mode. Default: current year.
//   - --regions:  Comma separated regions for warm mode. Defaults to WARMUP_REGIONS (empty = all).
//   - --years:    Number of years for warm mode. Defaults to WARMUP_YEARS.
//   - --parallel: Concurrent warm-up jobs (0=auto up to CPU, max 8).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api, warm or holidays")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	region := flag.String("region", "US", "Region code for holidays mode")
	year := flag.Int("year", time.Now().Year(), "Year for holidays mode, first year for warm mode")
	regions := flag.String("regions", strings.Join(config.AppConfig.Warmup.Regions, ","), "Comma separated regions for warm mode (empty = all)")
	years := flag.Int("years", config.AppConfig.Warmup.Years, "Number of years to warm")
	parallel := flag.Int("parallel", 0, "How many warm-up jobs run concurrently (0=auto up to CPU, max 8)")
	flag.Parse()

	switch *mode {
	case "warm":
		if err := checkWarmBackend(config.AppConfig.Cache.Backend); err != nil {
			logger.L().Fatal().Err(err).Msg("warm-up refused")
		}
		logger.L().Info().Msg("running warm-up")
		svc, cleanup, err := app.NewCalendarService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("cache init error")
		}
		defer cleanup()

		n, err := precompute.WarmHolidays(ctx, svc, splitRegions(*regions), *year, *years, *parallel)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("warm-up failed")
		}
		logger.L().Info().Int("sets", n).Msg("warm-up completed successfully")

	case "holidays":
		svc, cleanup, err := app.NewCalendarService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("cache init error")
		}
		defer cleanup()

		if err := printHolidays(ctx, os.Stdout, svc, *region, *year); err != nil {
			logger.L().Fatal().Err(err).Msg("holidays failed")
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
