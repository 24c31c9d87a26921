package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/holidaypulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const requestTimeout = 10 * time.Second

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Answers unknown routes with a JSON 404.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - rateLimitPerMinute (int): Requests allowed per client IP per minute.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, rateLimitPerMinute int) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(rateLimitPerMinute),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Unknown routes ───────────────────────────
	router.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, http.StatusNotFound, "route not found", nil)
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/regions", handler.GetRegions)
		v1.GET("/holidays", handler.GetHolidays)
		v1.GET("/holidays/check", handler.CheckDate)
		v1.GET("/business-days", handler.GetBusinessDays)
		v1.GET("/business-days/last", handler.GetLastBusinessDays)
		v1.GET("/business-hours", handler.GetBusinessHours)
		v1.GET("/next-occurrence", handler.GetNextOccurrence)
	}

	return router
}
