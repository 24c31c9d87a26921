package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// readyTimeout bounds a single readiness check.
const readyTimeout = 2 * time.Second

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the cache store when it is Postgres).
type HealthHandler struct {
	storePing func(ctx context.Context) error // nil when no external store is configured
}

// NewHealthHandler constructs a HealthHandler with the provided ping function.
//
// Parameters:
//   - storePing (func(context.Context) error): checks that the persistent cache
//     store is reachable. Typically db.PingContext; nil for in-memory caches.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(storePing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{storePing: storePing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the store ping succeeds, 503 otherwise.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the cache store)
	// @Summary      Readiness probe
	// @Description  Returns ready if the cache store is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.storePing == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready", "store": "none"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := h.storePing(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "store": "ok"})
	})
}
