package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/holidaypulse/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that recovers from panics in
// the handler chain.
//
// Behavior:
//   - Logs the panic value, the request id and path, and the stack trace.
//   - Records the panic in c.Errors.
//   - Responds 500 with a dto.ErrorResponse that does not echo the panic value.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			rid, _ := c.Get(RequestIDKey)
			logger.L().Error().
				Str("panic", fmt.Sprint(r)).
				Str("request_id", toString(rid)).
				Str("path", c.Request.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			_ = c.Error(fmt.Errorf("panic: %v", r))
			AbortWithError(c, http.StatusInternalServerError, "Internal server error", nil)
		}()

		c.Next()
	}
}
