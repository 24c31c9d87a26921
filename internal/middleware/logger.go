package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/holidaypulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, and request ID (if available).
//
// Behavior:
//   - Captures start time before request handling.
//   - After request is processed, calculates latency.
//   - Logs method, path, status, latency in ms, and request_id (if injected by RequestID()).
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	request_id=123e4567-e89b-12d3-a456-426614174000 method=GET path=/api/v1/holidays status=200 latency_ms=15
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		// Process request
		c.Next()

		// Compute latency and get status
		latency := time.Since(start)
		status := c.Writer.Status()

		// Get request_id if available
		rid, _ := c.Get(RequestIDKey)

		// Structured JSON log; server errors are raised to warn
		ev := logger.L().Info()
		if status >= 500 {
			ev = logger.L().Warn()
		}
		ev.
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
