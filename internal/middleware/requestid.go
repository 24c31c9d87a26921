package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID is a Gin middleware that injects a unique identifier
// for each incoming HTTP request.
//
// Behavior:
//   - Reuses an incoming X-Request-ID header when it is a valid UUID, so a
//     caller can correlate its own logs; otherwise generates a new UUID (v4).
//   - Stores it in the Gin context under the key "request_id".
//   - Adds it to the response headers as "X-Request-ID".
//   - Ensures traceability of requests across logs and clients.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
//
// Example log usage:
//
//	rid, _ := c.Get(middleware.RequestIDKey)
//	log.Printf("request_id=%s some log message", rid)
//
// Returns:
//   - gin.HandlerFunc: the middleware function.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		// Store in context for downstream usage
		c.Set(RequestIDKey, id)

		// Expose in response headers for clients
		c.Writer.Header().Set(RequestIDHeader, id)

		// Continue with the next handlers
		c.Next()
	}
}
