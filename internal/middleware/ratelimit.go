package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/holidaypulse/internal/domain/dto"
)

// visitor is one client's token bucket and when it was last used.
type visitor struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps a token bucket per client IP. The bucket holds limit
// tokens and refills one every window/limit.
// NOTE: state is per process; multi-instance deployments need a shared store.
type rateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	if limit < 1 {
		limit = 1
	}
	return &rateLimiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		window:   window,
		now:      time.Now,
	}
}

// allow takes a token from ip's bucket and reports whether one was available.
func (rl *rateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	if now.Sub(rl.lastSweep) >= rl.window {
		rl.sweep(now)
	}
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(rl.every, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.lim.AllowN(now, 1)
}

// sweep drops visitors idle for a full window; their buckets have refilled,
// so a fresh limiter is equivalent. Runs at most once per window. Caller holds mu.
func (rl *rateLimiter) sweep(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= rl.window {
			delete(rl.visitors, ip)
		}
	}
	rl.lastSweep = now
}

// RateLimiter is an in-memory middleware that limits the number of requests per client IP.
//
// Behavior:
//   - Each client gets a bucket of perMinute requests that refills continuously over a minute.
//   - Identifies clients by their IP address.
//   - If limit exceeded, returns HTTP 429 Too Many Requests with a dto.ErrorResponse.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter(config.AppConfig.Server.RateLimitPerMinute))
func RateLimiter(perMinute int) gin.HandlerFunc {
	return rateLimitWith(newRateLimiter(perMinute, time.Minute))
}

func rateLimitWith(rl *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
