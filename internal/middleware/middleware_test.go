package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/holidaypulse/internal/domain/dto"
	"github.com/guttosm/holidaypulse/internal/logger"
)

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	logger.InitWithWriter(&logs)
	t.Cleanup(logger.Init)

	r := gin.New()
	r.Use(RequestID(), RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("secret detail") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret detail") {
		t.Fatalf("panic value leaked to client: %s", w.Body.String())
	}
	rid := w.Header().Get(RequestIDHeader)
	if !strings.Contains(logs.String(), "secret detail") || !strings.Contains(logs.String(), rid) {
		t.Fatalf("panic not logged with request id: %s", logs.String())
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 2, lim: 3, expect: http.StatusOK},
		{name: "at limit", reqs: 3, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, lim: 3, expect: http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RateLimiter(tc.lim))
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
			var last int
			for i := 0; i < tc.reqs; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				last = w.Code
			}
			if last != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last)
			}
		})
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.allow("1.1.1.1") || !rl.allow("1.1.1.1") {
		t.Fatalf("first two requests must pass")
	}
	if rl.allow("1.1.1.1") {
		t.Fatalf("third request must be rejected")
	}
	if !rl.allow("2.2.2.2") {
		t.Fatalf("other clients have their own budget")
	}

	// One token per 30s.
	now = now.Add(31 * time.Second)
	if !rl.allow("1.1.1.1") {
		t.Fatalf("half a window must refill one token")
	}
	if rl.allow("1.1.1.1") {
		t.Fatalf("only one token should have refilled")
	}
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(5, time.Minute)
	rl.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		rl.allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	if len(rl.visitors) != 1000 {
		t.Fatalf("visitors = %d, want 1000", len(rl.visitors))
	}

	now = now.Add(time.Minute)
	if !rl.allow("1.1.1.1") {
		t.Fatalf("new client rejected")
	}
	if len(rl.visitors) != 1 {
		t.Fatalf("idle clients not evicted, visitors = %d", len(rl.visitors))
	}
}

func TestErrorHandler_ValidationIs400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(dto.NewErrorResponse("invalid query parameter", assertErr{}))
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "invalid query parameter" || body.ErrorDetails != "boom" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(assertErr{})
		c.String(http.StatusTeapot, "already handled")
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ErrorDetails != "" {
		t.Fatalf("internal details leaked: %q", body.ErrorDetails)
	}
}
