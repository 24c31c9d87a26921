package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_HeaderIsSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestRequestID_PropagatesValidHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, c.GetString(RequestIDKey)) })

	cases := []struct {
		name   string
		in     string
		reused bool
	}{
		{name: "valid uuid", in: "123e4567-e89b-12d3-a456-426614174000", reused: true},
		{name: "garbage", in: "not-a-uuid", reused: false},
		{name: "absent", in: "", reused: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.in != "" {
				req.Header.Set(RequestIDHeader, tc.in)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			got := w.Header().Get(RequestIDHeader)
			if (got == tc.in) != tc.reused {
				t.Fatalf("header %q for input %q", got, tc.in)
			}
			if w.Body.String() != got {
				t.Fatalf("context id %q != header %q", w.Body.String(), got)
			}
		})
	}
}
