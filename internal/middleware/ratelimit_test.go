package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/config"

	"github.com/stretchr/testify/assert"
)

func rateLimitedHandler(rps float64, burst int) http.Handler {
	cfg := &config.Config{}
	cfg.RateLimit.RequestsPerSecond = rps
	cfg.RateLimit.Burst = burst
	rl := NewRateLimiter(cfg)
	return rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	h := rateLimitedHandler(1, 3)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bills", nil)
		req.RemoteAddr = "10.0.0.1:51000"
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	h := rateLimitedHandler(0.001, 1)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bills", nil)
	req.RemoteAddr = "10.0.0.2:51000"
	h.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/bills", nil)
	req2.RemoteAddr = "10.0.0.2:51000"
	h.ServeHTTP(second, req2)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error": "Too many requests"}`, second.Body.String())
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	h := rateLimitedHandler(0.001, 1)

	for _, addr := range []string{"10.0.0.3:1", "10.0.0.4:1", "10.0.0.5:1"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bills", nil)
		req.RemoteAddr = addr
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		realIP     string
		want       string
	}{
		{"remote addr", "192.168.1.10:44321", "", "", "192.168.1.10"},
		{"forwarded for wins", "10.0.0.1:80", "203.94.10.5, 10.0.0.1", "", "203.94.10.5"},
		{"real ip fallback", "10.0.0.1:80", "", "203.94.10.6", "203.94.10.6"},
		{"ipv6 loopback normalized", "[::1]:8080", "", "", "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
