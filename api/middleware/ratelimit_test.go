package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow_WithinBurst(t *testing.T) {
	limiter := NewRateLimiter(60, 5)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"), "request %d should be allowed", i)
	}
}

func TestRateLimiter_Allow_BurstExceeded(t *testing.T) {
	limiter := NewRateLimiter(60, 2)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
}

func TestRateLimiter_Allow_ClientsAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(60, 1)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestRateLimitMiddleware_Returns429WhenExceeded(t *testing.T) {
	limiter := NewRateLimiter(60, 1)
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/render", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "60", first.Header().Get("X-RateLimit-Limit"))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "Too many requests")
}

func TestExtractIP_XForwardedForFirstEntry(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")

	assert.Equal(t, "9.9.9.9", extractIP(req))
}

func TestExtractIP_XRealIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Real-IP", "9.9.9.9")

	assert.Equal(t, "9.9.9.9", extractIP(req))
}

func TestExtractIP_FallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	assert.Equal(t, "1.2.3.4:5678", extractIP(req))
}
