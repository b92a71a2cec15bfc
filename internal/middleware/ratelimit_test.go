package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("client", 3, time.Minute) {
			t.Fatalf("expected request %d to be allowed", i+1)
		}
	}
	if limiter.Allow("client", 3, time.Minute) {
		t.Fatal("expected request over the limit to be rejected")
	}
	if !limiter.Allow("other-client", 3, time.Minute) {
		t.Fatal("expected a different key to have its own window")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter()

	if !limiter.Allow("client", 1, 10*time.Millisecond) {
		t.Fatal("expected first request to be allowed")
	}
	if limiter.Allow("client", 1, 10*time.Millisecond) {
		t.Fatal("expected second request in window to be rejected")
	}

	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow("client", 1, 10*time.Millisecond) {
		t.Fatal("expected request after window reset to be allowed")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(NewRateLimiter(), 2, time.Minute))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected request %d to pass, got %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 over the limit, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware_NilLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(nil, 1, time.Minute))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected nil limiter to pass everything, got %d", rec.Code)
		}
	}
}
