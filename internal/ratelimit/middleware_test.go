package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (Decision, error) {
	return Decision{}, errors.New("redis down")
}

func newRouter(l Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(l))
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddlewareRejectsOverLimit(t *testing.T) {
	r := newRouter(NewMemoryLimiter(2, time.Minute))

	assert.Equal(t, http.StatusOK, doRequest(r, "192.0.2.1:1000").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "192.0.2.1:1001").Code)

	w := doRequest(r, "192.0.2.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, doRequest(r, "192.0.2.2:1000").Code)
}

func TestMiddlewareFailsOpen(t *testing.T) {
	r := newRouter(failingLimiter{})
	assert.Equal(t, http.StatusOK, doRequest(r, "192.0.2.1:1000").Code)
}
