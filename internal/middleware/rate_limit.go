package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "todolist/pkg/errors"
	"todolist/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute
)

// RateLimit answers 429 once a client IP exhausts its token bucket.
// It is a no-op when rate limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if !m.limiter.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s exceeded", c.ClientIP())
			response.AbortWithError(c, pkgErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst int) *rateLimiter {
	if burst <= 0 {
		burst = max(requestsPerMin/10, 1)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
