package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"assistente-gestao/pkg/response"
)

// RateLimiter keeps one token bucket per source. Idle sources expire after
// five minutes and at most 1000 are tracked.
type RateLimiter struct {
	mu       sync.Mutex // guards the lookup-or-create in Allow
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewRateLimiter allows requestsPerMin per source with a burst of a tenth of
// that. It returns nil when requestsPerMin is not positive.
func NewRateLimiter(requestsPerMin int) *RateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

// Allow reports whether key may proceed now. A nil limiter allows everything.
func (rl *RateLimiter) Allow(key string) bool {
	if rl == nil {
		return true
	}
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// RateLimit throttles requests per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s exceeded the limit", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
