package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"todo-chat-api/pkg/response"
)

// RateLimit throttles requests per client IP. Clients over the limit get a
// 429 without reaching the use case.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !m.limiter.allow(key) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per source, with idle sources expiring
// out of the table instead of accumulating.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max unique sources
			nil,           // no eviction callback
			time.Minute*5, // idle TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
