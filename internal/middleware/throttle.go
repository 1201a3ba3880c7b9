package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"campus-connect/pkg/response"
)

// Throttle limits requests per client IP. Limiters live in an
// expiring LRU so idle clients release their slots.
func (m Middleware) Throttle() gin.HandlerFunc {
	rps := m.config.Throttle.RequestsPerSecond
	burst := m.config.Throttle.Burst
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "Throttled request from %s", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
