package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"taskdesk/pkg/apierrors"
)

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// RateLimitMiddleware keeps one token bucket per client IP. The map is never
// evicted; at this API's scale that is bounded by the number of distinct
// clients per process lifetime.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	var mtx sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mtx.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
			limiters[ip] = limiter
		}
		mtx.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgTooManyRequests, GetLang(c)),
			)
			return
		}

		c.Next()
	}
}
