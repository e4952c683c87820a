package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

const rateLimiterCacheSize = 4096

// rateLimitMiddleware throttles per client IP. The limiter cache is LRU so
// one-off clients eventually age out.
func rateLimitMiddleware(rps rate.Limit, burst int) gin.HandlerFunc {
	cache, err := lru.New[string, *rate.Limiter](rateLimiterCacheSize)
	if err != nil {
		panic(err)
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := cache.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rps, burst)
			cache.Add(ip, limiter)
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status": "error",
				"error":  "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
