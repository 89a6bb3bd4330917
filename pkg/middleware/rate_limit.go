package middleware

import (
	"fmt"
	"net/http"
	"time"

	"blog-platform/pkg/logger"
	"blog-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware counts requests per route and caller in fixed windows.
// Without redis, or when redis fails, requests are let through.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rateLimitKey(c)
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("Rate limit check failed for %s: %v", key, err)
			c.Next()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			response.Error(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}

		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	caller, exists := c.Get(userIDKey)
	if !exists {
		caller = c.ClientIP()
	}

	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return fmt.Sprintf("rate_limit:%s:%s:%v", c.Request.Method, route, caller)
}
