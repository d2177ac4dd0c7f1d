// Package ratelimit provides a Redis-backed per-client rate limiter for the
// authentication endpoints.
package ratelimit

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"blog_backend/internal/api"
)

// Limiter counts requests per client IP in a fixed window.
type Limiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewLimiter creates a Limiter allowing limit requests per window for each
// client IP. A nil Redis client disables limiting; requests pass through.
func NewLimiter(rdb *redis.Client, limit int64, window time.Duration, prefix string) *Limiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &Limiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

// Middleware returns the Gin middleware enforcing the limit.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Redis未設定の場合はレート制限なしで通す
		if l.rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("%s:%s", l.prefix, c.ClientIP())

		count, err := l.rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis障害時はリクエストをブロックしない
			slog.Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
				slog.Warn("failed to set rate limit window", "key", key, "error", err)
			}
		}

		if count > l.limit {
			slog.Warn("rate limit exceeded", "ip", c.ClientIP(), "count", count)
			api.AbortWithError(c, http.StatusTooManyRequests, "too many requests, try again later")
			return
		}

		c.Next()
	}
}
