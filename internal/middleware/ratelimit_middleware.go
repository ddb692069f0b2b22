package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/tapnex/store_api/internal/utils"
)

// AttemptRateLimiter applies a fixed-window per-IP limit to abuse-prone
// endpoints such as login and contact form submission.
type AttemptRateLimiter struct {
	client      *redis.Client
	prefix      string
	maxAttempts int
	window      time.Duration
}

// NewAttemptRateLimiter creates a limiter allowing maxAttempts per window for
// each client IP. The prefix separates windows for different endpoints.
func NewAttemptRateLimiter(client *redis.Client, prefix string, maxAttempts int, window time.Duration) *AttemptRateLimiter {
	return &AttemptRateLimiter{
		client:      client,
		prefix:      prefix,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Middleware rejects requests over the limit with 429. Redis failures fail
// open so a cache outage does not take the endpoint down with it.
func (r *AttemptRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + r.prefix + ":" + c.ClientIP()

		count, err := r.increment(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count > int64(r.maxAttempts) {
			utils.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (r *AttemptRateLimiter) increment(ctx context.Context, key string) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}
