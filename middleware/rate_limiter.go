package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// fixedWindowScript increments the counter for the current window and
// starts the expiry on the first hit. Returns {count, ttl_seconds}.
var fixedWindowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return {current, redis.call('TTL', KEYS[1])}
`)

// FixedWindowLimiter counts requests per client IP in redis. A nil client
// disables limiting.
type FixedWindowLimiter struct {
	rdb    *redis.Client
	name   string
	max    int
	window time.Duration
}

func NewFixedWindowLimiter(rdb *redis.Client, name string, max int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{rdb: rdb, name: name, max: max, window: window}
}

func (l *FixedWindowLimiter) key(c *gin.Context) string {
	return fmt.Sprintf("rate:fw:%s:ip:%s", l.name, c.ClientIP())
}

func (l *FixedWindowLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rdb == nil || l.max <= 0 {
			c.Next()
			return
		}

		res, err := fixedWindowScript.Run(c.Request.Context(), l.rdb, []string{l.key(c)}, int(l.window.Seconds())).Int64Slice()
		if err != nil || len(res) != 2 {
			// Don't block requests if Redis fails
			log.Warn().Err(err).Str("limiter", l.name).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		count, ttl := res[0], res[1]
		remaining := int64(l.max) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.max))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(l.max) {
			if ttl < 0 {
				ttl = int64(l.window.Seconds())
			}
			log.Warn().
				Str("limiter", l.name).
				Str("ip", c.ClientIP()).
				Str("path", c.Request.URL.Path).
				Msg("rate limit exceeded")
			c.Header("Retry-After", strconv.FormatInt(ttl, 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": fmt.Sprintf("Too many requests, please try again in %ds", ttl),
			})
			return
		}

		c.Next()
	}
}
