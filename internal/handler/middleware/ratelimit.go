package middleware

import (
	"net/http"
	"time"

	"spa-pos/internal/handler/httperr"
	"spa-pos/internal/pkg/config"
	"spa-pos/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// SessionRateLimiter keeps one token bucket per session. Idle buckets are
// dropped after an hour.
type SessionRateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
}

func NewSessionRateLimiter(cfg config.RateLimitConfig) *SessionRateLimiter {
	return &SessionRateLimiter{
		limit:    rate.Limit(cfg.VoucherPerSecond),
		burst:    cfg.VoucherBurst,
		limiters: cache.New(time.Hour, 10*time.Minute),
	}
}

// RateLimit must run after RequireAuth.
func (rl *SessionRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sess, ok := GetSession(c); ok {
			key = sess.ID().String()
		}

		if !rl.limiterFor(key).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many voucher checks, slow down", nil)
			return
		}
		c.Next()
	}
}

func (rl *SessionRateLimiter) limiterFor(key string) *rate.Limiter {
	if v, ok := rl.limiters.Get(key); ok {
		rl.limiters.Set(key, v, cache.DefaultExpiration)
		return v.(*rate.Limiter)
	}
	l := rate.NewLimiter(rl.limit, rl.burst)
	if err := rl.limiters.Add(key, l, cache.DefaultExpiration); err != nil {
		// lost a race with another request for the same key
		if v, ok := rl.limiters.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return l
}
