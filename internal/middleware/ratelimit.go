package middleware

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"shareit/internal/config"
	"shareit/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	defaultBurst = 5

	// Buckets idle for limiterIdleTTL are dropped on the next sweep.
	limiterIdleTTL    = 10 * time.Minute
	limiterSweepEvery = time.Minute
)

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

type rateLimiter struct {
	limiters sync.Map // map[string]*limiterEntry
	cfg      config.RateLimitConfig
	now      func() time.Time

	sweepMu   sync.Mutex
	lastSweep time.Time
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	return &rateLimiter{cfg: cfg, now: time.Now}
}

func (l *rateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.now()
	l.sweep(now)

	if v, ok := l.limiters.Load(key); ok {
		e := v.(*limiterEntry)
		e.lastSeen.Store(now.UnixNano())
		return e.lim
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	e := &limiterEntry{lim: rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)}
	e.lastSeen.Store(now.UnixNano())
	actual, _ := l.limiters.LoadOrStore(key, e)
	return actual.(*limiterEntry).lim
}

// sweep removes idle buckets at most once per limiterSweepEvery.
func (l *rateLimiter) sweep(now time.Time) {
	l.sweepMu.Lock()
	if now.Sub(l.lastSweep) < limiterSweepEvery {
		l.sweepMu.Unlock()
		return
	}
	l.lastSweep = now
	l.sweepMu.Unlock()

	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	l.limiters.Range(func(key, v any) bool {
		if v.(*limiterEntry).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
		}
		return true
	})
}

func (l *rateLimiter) size() int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// RateLimit throttles callers with a token bucket keyed by the parsed
// X-Sharer-User-Id, falling back to the client IP when the header is absent or
// malformed. A non-positive RPS disables limiting.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	l := newRateLimiter(cfg)
	return func(c *gin.Context) {
		if !l.getLimiter(limitKey(c)).Allow() {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func limitKey(c *gin.Context) string {
	if id, err := parseSharerID(c.GetHeader(SharerUserHeader)); err == nil {
		return "user:" + strconv.FormatInt(id, 10)
	}
	return "ip:" + c.ClientIP()
}
