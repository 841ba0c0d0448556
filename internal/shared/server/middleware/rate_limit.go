package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"prism-backend/internal/shared/server/respond"
)

const idleLimiterTTL = 10 * time.Minute

// RateLimitRule is a per-minute budget with a burst allowance.
// A non-positive PerMinute or Burst disables limiting.
type RateLimitRule struct {
	PerMinute float64
	Burst     int
}

// RateLimiter keeps one token bucket per key.
type RateLimiter struct {
	rule RateLimitRule
	now  func() time.Time

	mu        sync.Mutex
	limiters  map[string]*keyedLimiter
	lastPrune time.Time
}

type keyedLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(rule RateLimitRule, now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		rule:     rule,
		now:      now,
		limiters: make(map[string]*keyedLimiter),
	}
}

func (r RateLimitRule) enabled() bool {
	return r.PerMinute > 0 && r.Burst > 0
}

// Allow spends a token for key, returning the wait until the next one when empty.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	if l == nil || !l.rule.enabled() {
		return true, 0
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.pruneLocked(now)

	kl, ok := l.limiters[key]
	if !ok {
		kl = &keyedLimiter{lim: rate.NewLimiter(rate.Limit(l.rule.PerMinute/60.0), l.rule.Burst)}
		l.limiters[key] = kl
	}
	kl.lastSeen = now

	res := kl.lim.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Minute
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (l *RateLimiter) pruneLocked(now time.Time) {
	if now.Sub(l.lastPrune) < idleLimiterTTL {
		return
	}
	for key, kl := range l.limiters {
		if now.Sub(kl.lastSeen) >= idleLimiterTTL {
			delete(l.limiters, key)
		}
	}
	l.lastPrune = now
}

// Len reports how many keys are tracked.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// RateLimit rejects requests over the limiter's budget, keyed by session
// and falling back to client IP.
func RateLimit(l *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(SessionIDFromContext(c))
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		allowed, retryAfter := l.Allow(key)
		if allowed {
			c.Next()
			return
		}
		retryAfterMs := int(retryAfter / time.Millisecond)
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		retryAfterSeconds := int(math.Ceil(float64(retryAfterMs) / 1000.0))
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Too many generations. Please wait a moment.", gin.H{
			"retryAfterMs": retryAfterMs,
		})
	}
}
