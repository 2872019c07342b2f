package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"currencyrates/internal/config"
	"currencyrates/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"
)

// DefaultCleanupSchedule empties the per-client limiter map once an hour
const DefaultCleanupSchedule = "@every 1h"

// RateLimiter implements per-client rate limiting using a token bucket
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	requests int
	window   time.Duration
	cron     *cron.Cron
}

// NewRateLimiter creates a rate limiter allowing cfg.Requests per cfg.Window
// with bursts of cfg.Burst. A non-positive burst falls back to Requests.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Requests
	}

	limit := rate.Inf
	if cfg.Requests > 0 && cfg.Window > 0 {
		limit = rate.Every(cfg.Window / time.Duration(cfg.Requests))
	}

	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
		requests: cfg.Requests,
		window:   cfg.Window,
	}
}

// Start schedules the periodic reset of client limiters
func (rl *RateLimiter) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, rl.Reset); err != nil {
		return fmt.Errorf("schedule rate limiter cleanup: %w", err)
	}
	rl.cron = c
	c.Start()
	return nil
}

// Stop halts the cleanup schedule; the returned context is done once a
// running cleanup has finished
func (rl *RateLimiter) Stop() context.Context {
	if rl.cron == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return rl.cron.Stop()
}

// Reset forgets every tracked client
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	rl.limiters = make(map[string]*rate.Limiter)
	rl.mu.Unlock()
}

// Clients returns the number of tracked clients
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Middleware returns a Gin middleware function that implements rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/swagger/") {
			c.Next()
			return
		}

		limiter := rl.getLimiter(c.ClientIP())

		now := time.Now()
		r := limiter.ReserveN(now, 1)
		if !r.OK() {
			rl.reject(c, now, rl.window)
			return
		}
		if delay := r.DelayFrom(now); delay > 0 {
			r.CancelAt(now)
			rl.reject(c, now, delay)
			return
		}

		remaining := int(limiter.TokensAt(now))
		if remaining > rl.burst {
			remaining = rl.burst
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(now.Add(rl.window).Unix(), 10))

		c.Next()
	}
}

func (rl *RateLimiter) reject(c *gin.Context, now time.Time, retry time.Duration) {
	seconds := int(math.Ceil(retry.Seconds()))
	c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requests))
	c.Header("X-RateLimit-Remaining", "0")
	c.Header("X-RateLimit-Reset", strconv.FormatInt(now.Add(retry).Unix(), 10))
	c.Header("Retry-After", strconv.Itoa(seconds))
	c.AbortWithStatusJSON(http.StatusTooManyRequests,
		models.NewErrorResponse(http.StatusTooManyRequests, fmt.Sprintf("Retry in %ds.", seconds)))
}
