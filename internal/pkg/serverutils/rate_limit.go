package serverutils

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Buckets idle long enough
// to refill completely are evicted; a fresh bucket behaves the same.
type RateLimiter struct {
	mu     sync.Mutex
	limits *cache.Cache
	every  rate.Limit
	burst  int
}

func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	interval := time.Minute / time.Duration(perMinute)
	idle := time.Duration(burst) * interval
	if idle < time.Minute {
		idle = time.Minute
	}
	return newRateLimiter(interval, burst, idle)
}

func newRateLimiter(interval time.Duration, burst int, idle time.Duration) *RateLimiter {
	return &RateLimiter{
		limits: cache.New(idle, idle),
		every:  rate.Every(interval),
		burst:  burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limits.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.every, rl.burst)
	}
	// Re-setting slides the idle window.
	rl.limits.SetDefault(key, limiter)
	return limiter.(*rate.Limiter)
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

func (rl *RateLimiter) Handler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !rl.Allow(ctx.IP()) {
			return Fail(ctx, fiber.StatusTooManyRequests, "Too many requests")
		}
		return ctx.Next()
	}
}
