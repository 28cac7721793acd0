package facebook

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds client-side throttling configuration.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is used by WithRateLimit when given a zero config.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 10.0, BurstSize: 20}

// RateLimiter spaces outbound Graph API requests with a token bucket.
// It never inspects responses; throttling replies from Facebook are returned
// to the caller untouched.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 || cfg.BurstSize <= 0 {
		cfg = DefaultRateLimit
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
