package provider

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket guarding calls to the upstream data API.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     int
	burst      int
	tokenEvery time.Duration
	lastRefill time.Time
}

// NewRateLimiter allows burst calls immediately, then one per tokenEvery.
func NewRateLimiter(burst int, tokenEvery time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:     burst,
		burst:      burst,
		tokenEvery: tokenEvery,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or ctx is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.take() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.tokenEvery):
		}
	}
}

func (r *RateLimiter) take() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if earned := int(now.Sub(r.lastRefill) / r.tokenEvery); earned > 0 {
		r.tokens = min(r.tokens+earned, r.burst)
		r.lastRefill = r.lastRefill.Add(time.Duration(earned) * r.tokenEvery)
	}
	if r.tokens == 0 {
		return false
	}
	r.tokens--
	return true
}
