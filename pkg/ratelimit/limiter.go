package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting outbound API calls
type Limiter interface {
	// Wait blocks until the rate limit allows another request, or until
	// the context is cancelled.
	Wait(ctx context.Context) error
}

// Interval enforces a minimum interval between consecutive requests.
// With requestsPerSecond = N, consecutive Wait calls are spaced at least
// 1/N seconds apart. Burst is fixed at 1, so there is no catch-up traffic
// after a quiet period.
type Interval struct {
	limiter *rate.Limiter
}

// NewInterval creates a fixed-interval rate limiter allowing
// requestsPerSecond requests per second.
func NewInterval(requestsPerSecond int) *Interval {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &Interval{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Wait blocks until the next request slot is available
func (i *Interval) Wait(ctx context.Context) error {
	return i.limiter.Wait(ctx)
}

// Unlimited is a no-op limiter used in mock mode and tests
type Unlimited struct{}

// NewUnlimited creates a limiter that never blocks
func NewUnlimited() *Unlimited {
	return &Unlimited{}
}

// Wait returns immediately
func (*Unlimited) Wait(ctx context.Context) error {
	return ctx.Err()
}
