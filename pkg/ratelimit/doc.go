// Package ratelimit provides rate limiting for outbound Stack Exchange
// API calls.
//
// The API tolerates roughly 30 requests per second before throttling, so
// the collector spaces its per-question answer fetches by a fixed minimum
// interval rather than bursting. The Interval limiter wraps
// golang.org/x/time/rate with a burst of 1, which degenerates to exactly
// that fixed inter-request delay.
//
// Usage:
//
//	limiter := ratelimit.NewInterval(30) // at most 30 requests/second
//	if err := limiter.Wait(ctx); err != nil {
//	    return err // context cancelled
//	}
//	// issue request
package ratelimit
