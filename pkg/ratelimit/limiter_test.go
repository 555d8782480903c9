package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestIntervalSpacesRequests(t *testing.T) {
	limiter := NewInterval(20) // 50ms between requests

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	elapsed := time.Since(start)

	// First wait is immediate, the next two cost 50ms each
	if elapsed < 100*time.Millisecond {
		t.Errorf("Expected at least 100ms for 3 waits at 20/s, got %v", elapsed)
	}
}

func TestIntervalFirstWaitImmediate(t *testing.T) {
	limiter := NewInterval(1)

	start := time.Now()
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("First wait should be immediate, took %v", elapsed)
	}
}

func TestIntervalContextCancellation(t *testing.T) {
	limiter := NewInterval(1)

	// Consume the initial slot so the next wait would block ~1s
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := limiter.Wait(ctx)
	if err == nil {
		t.Fatal("Expected error from cancelled wait")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Cancelled wait should return promptly, took %v", elapsed)
	}
}

func TestIntervalInvalidRateDefaults(t *testing.T) {
	// A non-positive rate falls back to 1/s rather than panicking
	limiter := NewInterval(0)
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
}

func TestUnlimitedNeverBlocks(t *testing.T) {
	limiter := NewUnlimited()

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Unlimited limiter should never block, took %v", elapsed)
	}
}

func TestUnlimitedHonorsCancelledContext(t *testing.T) {
	limiter := NewUnlimited()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Error("Expected error from cancelled context")
	}
}
