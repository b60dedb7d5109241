package ratelimit

import (
	"context"
	"time"
)

// Pacer defines the interface for spacing out requests
type Pacer interface {
	// Wait blocks for the pacing interval or until ctx is done
	Wait(ctx context.Context) error
}

// FixedDelay pauses for the same duration on every call
type FixedDelay struct {
	delay time.Duration
}

// NewFixedDelay creates a pacer that sleeps for delay. A zero or negative
// delay returns immediately.
func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{delay: delay}
}

// Delay returns the configured pause
func (f *FixedDelay) Delay() time.Duration {
	return f.delay
}

// Wait sleeps for the configured delay. It returns ctx.Err() if the context
// is cancelled first.
func (f *FixedDelay) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
