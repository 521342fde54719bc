package inference

import (
	"context"
	"time"
)

// RetryPolicy retries an operation with exponential backoff. Retries apply
// uniformly to every failure kind; after the attempt budget is exhausted the
// last error is returned unchanged.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first
	MaxAttempts int

	// MinDelay is the backoff floor before the second attempt
	MinDelay time.Duration

	// MaxDelay caps the doubling backoff
	MaxDelay time.Duration
}

// DefaultRetryPolicy absorbs transient provider rate-limit and connectivity
// failures without unbounded latency for a single request.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		MinDelay:    4 * time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// Do runs op up to MaxAttempts times, sleeping between attempts. Attempts for
// one call run strictly sequentially. Context cancellation takes effect
// between attempts at the latest.
func (p RetryPolicy) Do(ctx context.Context, op func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.MinDelay
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}

	return lastErr
}
