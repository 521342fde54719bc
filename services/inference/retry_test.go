package inference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		MinDelay:    time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}
}

func TestDefaultRetryPolicy(t *testing.T) {
	policy := DefaultRetryPolicy()

	assert.Equal(t, 3, policy.MaxAttempts)
	assert.Equal(t, 4*time.Second, policy.MinDelay)
	assert.Equal(t, 10*time.Second, policy.MaxDelay)
}

func TestRetryPolicy_Do_SucceedsFirstAttempt(t *testing.T) {
	calls := 0

	err := testPolicy().Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_Do_SucceedsAfterFailures(t *testing.T) {
	calls := 0

	err := testPolicy().Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient failure")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_Do_ExhaustionReturnsLastError(t *testing.T) {
	calls := 0
	lastErr := errors.New("attempt 3 failed")

	err := testPolicy().Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 3 {
			return lastErr
		}
		return errors.New("earlier failure")
	})

	assert.Equal(t, 3, calls)
	assert.Same(t, lastErr, err)
}

func TestRetryPolicy_Do_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	policy := RetryPolicy{
		MaxAttempts: 3,
		MinDelay:    time.Hour,
		MaxDelay:    time.Hour,
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := policy.Do(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("failure")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_Do_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0

	err := RetryPolicy{}.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_Do_DelayCapped(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 4,
		MinDelay:    time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
	}
	calls := 0

	start := time.Now()
	_ = policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("failure")
	})

	assert.Equal(t, 4, calls)
	// 1ms + 2ms + 2ms of backoff, nowhere near an uncapped 1+2+4 pattern scale
	assert.Less(t, time.Since(start), time.Second)
}
