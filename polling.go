package pamfax

import (
	"context"
	"fmt"
	"time"
)

// withProcessingTimeout wraps the context with the provided timeout if it lacks a deadline.
// A non-positive timeout leaves the context unbounded.
func withProcessingTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	if timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}

// normalizePollInterval clamps non-positive intervals to DefaultPollInterval.
func normalizePollInterval(pollInterval time.Duration) time.Duration {
	if pollInterval <= 0 {
		return DefaultPollInterval
	}
	return pollInterval
}

// waitWithPolling repeatedly fetches a remote resource until evaluate reports
// completion or failure, or the context ends. Fetch errors are returned as is.
func waitWithPolling[T any](ctx context.Context, pollInterval time.Duration, operation Operation,
	timeout time.Duration,
	fetch func(context.Context) (*T, error),
	evaluate func(*T) (bool, error),
) (*T, error) {
	pollInterval = normalizePollInterval(pollInterval)

	ctx, cancel := withProcessingTimeout(ctx, timeout)
	defer cancel()

	for {
		result, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		done, evalErr := evaluate(result)
		if evalErr != nil {
			return nil, evalErr
		}
		if done {
			return result, nil
		}

		if err := waitForNextPoll(ctx, pollInterval, operation); err != nil {
			return nil, err
		}
	}
}

// waitForNextPoll blocks for a full pollInterval counted from now, or until ctx ends.
func waitForNextPoll(ctx context.Context, pollInterval time.Duration, operation Operation) error {
	timer := time.NewTimer(pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting for %s cancelled: %w", operation, ctx.Err())
	case <-timer.C:
		return nil
	}
}
