package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Backoff is an explicit retry policy: up to MaxAttempts calls with an
// exponentially growing delay between them, starting at BaseDelay and
// capped at MaxDelay.
type Backoff struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// PermanentError marks an error that must not be retried
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so Do gives up immediately instead of retrying
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Do runs op until it succeeds, returns a permanent error, exhausts the
// policy's attempts, or ctx is cancelled. It returns the number of
// attempts actually made alongside the final error.
func Do(ctx context.Context, b Backoff, op func(ctx context.Context) error) (int, error) {
	attempts := 0

	for {
		attempts++
		err := op(ctx)
		if err == nil {
			return attempts, nil
		}

		var perm *PermanentError
		if errors.As(err, &perm) {
			return attempts, perm.Err
		}

		if attempts >= b.MaxAttempts {
			return attempts, fmt.Errorf("retries exhausted after %d attempts: %w", attempts, err)
		}

		select {
		case <-time.After(b.delay(attempts)):
		case <-ctx.Done():
			return attempts, ctx.Err()
		}
	}
}

// delay returns the wait before the next attempt: BaseDelay doubled for
// each completed attempt, capped at MaxDelay.
func (b Backoff) delay(attempts int) time.Duration {
	d := b.BaseDelay
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= b.MaxDelay {
			return b.MaxDelay
		}
	}
	if b.MaxDelay > 0 && d > b.MaxDelay {
		return b.MaxDelay
	}
	return d
}
