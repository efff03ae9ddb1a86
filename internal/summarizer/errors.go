package summarizer

import "errors"

// TransientError marks a rate-limit, timeout or network failure from the
// summarization service. Eligible for retry.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient: " + e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// FatalError marks an authentication or malformed-request failure.
// Never retried.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return "fatal: " + e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// Transient wraps err as retryable
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// Fatal wraps err as non-retryable
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsTransient reports whether err is retryable under the backoff policy
func IsTransient(err error) bool {
	var t *TransientError
	return errors.As(err, &t)
}
