// Package retry wraps fallible provider calls with bounded exponential
// backoff. Errors are classified first: permanent conditions (bad input,
// missing credentials, no results) fail fast instead of burning attempts
// on a request that cannot succeed.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/erick-chung/near-you/internal/domain"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// Policy retries an operation up to a fixed number of attempts, doubling
// the delay between attempts starting from the base delay, with no jitter.
// The last error is returned unchanged.
type Policy struct {
	maxAttempts uint64
	baseDelay   time.Duration
}

// Option configures a Policy.
type Option func(*Policy)

// WithMaxAttempts sets the total attempt budget (minimum 1).
func WithMaxAttempts(n uint64) Option {
	return func(p *Policy) {
		if n < 1 {
			n = 1
		}
		p.maxAttempts = n
	}
}

// WithBaseDelay sets the delay before the first retry.
func WithBaseDelay(d time.Duration) Option {
	return func(p *Policy) { p.baseDelay = d }
}

// NewPolicy creates a retry policy with the given options.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		maxAttempts: DefaultMaxAttempts,
		baseDelay:   DefaultBaseDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Do runs the operation under the policy. Cancelling the context aborts
// any in-progress backoff wait.
func (p *Policy) Do(ctx context.Context, op func() error) error {
	return backoff.Retry(classify(op), p.newBackOff(ctx))
}

// DoWithData runs an operation returning a value under the policy.
func DoWithData[T any](ctx context.Context, p *Policy, op func() (T, error)) (T, error) {
	return backoff.RetryWithData(func() (T, error) {
		v, err := op()
		if err != nil && !domain.IsRetryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, p.newBackOff(ctx))
}

func classify(op func() error) backoff.Operation {
	return func() error {
		err := op()
		if err != nil && !domain.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
}

func (p *Policy) newBackOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.baseDelay
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = time.Minute
	b.MaxElapsedTime = 0 // bounded by attempts, not wall time
	return backoff.WithContext(backoff.WithMaxRetries(b, p.maxAttempts-1), ctx)
}
