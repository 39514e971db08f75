// Package retryx defines the single retry policy applied to backend calls.
//
// A Policy wraps an operation and re-runs it on transient failures using
// exponential backoff with jitter: the n-th sleep is BaseDelay*2^(n-1) plus
// a random jitter bounded by JitterCeil. Whether a failure is transient is
// decided by the policy's Retryable predicate; any other failure stops the
// loop immediately and is returned as-is.
package retryx

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	// DefaultMaxRetries bounds the number of re-attempts after the first
	// call (so up to DefaultMaxRetries+1 invocations in total).
	DefaultMaxRetries = 3

	// DefaultBaseDelay is the first backoff sleep.
	DefaultBaseDelay = 400 * time.Millisecond

	// JitterCeil is the exact jitter bound: every sleep is adjusted by a
	// random amount in [-JitterCeil, +JitterCeil].
	JitterCeil = 100 * time.Millisecond
)

// Policy describes how an operation is retried.
type Policy struct {
	// MaxRetries is the number of re-attempts after the initial call.
	MaxRetries uint64
	// BaseDelay is the first backoff sleep; later sleeps double it.
	BaseDelay time.Duration
	// Retryable reports whether an error is transient. A nil predicate
	// retries nothing.
	Retryable func(error) bool
}

// New returns a Policy with the default schedule and the given predicate.
func New(retryable func(error) bool) Policy {
	return Policy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		Retryable:  retryable,
	}
}

// Do runs op, retrying per the policy. It returns nil on the first success,
// the last transient error once attempts are exhausted, or the first
// non-transient error. Context cancellation stops the loop between attempts.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	base := p.BaseDelay
	if base <= 0 {
		base = DefaultBaseDelay
	}

	b := retry.WithMaxRetries(p.MaxRetries, retry.WithJitter(JitterCeil, retry.NewExponential(base)))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && p.Retryable != nil && p.Retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
