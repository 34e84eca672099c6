package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/repository"
)

const (
	defaultMaxAttempts  = 4
	defaultBaseDelay    = 20 * time.Millisecond
	defaultJitterFactor = 0.3
)

var (
	ErrInvalidMaxAttempts  = errors.New("max attempts must be positive")
	ErrNegativeBaseDelay   = errors.New("base delay must not be negative")
	ErrInvalidJitterFactor = errors.New("jitter factor must be between 0.0 and 1.0")
)

// Func is one attempt of a retried operation.
type Func func(ctx context.Context) error

type config struct {
	maxAttempts  int
	baseDelay    time.Duration
	jitterFactor float64
	retryIf      func(error) bool
}

type Option func(*config) error

// Do runs fn until it succeeds, returns an error that is not retryable, or
// runs out of attempts. Waits between attempts double each time, starting at
// the base delay, plus up to jitterFactor of random extra.
//
// Schedule with defaults: 0, 20 ms, 40 ms, 80 ms (+30% jitter).
//
// By default only transaction conflicts are retried: the store rolled the
// transaction back, so running it again cannot apply it twice.
func Do(ctx context.Context, fn Func, opts ...Option) error {
	cfg := &config{
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
		retryIf:      IsTxConflict,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return err
		}
	}

	var lastErr error

	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := cfg.baseDelay * time.Duration(1<<(attempt-1))
			jitter := rand.Float64() * float64(delay) * cfg.jitterFactor //nolint:gosec // jitter does not need crypto randomness

			timer := time.NewTimer(delay + time.Duration(jitter))
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if !cfg.retryIf(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// IsTxConflict matches rolled back transactions. Safe for writes.
func IsTxConflict(err error) bool {
	return errors.Is(err, repository.ErrTxConflict)
}

// IsTransient matches every failure worth another try for a read: rolled
// back transactions and an unreachable store.
func IsTransient(err error) bool {
	return errors.Is(err, repository.ErrTxConflict) || errors.Is(err, repository.ErrStoreUnavailable)
}

func WithMaxAttempts(attempts int) Option {
	return func(c *config) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		c.maxAttempts = attempts
		return nil
	}
}

// WithBaseDelay sets the first wait. Later waits are 2x, 4x, 8x of it.
func WithBaseDelay(delay time.Duration) Option {
	return func(c *config) error {
		if delay < 0 {
			return ErrNegativeBaseDelay
		}
		c.baseDelay = delay
		return nil
	}
}

func WithJitterFactor(factor float64) Option {
	return func(c *config) error {
		if factor < 0.0 || factor > 1.0 {
			return ErrInvalidJitterFactor
		}
		c.jitterFactor = factor
		return nil
	}
}

// WithRetryIf replaces the default retry predicate.
func WithRetryIf(pred func(error) bool) Option {
	return func(c *config) error {
		if pred != nil {
			c.retryIf = pred
		}
		return nil
	}
}

// Reads retries idempotent operations on any transient failure.
func Reads() Option {
	return WithRetryIf(IsTransient)
}
