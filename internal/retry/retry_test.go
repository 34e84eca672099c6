package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/repository"
	"github.com/stretchr/testify/assert"
)

var conflict = fmt.Errorf("%w: 40001", repository.ErrTxConflict)

func Test_Do_Success_NoRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(_ context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func Test_Do_RetriesTxConflict(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(_ context.Context) error {
		calls++
		if calls < 3 {
			return conflict
		}
		return nil
	}, WithBaseDelay(time.Millisecond))

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func Test_Do_WritesDoNotRetryUnavailable(t *testing.T) {
	unavailable := fmt.Errorf("%w: dial tcp", repository.ErrStoreUnavailable)
	calls := 0
	err := Do(context.Background(), func(_ context.Context) error {
		calls++
		return unavailable
	}, WithBaseDelay(time.Millisecond))

	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.Equal(t, 1, calls)
}

func Test_Do_ReadsRetryUnavailable(t *testing.T) {
	unavailable := fmt.Errorf("%w: dial tcp", repository.ErrStoreUnavailable)
	calls := 0
	err := Do(context.Background(), func(_ context.Context) error {
		calls++
		if calls == 1 {
			return unavailable
		}
		return nil
	}, Reads(), WithBaseDelay(time.Millisecond))

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func Test_Do_PermanentErrorFailsFast(t *testing.T) {
	permanent := errors.New("book not found")
	calls := 0
	err := Do(context.Background(), func(_ context.Context) error {
		calls++
		return permanent
	}, Reads())

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func Test_Do_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(_ context.Context) error {
		calls++
		return conflict
	}, WithMaxAttempts(3), WithBaseDelay(time.Millisecond), WithJitterFactor(0))

	assert.ErrorIs(t, err, repository.ErrTxConflict)
	assert.Equal(t, 3, calls)
}

func Test_Do_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, func(_ context.Context) error {
		calls++
		cancel()
		return conflict
	}, WithBaseDelay(time.Hour))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func Test_Do_InvalidOptions(t *testing.T) {
	fn := func(_ context.Context) error { return nil }

	assert.ErrorIs(t, Do(context.Background(), fn, WithMaxAttempts(0)), ErrInvalidMaxAttempts)
	assert.ErrorIs(t, Do(context.Background(), fn, WithBaseDelay(-time.Second)), ErrNegativeBaseDelay)
	assert.ErrorIs(t, Do(context.Background(), fn, WithJitterFactor(1.5)), ErrInvalidJitterFactor)
	assert.ErrorIs(t, Do(context.Background(), fn, WithJitterFactor(-0.1)), ErrInvalidJitterFactor)
}

func Test_Do_CustomPredicate(t *testing.T) {
	flaky := errors.New("flaky")
	calls := 0
	err := Do(context.Background(), func(_ context.Context) error {
		calls++
		if calls < 2 {
			return flaky
		}
		return nil
	}, WithRetryIf(func(err error) bool { return errors.Is(err, flaky) }), WithBaseDelay(0))

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}
