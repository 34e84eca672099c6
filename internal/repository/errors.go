package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrStoreUnavailable means the store could not be reached or dropped
	// the connection. Whether a write committed is unknown.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrTxConflict means the store aborted the transaction because of a
	// concurrent one (serialization failure, deadlock, lock timeout). Nothing
	// was applied and the operation can be retried.
	ErrTxConflict = errors.New("transaction conflict")

	// ErrDuplicateKey means a unique constraint rejected the write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// classify maps driver errors onto the package sentinels. Record-not-found
// and context errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, ErrTxConflict) ||
		errors.Is(err, ErrDuplicateKey) {
		return err
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		case pgErr.Code == "40001", pgErr.Code == "40P01", pgErr.Code == "55P03":
			return fmt.Errorf("%w: %w", ErrTxConflict, err)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return fmt.Errorf("%w: %w", ErrTxConflict, err)
		case sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return err
	}

	if pgconn.Timeout(err) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return err
}
