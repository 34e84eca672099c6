package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, ErrTxConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, ErrTxConflict},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, ErrTxConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicateKey},
		{"connection failure", &pgconn.PgError{Code: "08006"}, ErrStoreUnavailable},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, ErrStoreUnavailable},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ErrTxConflict},
		{"sqlite locked", sqlite3.Error{Code: sqlite3.ErrLocked}, ErrTxConflict},
		{"bad conn", fmt.Errorf("query: %w", driver.ErrBadConn), ErrStoreUnavailable},
		{"gorm duplicate", gorm.ErrDuplicatedKey, ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "original error must stay in the chain")
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	assert.NoError(t, classify(nil))
	assert.Equal(t, gorm.ErrRecordNotFound, classify(gorm.ErrRecordNotFound))
	assert.Equal(t, context.Canceled, classify(context.Canceled))

	check := &pgconn.PgError{Code: "23514"}
	assert.Equal(t, error(check), classify(check))

	other := errors.New("something else")
	assert.Equal(t, other, classify(other))

	already := fmt.Errorf("%w: x", ErrTxConflict)
	assert.Equal(t, already, classify(already))
}
