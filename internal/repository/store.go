package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one connection or transaction.
type Store interface {
	Books() BookRepository
	Members() MemberRepository
	Loans() LoanRepository

	// Transaction runs fn inside a single database transaction. The Store
	// passed to fn is bound to it; fn must not use any other Store. A non-nil
	// return from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Books() BookRepository {
	return NewGormBookRepository(s.db)
}

func (s *GormStore) Members() MemberRepository {
	return NewGormMemberRepository(s.db)
}

func (s *GormStore) Loans() LoanRepository {
	return NewGormLoanRepository(s.db)
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return classify(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	}))
}
