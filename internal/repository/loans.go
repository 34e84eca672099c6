package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository interface {
	Exists(ctx context.Context, memberID, bookID uuid.UUID) (bool, error)
	CountByMember(ctx context.Context, memberID uuid.UUID) (int64, error)
	CountByBook(ctx context.Context, bookID uuid.UUID) (int64, error)
	Create(ctx context.Context, loan *model.Loan) error
	// Delete removes the hold and reports whether one existed.
	Delete(ctx context.Context, memberID, bookID uuid.UUID) (bool, error)
}

type GormLoanRepository struct {
	db *gorm.DB
}

func NewGormLoanRepository(db *gorm.DB) *GormLoanRepository {
	return &GormLoanRepository{db: db}
}

func (r *GormLoanRepository) Exists(ctx context.Context, memberID, bookID uuid.UUID) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&model.Loan{}).
		Where("member_id = ? AND book_id = ?", memberID, bookID).
		Count(&n).Error; err != nil {

		return false, classify(err)
	}
	return n > 0, nil
}

func (r *GormLoanRepository) CountByMember(ctx context.Context, memberID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&model.Loan{}).
		Where("member_id = ?", memberID).
		Count(&n).Error; err != nil {

		return 0, classify(err)
	}
	return n, nil
}

func (r *GormLoanRepository) CountByBook(ctx context.Context, bookID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&model.Loan{}).
		Where("book_id = ?", bookID).
		Count(&n).Error; err != nil {

		return 0, classify(err)
	}
	return n, nil
}

func (r *GormLoanRepository) Create(ctx context.Context, loan *model.Loan) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Create(loan).Error)
}

func (r *GormLoanRepository) Delete(ctx context.Context, memberID, bookID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("member_id = ? AND book_id = ?", memberID, bookID).
		Delete(&model.Loan{})
	if result.Error != nil {
		return false, classify(result.Error)
	}
	return result.RowsAffected > 0, nil
}
