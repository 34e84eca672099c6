package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindByIDWithBorrowedBooks(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindAllWithBorrowedBooks(ctx context.Context) ([]model.Member, error)
	// FindByNameWithBorrowedBooks returns the earliest created member with
	// exactly this name. Names are not unique.
	FindByNameWithBorrowedBooks(ctx context.Context, name string) (*model.Member, error)
	LockByID(ctx context.Context, id uuid.UUID) (*model.Member, error)

	Create(ctx context.Context, member *model.Member) error
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormMemberRepository struct {
	db *gorm.DB
}

func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

func (r *GormMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &member, nil
}

func (r *GormMemberRepository) FindByIDWithBorrowedBooks(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.withBorrowedBooks(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &member, nil
}

func (r *GormMemberRepository) FindAllWithBorrowedBooks(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := r.withBorrowedBooks(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&members).Error; err != nil {

		return nil, classify(err)
	}
	return members, nil
}

func (r *GormMemberRepository) FindByNameWithBorrowedBooks(ctx context.Context, name string) (*model.Member, error) {
	var member model.Member
	if err := r.withBorrowedBooks(ctx).
		Where("name = ?", name).
		Order("created_at ASC").
		Order("id ASC").
		Take(&member).Error; err != nil {

		return nil, classify(err)
	}
	return &member, nil
}

func (r *GormMemberRepository) LockByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&member, "id = ?", id).Error; err != nil {

		return nil, classify(err)
	}
	return &member, nil
}

func (r *GormMemberRepository) Create(ctx context.Context, member *model.Member) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error)
}

func (r *GormMemberRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Member{}, "id = ?", id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormMemberRepository) withBorrowedBooks(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Loans", orderLoans).
		Preload("Loans.Book")
}
