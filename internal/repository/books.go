package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindByIDWithBorrowers(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindAllWithBorrowers(ctx context.Context) ([]model.Book, error)
	FindByTitleAndAuthor(ctx context.Context, title, author string) (*model.Book, error)

	// LockByID and LockByTitleAndAuthor read the row FOR UPDATE; the lock is
	// held until the surrounding transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	LockByTitleAndAuthor(ctx context.Context, title, author string) (*model.Book, error)

	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, book *model.Book) error
	AddAmount(ctx context.Context, id uuid.UUID, delta int) error
	// DecrementIfAvailable takes one copy only while amount > 0 and reports
	// whether it did.
	DecrementIfAvailable(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error

	DistinctBorrowedTitles(ctx context.Context) ([]string, error)
	BorrowedTitleCounts(ctx context.Context) ([]TitleCount, error)
}

type TitleCount struct {
	Title string
	Count int64
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &book, nil
}

func (r *GormBookRepository) FindByIDWithBorrowers(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Loans", orderLoans).
		Preload("Loans.Member").
		First(&book, "id = ?", id).Error; err != nil {

		return nil, classify(err)
	}
	return &book, nil
}

func (r *GormBookRepository) FindAllWithBorrowers(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Loans", orderLoans).
		Preload("Loans.Member").
		Order("title ASC").
		Order("author ASC").
		Find(&books).Error; err != nil {

		return nil, classify(err)
	}
	return books, nil
}

func (r *GormBookRepository) FindByTitleAndAuthor(ctx context.Context, title, author string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Where("title = ? AND author = ?", title, author).
		First(&book).Error; err != nil {

		return nil, classify(err)
	}
	return &book, nil
}

func (r *GormBookRepository) LockByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&book, "id = ?", id).Error; err != nil {

		return nil, classify(err)
	}
	return &book, nil
}

func (r *GormBookRepository) LockByTitleAndAuthor(ctx context.Context, title, author string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("title = ? AND author = ?", title, author).
		First(&book).Error; err != nil {

		return nil, classify(err)
	}
	return &book, nil
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return classify(r.db.WithContext(ctx).Omit(clause.Associations).Create(book).Error)
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":  book.Title,
			"author": book.Author,
			"amount": book.Amount,
		})
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormBookRepository) AddAmount(ctx context.Context, id uuid.UUID, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", id).
		Update("amount", gorm.Expr("amount + ?", delta))
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormBookRepository) DecrementIfAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ? AND amount > 0", id).
		Update("amount", gorm.Expr("amount - 1"))
	if result.Error != nil {
		return false, classify(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormBookRepository) DistinctBorrowedTitles(ctx context.Context) ([]string, error) {
	titles := []string{}
	if err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT b.title
			FROM books b
			JOIN loans l ON l.book_id = b.id
			ORDER BY b.title`).
		Scan(&titles).Error; err != nil {

		return nil, classify(err)
	}
	return titles, nil
}

func (r *GormBookRepository) BorrowedTitleCounts(ctx context.Context) ([]TitleCount, error) {
	counts := []TitleCount{}
	if err := r.db.WithContext(ctx).
		Raw(`SELECT b.title AS title, COUNT(*) AS count
			FROM books b
			JOIN loans l ON l.book_id = b.id
			GROUP BY b.title
			ORDER BY b.title`).
		Scan(&counts).Error; err != nil {

		return nil, classify(err)
	}
	return counts, nil
}

func orderLoans(db *gorm.DB) *gorm.DB {
	return db.Order("borrowed_at ASC")
}
