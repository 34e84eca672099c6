package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/retry"
)

type CatalogService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error)
	CreateOrMergeBook(ctx context.Context, in library.BookInput) (*model.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, in library.BookInput) (*model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	DistinctBorrowedTitles(ctx context.Context) ([]string, error)
	BorrowedTitleCounts(ctx context.Context) (map[string]int64, error)
}

type LendingService interface {
	ListMembers(ctx context.Context) ([]model.Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (*model.Member, error)
	CreateMember(ctx context.Context, name string) (*model.Member, error)
	UpdateMember(ctx context.Context, id uuid.UUID, name string) (*model.Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	Borrow(ctx context.Context, memberID, bookID uuid.UUID) (*model.Loan, error)
	Return(ctx context.Context, memberID, bookID uuid.UUID) error
	BooksBorrowedBy(ctx context.Context, name string) ([]model.Book, error)
}

// retryPolicy wraps engine calls in caller-side backoff. Reads retry on any
// transient store error; writes only on rolled back transactions.
type retryPolicy []retry.Option

func (p retryPolicy) read(ctx context.Context, fn retry.Func) error {
	opts := append([]retry.Option{retry.Reads()}, p...)
	return retry.Do(ctx, fn, opts...)
}

func (p retryPolicy) write(ctx context.Context, fn retry.Func) error {
	return retry.Do(ctx, fn, p...)
}

func parseIDParam(c *gin.Context, code, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, code, message)
		return uuid.Nil, false
	}
	return id, true
}
