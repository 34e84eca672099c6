package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/retry"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/testutil"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/validation"
	"gorm.io/gorm"
)

var fastRetry = []retry.Option{retry.WithBaseDelay(time.Millisecond), retry.WithJitterFactor(0)}

func setupRouterWithServices(t *testing.T, catalog CatalogService, lending LendingService) *gin.Engine {
	t.Helper()

	if err := validation.RegisterGinRules(); err != nil {
		t.Fatalf("failed to register validation rules: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAPI(r.Group(""), catalog, lending, fastRetry...)
	return r
}

// setupTestRouter wires real engines over a fresh sqlite database.
func setupTestRouter(t *testing.T, borrowLimit int) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db := testutil.NewTestDB(t)
	store := repository.NewGormStore(db)

	r := setupRouterWithServices(t,
		library.NewCatalog(store),
		library.NewLending(store, borrowLimit),
	)
	return db, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("failed to marshal body: %v", err)
			}
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return v
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != code {
		t.Errorf("expected code %q, got %q (message %q)", code, resp.Code, resp.Message)
	}
}

type fakeCatalog struct {
	ListBooksFn              func(ctx context.Context) ([]model.Book, error)
	GetBookFn                func(ctx context.Context, id uuid.UUID) (*model.Book, error)
	CreateOrMergeBookFn      func(ctx context.Context, in library.BookInput) (*model.Book, error)
	UpdateBookFn             func(ctx context.Context, id uuid.UUID, in library.BookInput) (*model.Book, error)
	DeleteBookFn             func(ctx context.Context, id uuid.UUID) error
	DistinctBorrowedTitlesFn func(ctx context.Context) ([]string, error)
	BorrowedTitleCountsFn    func(ctx context.Context) (map[string]int64, error)
}

func (f *fakeCatalog) ListBooks(ctx context.Context) ([]model.Book, error) {
	if f.ListBooksFn != nil {
		return f.ListBooksFn(ctx)
	}
	return nil, nil
}

func (f *fakeCatalog) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if f.GetBookFn != nil {
		return f.GetBookFn(ctx, id)
	}
	return nil, library.ErrBookNotFound
}

func (f *fakeCatalog) CreateOrMergeBook(ctx context.Context, in library.BookInput) (*model.Book, error) {
	if f.CreateOrMergeBookFn != nil {
		return f.CreateOrMergeBookFn(ctx, in)
	}
	return &model.Book{ID: uuid.New(), Title: in.Title, Author: in.Author, Amount: in.Amount}, nil
}

func (f *fakeCatalog) UpdateBook(ctx context.Context, id uuid.UUID, in library.BookInput) (*model.Book, error) {
	if f.UpdateBookFn != nil {
		return f.UpdateBookFn(ctx, id, in)
	}
	return &model.Book{ID: id, Title: in.Title, Author: in.Author, Amount: in.Amount}, nil
}

func (f *fakeCatalog) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if f.DeleteBookFn != nil {
		return f.DeleteBookFn(ctx, id)
	}
	return nil
}

func (f *fakeCatalog) DistinctBorrowedTitles(ctx context.Context) ([]string, error) {
	if f.DistinctBorrowedTitlesFn != nil {
		return f.DistinctBorrowedTitlesFn(ctx)
	}
	return nil, nil
}

func (f *fakeCatalog) BorrowedTitleCounts(ctx context.Context) (map[string]int64, error) {
	if f.BorrowedTitleCountsFn != nil {
		return f.BorrowedTitleCountsFn(ctx)
	}
	return nil, nil
}

type fakeLending struct {
	ListMembersFn     func(ctx context.Context) ([]model.Member, error)
	GetMemberFn       func(ctx context.Context, id uuid.UUID) (*model.Member, error)
	CreateMemberFn    func(ctx context.Context, name string) (*model.Member, error)
	UpdateMemberFn    func(ctx context.Context, id uuid.UUID, name string) (*model.Member, error)
	DeleteMemberFn    func(ctx context.Context, id uuid.UUID) error
	BorrowFn          func(ctx context.Context, memberID, bookID uuid.UUID) (*model.Loan, error)
	ReturnFn          func(ctx context.Context, memberID, bookID uuid.UUID) error
	BooksBorrowedByFn func(ctx context.Context, name string) ([]model.Book, error)
}

func (f *fakeLending) ListMembers(ctx context.Context) ([]model.Member, error) {
	if f.ListMembersFn != nil {
		return f.ListMembersFn(ctx)
	}
	return nil, nil
}

func (f *fakeLending) GetMember(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	if f.GetMemberFn != nil {
		return f.GetMemberFn(ctx, id)
	}
	return nil, library.ErrMemberNotFound
}

func (f *fakeLending) CreateMember(ctx context.Context, name string) (*model.Member, error) {
	if f.CreateMemberFn != nil {
		return f.CreateMemberFn(ctx, name)
	}
	return &model.Member{ID: uuid.New(), Name: name, MembershipDate: model.Today()}, nil
}

func (f *fakeLending) UpdateMember(ctx context.Context, id uuid.UUID, name string) (*model.Member, error) {
	if f.UpdateMemberFn != nil {
		return f.UpdateMemberFn(ctx, id, name)
	}
	return &model.Member{ID: id, Name: name, MembershipDate: model.Today()}, nil
}

func (f *fakeLending) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if f.DeleteMemberFn != nil {
		return f.DeleteMemberFn(ctx, id)
	}
	return nil
}

func (f *fakeLending) Borrow(ctx context.Context, memberID, bookID uuid.UUID) (*model.Loan, error) {
	if f.BorrowFn != nil {
		return f.BorrowFn(ctx, memberID, bookID)
	}
	return &model.Loan{MemberID: memberID, BookID: bookID, BorrowedAt: time.Now().UTC()}, nil
}

func (f *fakeLending) Return(ctx context.Context, memberID, bookID uuid.UUID) error {
	if f.ReturnFn != nil {
		return f.ReturnFn(ctx, memberID, bookID)
	}
	return nil
}

func (f *fakeLending) BooksBorrowedBy(ctx context.Context, name string) ([]model.Book, error) {
	if f.BooksBorrowedByFn != nil {
		return f.BooksBorrowedByFn(ctx, name)
	}
	return nil, nil
}
