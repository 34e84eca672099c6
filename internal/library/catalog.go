package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// Catalog owns the book lifecycle and the borrowed-title aggregates.
type Catalog struct {
	store  repository.Store
	tracer trace.Tracer
}

func NewCatalog(store repository.Store, opts ...Option) *Catalog {
	o := newOptions(opts)
	return &Catalog{store: store, tracer: o.tracer}
}

func (c *Catalog) ListBooks(ctx context.Context) (books []model.Book, err error) {
	ctx, span := startSpan(ctx, c.tracer, "catalog.ListBooks")
	defer func() { endSpan(span, err) }()

	return c.store.Books().FindAllWithBorrowers(ctx)
}

func (c *Catalog) GetBook(ctx context.Context, id uuid.UUID) (book *model.Book, err error) {
	ctx, span := startSpan(ctx, c.tracer, "catalog.GetBook", bookAttr(id))
	defer func() { endSpan(span, err) }()

	book, err = c.store.Books().FindByIDWithBorrowers(ctx, id)
	if err != nil {
		return nil, bookNotFound(err, id)
	}
	return book, nil
}

// CreateOrMergeBook adds in.Amount copies to the book with the same title and
// author, or inserts a new book when there is none.
func (c *Catalog) CreateOrMergeBook(ctx context.Context, in BookInput) (book *model.Book, err error) {
	ctx, span := startSpan(ctx, c.tracer, "catalog.CreateOrMergeBook",
		attribute.String("book.title", in.Title),
		attribute.String("book.author", in.Author),
	)
	defer func() { endSpan(span, err) }()

	if err := in.validate(); err != nil {
		return nil, err
	}

	merged := false
	err = c.store.Transaction(ctx, func(tx repository.Store) error {
		res, err := c.mergeOrInsert(ctx, tx, in)
		if err != nil {
			return err
		}
		merged = res.merged

		book, err = tx.Books().FindByIDWithBorrowers(ctx, res.id)
		return err
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(bookAttr(book.ID), attribute.Bool("book.merged", merged))
	return book, nil
}

type mergeResult struct {
	id     uuid.UUID
	merged bool
}

func (c *Catalog) mergeOrInsert(ctx context.Context, tx repository.Store, in BookInput) (mergeResult, error) {
	existing, err := tx.Books().LockByTitleAndAuthor(ctx, in.Title, in.Author)
	switch {
	case err == nil:
		if err := tx.Books().AddAmount(ctx, existing.ID, in.Amount); err != nil {
			return mergeResult{}, err
		}
		return mergeResult{id: existing.ID, merged: true}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		book := model.Book{
			Title:  in.Title,
			Author: in.Author,
			Amount: in.Amount,
		}
		if err := tx.Books().Create(ctx, &book); err != nil {
			// A concurrent insert of the same key won; a retry merges into it.
			if errors.Is(err, repository.ErrDuplicateKey) {
				return mergeResult{}, fmt.Errorf("%w: %w", repository.ErrTxConflict, err)
			}
			return mergeResult{}, err
		}
		return mergeResult{id: book.ID}, nil

	default:
		return mergeResult{}, err
	}
}

// UpdateBook overwrites title, author and amount. Holds are left untouched.
func (c *Catalog) UpdateBook(ctx context.Context, id uuid.UUID, in BookInput) (book *model.Book, err error) {
	ctx, span := startSpan(ctx, c.tracer, "catalog.UpdateBook", bookAttr(id))
	defer func() { endSpan(span, err) }()

	if err := in.validate(); err != nil {
		return nil, err
	}

	err = c.store.Transaction(ctx, func(tx repository.Store) error {
		current, err := tx.Books().LockByID(ctx, id)
		if err != nil {
			return bookNotFound(err, id)
		}

		current.Title = in.Title
		current.Author = in.Author
		current.Amount = in.Amount

		if err := tx.Books().Update(ctx, current); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return fmt.Errorf("%w: %q by %s", ErrBookAlreadyExists, in.Title, in.Author)
			}
			return bookNotFound(err, id)
		}

		book, err = tx.Books().FindByIDWithBorrowers(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes a book nobody holds. The row lock it takes is the same
// one Borrow takes, so a borrow in flight is either seen or waits.
func (c *Catalog) DeleteBook(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, c.tracer, "catalog.DeleteBook", bookAttr(id))
	defer func() { endSpan(span, err) }()

	return c.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Books().LockByID(ctx, id); err != nil {
			return bookNotFound(err, id)
		}

		holds, err := tx.Loans().CountByBook(ctx, id)
		if err != nil {
			return err
		}
		if holds > 0 {
			return fmt.Errorf("%w: %s has %d borrower(s)", ErrBookNotReturned, id, holds)
		}

		return bookNotFound(tx.Books().Delete(ctx, id), id)
	})
}

// DistinctBorrowedTitles lists each title held by at least one member once,
// sorted.
func (c *Catalog) DistinctBorrowedTitles(ctx context.Context) (titles []string, err error) {
	ctx, span := startSpan(ctx, c.tracer, "catalog.DistinctBorrowedTitles")
	defer func() { endSpan(span, err) }()

	return c.store.Books().DistinctBorrowedTitles(ctx)
}

// BorrowedTitleCounts counts holds per title, grouping books that share a
// title across authors.
func (c *Catalog) BorrowedTitleCounts(ctx context.Context) (counts map[string]int64, err error) {
	ctx, span := startSpan(ctx, c.tracer, "catalog.BorrowedTitleCounts")
	defer func() { endSpan(span, err) }()

	rows, err := c.store.Books().BorrowedTitleCounts(ctx)
	if err != nil {
		return nil, err
	}

	counts = make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Title] = row.Count
	}
	return counts, nil
}

func bookNotFound(err error, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrBookNotFound, id)
	}
	return err
}

func memberNotFound(err error, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}
	return err
}
