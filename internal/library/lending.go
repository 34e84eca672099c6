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

const DefaultBorrowLimit = 10

// Lending owns members and the borrow/return protocol, the only path that
// creates or removes holds.
//
// Every mutation locks the member row before the book row, so two requests
// touching the same pair of rows never wait on each other in a cycle.
type Lending struct {
	store       repository.Store
	borrowLimit int
	tracer      trace.Tracer
}

// NewLending returns a Lending that lets each member hold at most
// borrowLimit distinct books. A non-positive limit means DefaultBorrowLimit.
func NewLending(store repository.Store, borrowLimit int, opts ...Option) *Lending {
	if borrowLimit <= 0 {
		borrowLimit = DefaultBorrowLimit
	}
	o := newOptions(opts)
	return &Lending{store: store, borrowLimit: borrowLimit, tracer: o.tracer}
}

func (l *Lending) BorrowLimit() int {
	return l.borrowLimit
}

func (l *Lending) ListMembers(ctx context.Context) (members []model.Member, err error) {
	ctx, span := startSpan(ctx, l.tracer, "lending.ListMembers")
	defer func() { endSpan(span, err) }()

	return l.store.Members().FindAllWithBorrowedBooks(ctx)
}

func (l *Lending) GetMember(ctx context.Context, id uuid.UUID) (member *model.Member, err error) {
	ctx, span := startSpan(ctx, l.tracer, "lending.GetMember", memberAttr(id))
	defer func() { endSpan(span, err) }()

	member, err = l.store.Members().FindByIDWithBorrowedBooks(ctx, id)
	if err != nil {
		return nil, memberNotFound(err, id)
	}
	return member, nil
}

// CreateMember enrolls a member today.
func (l *Lending) CreateMember(ctx context.Context, name string) (member *model.Member, err error) {
	ctx, span := startSpan(ctx, l.tracer, "lending.CreateMember")
	defer func() { endSpan(span, err) }()

	name, err = validateMemberName(name)
	if err != nil {
		return nil, err
	}

	member = &model.Member{Name: name}
	if err := l.store.Members().Create(ctx, member); err != nil {
		return nil, err
	}

	span.SetAttributes(memberAttr(member.ID))
	return member, nil
}

// UpdateMember renames a member. The membership date and holds stay as they
// are.
func (l *Lending) UpdateMember(ctx context.Context, id uuid.UUID, name string) (member *model.Member, err error) {
	ctx, span := startSpan(ctx, l.tracer, "lending.UpdateMember", memberAttr(id))
	defer func() { endSpan(span, err) }()

	name, err = validateMemberName(name)
	if err != nil {
		return nil, err
	}

	err = l.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Members().LockByID(ctx, id); err != nil {
			return memberNotFound(err, id)
		}
		if err := tx.Members().UpdateName(ctx, id, name); err != nil {
			return memberNotFound(err, id)
		}

		var err error
		member, err = tx.Members().FindByIDWithBorrowedBooks(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (l *Lending) DeleteMember(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, l.tracer, "lending.DeleteMember", memberAttr(id))
	defer func() { endSpan(span, err) }()

	return l.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Members().LockByID(ctx, id); err != nil {
			return memberNotFound(err, id)
		}

		holds, err := tx.Loans().CountByMember(ctx, id)
		if err != nil {
			return err
		}
		if holds > 0 {
			return fmt.Errorf("%w: %s holds %d book(s)", ErrMemberHasBorrowedBooks, id, holds)
		}

		return memberNotFound(tx.Members().Delete(ctx, id), id)
	})
}

// Borrow gives one copy of the book to the member.
//
// Checks run in this order: member exists, book exists, pair not already
// held, a copy is available, member below the borrow limit. The copy is then
// taken with a conditional decrement, so amount can never go below zero even
// if the row lock is not honored by the store.
func (l *Lending) Borrow(ctx context.Context, memberID, bookID uuid.UUID) (loan *model.Loan, err error) {
	ctx, span := startSpan(ctx, l.tracer, "lending.Borrow", memberAttr(memberID), bookAttr(bookID))
	defer func() { endSpan(span, err) }()

	err = l.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Members().LockByID(ctx, memberID); err != nil {
			return memberNotFound(err, memberID)
		}

		book, err := tx.Books().LockByID(ctx, bookID)
		if err != nil {
			return bookNotFound(err, bookID)
		}

		held, err := tx.Loans().Exists(ctx, memberID, bookID)
		if err != nil {
			return err
		}
		if held {
			return fmt.Errorf("%w: member %s already holds book %s", ErrBookAlreadyBorrowed, memberID, bookID)
		}

		if book.Amount <= 0 {
			return fmt.Errorf("%w: no copies of book %s left", ErrBookNotAvailable, bookID)
		}

		holds, err := tx.Loans().CountByMember(ctx, memberID)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Int64("member.holds", holds))
		if holds >= int64(l.borrowLimit) {
			return fmt.Errorf("%w: member %s holds %d of %d books", ErrBorrowLimitExceeded, memberID, holds, l.borrowLimit)
		}

		taken, err := tx.Books().DecrementIfAvailable(ctx, bookID)
		if err != nil {
			return err
		}
		if !taken {
			return fmt.Errorf("%w: no copies of book %s left", ErrBookNotAvailable, bookID)
		}

		loan = &model.Loan{MemberID: memberID, BookID: bookID}
		if err := tx.Loans().Create(ctx, loan); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return fmt.Errorf("%w: member %s already holds book %s", ErrBookAlreadyBorrowed, memberID, bookID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// Return takes the member's copy back and puts it on the shelf.
func (l *Lending) Return(ctx context.Context, memberID, bookID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, l.tracer, "lending.Return", memberAttr(memberID), bookAttr(bookID))
	defer func() { endSpan(span, err) }()

	return l.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Members().LockByID(ctx, memberID); err != nil {
			return memberNotFound(err, memberID)
		}
		if _, err := tx.Books().LockByID(ctx, bookID); err != nil {
			return bookNotFound(err, bookID)
		}

		removed, err := tx.Loans().Delete(ctx, memberID, bookID)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%w: member %s does not hold book %s", ErrBookNotBorrowedByMember, memberID, bookID)
		}

		return tx.Books().AddAmount(ctx, bookID, 1)
	})
}

// BooksBorrowedBy lists the books held by the member with exactly this name.
// Names are not unique; the earliest enrolled member with the name wins.
func (l *Lending) BooksBorrowedBy(ctx context.Context, name string) (books []model.Book, err error) {
	ctx, span := startSpan(ctx, l.tracer, "lending.BooksBorrowedBy")
	defer func() { endSpan(span, err) }()

	member, err := l.store.Members().FindByNameWithBorrowedBooks(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no member named %q", ErrMemberNotFound, name)
		}
		return nil, err
	}

	span.SetAttributes(memberAttr(member.ID))
	return member.BorrowedBooks(), nil
}
