package library

import (
	"context"
	"errors"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/repository"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrMemberNotFound = errors.New("member not found")

	ErrBookNotAvailable        = errors.New("book not available")
	ErrBorrowLimitExceeded     = errors.New("borrow limit exceeded")
	ErrBookAlreadyBorrowed     = errors.New("book already borrowed by member")
	ErrBookNotBorrowedByMember = errors.New("book not borrowed by member")
	ErrBookNotReturned         = errors.New("book has not been returned")
	ErrMemberHasBorrowedBooks  = errors.New("member has borrowed books")
	ErrBookAlreadyExists       = errors.New("book with this title and author already exists")

	ErrInvalidBook   = errors.New("invalid book")
	ErrInvalidMember = errors.New("invalid member")
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalid
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrBookNotFound, KindNotFound},
	{ErrMemberNotFound, KindNotFound},
	{ErrBookNotAvailable, KindConflict},
	{ErrBorrowLimitExceeded, KindConflict},
	{ErrBookAlreadyBorrowed, KindConflict},
	{ErrBookNotBorrowedByMember, KindConflict},
	{ErrBookNotReturned, KindConflict},
	{ErrMemberHasBorrowedBooks, KindConflict},
	{ErrBookAlreadyExists, KindConflict},
	{ErrInvalidBook, KindInvalid},
	{ErrInvalidMember, KindInvalid},
	{repository.ErrStoreUnavailable, KindUnavailable},
	{repository.ErrTxConflict, KindUnavailable},
	{context.DeadlineExceeded, KindUnavailable},
}

// KindOf reports which class err belongs to. Unknown errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
