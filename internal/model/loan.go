package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Loan is a hold: one member currently has one copy of one book. The
// composite key allows at most one hold per (member, book) pair, and it is
// the only record of the relationship; Book.Borrowers and
// Member.BorrowedBooks are both read from it.
type Loan struct {
	MemberID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	BorrowedAt time.Time `gorm:"not null"`
	Member     Member    `gorm:"foreignKey:MemberID"`
	Book       Book      `gorm:"foreignKey:BookID"`
}

func (l *Loan) BeforeCreate(tx *gorm.DB) (err error) {
	if l.BorrowedAt.IsZero() {
		l.BorrowedAt = time.Now().UTC()
	}
	return
}
