package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book is a catalog entry. Amount counts the copies that are not currently
// lent out; who holds the others is recorded in Loans.
type Book struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"not null;uniqueIndex:idx_books_title_author"`
	Author    string    `gorm:"not null;uniqueIndex:idx_books_title_author"`
	Amount    int       `gorm:"not null;default:0;check:chk_books_amount,amount >= 0"`
	Loans     []Loan    `gorm:"foreignKey:BookID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// Borrowers is the member side of the book's loans. Loans must have been
// loaded with their Member.
func (b Book) Borrowers() []Member {
	members := make([]Member, 0, len(b.Loans))
	for _, l := range b.Loans {
		members = append(members, l.Member)
	}
	return members
}

func (b Book) IsBorrowed() bool {
	return len(b.Loans) > 0
}
